package grpc

// proto.go defines the gRPC server interface derived from
// housesinbc/journey/v1/journey.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/effendiaiwebsite/housesinbc/api/gen/go/housesinbc/journey/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/effendiaiwebsite/housesinbc/internal/application/dto"
)

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// Money amounts travel as decimal strings; timestamps as RFC 3339 strings.

type SubmitQuizRequest struct {
	UserID               string `json:"user_id"`
	Income               string `json:"income"`
	Savings              string `json:"savings"`
	HasRetirementSavings bool   `json:"has_retirement_savings"`
	PropertyType         string `json:"property_type"`
	Timeline             string `json:"timeline"`
}

type SubmitQuizResponse struct {
	Result dto.QuizResponse `json:"result"`
}

type GetProgressRequest struct {
	UserID string `json:"user_id"`
}

type GetProgressResponse struct {
	Journey dto.JourneyResponse `json:"journey"`
}

type UpdateMilestoneRequest struct {
	UserID      string `json:"user_id"`
	MilestoneID int    `json:"milestone_id"`
	Status      string `json:"status"`
	Note        string `json:"note,omitempty"`
}

type UpdateMilestoneResponse struct {
	Result dto.MilestoneUpdateResponse `json:"result"`
}

type CompleteMilestoneRequest struct {
	UserID      string `json:"user_id"`
	MilestoneID int    `json:"milestone_id"`
	Note        string `json:"note,omitempty"`
}

type CompleteMilestoneResponse struct {
	Result dto.MilestoneUpdateResponse `json:"result"`
}

type PersonalizeRatesRequest struct {
	UserID             string `json:"user_id"`
	AnnualIncome       string `json:"annual_income"`
	CreditScore        int    `json:"credit_score"`
	DownPaymentPercent string `json:"down_payment_percent"`
	FirstTimeBuyer     bool   `json:"first_time_buyer"`
	AmortizationYears  int    `json:"amortization_years,omitempty"`
	TermYears          int    `json:"term_years,omitempty"`
	LoanAmount         string `json:"loan_amount,omitempty"`
	MonthlyDebts       string `json:"monthly_debts,omitempty"`
}

type PersonalizeRatesResponse struct {
	Quotes []dto.RateQuoteResponse `json:"quotes"`
}

type CreateAppointmentRequest struct {
	UserID          string `json:"user_id"`
	PropertyAddress string `json:"property_address"`
	ScheduledAt     string `json:"scheduled_at"`
	Notes           string `json:"notes,omitempty"`
}

type CreateAppointmentResponse struct {
	Appointment dto.AppointmentResponse `json:"appointment"`
}

type CreateOfferRequest struct {
	UserID          string `json:"user_id"`
	PropertyAddress string `json:"property_address"`
	Amount          string `json:"amount"`
}

type CreateOfferResponse struct {
	Offer dto.OfferResponse `json:"offer"`
}

type SubmitOfferRequest struct {
	UserID  string `json:"user_id"`
	OfferID string `json:"offer_id"`
}

type SubmitOfferResponse struct {
	Offer dto.OfferResponse `json:"offer"`
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// JourneyServiceServer is the server API for JourneyService.
// It mirrors the proto-generated interface from housesinbc.journey.v1.JourneyService.
type JourneyServiceServer interface {
	SubmitQuiz(context.Context, *SubmitQuizRequest) (*SubmitQuizResponse, error)
	GetProgress(context.Context, *GetProgressRequest) (*GetProgressResponse, error)
	UpdateMilestone(context.Context, *UpdateMilestoneRequest) (*UpdateMilestoneResponse, error)
	CompleteMilestone(context.Context, *CompleteMilestoneRequest) (*CompleteMilestoneResponse, error)
	PersonalizeRates(context.Context, *PersonalizeRatesRequest) (*PersonalizeRatesResponse, error)
	CreateAppointment(context.Context, *CreateAppointmentRequest) (*CreateAppointmentResponse, error)
	CreateOffer(context.Context, *CreateOfferRequest) (*CreateOfferResponse, error)
	SubmitOffer(context.Context, *SubmitOfferRequest) (*SubmitOfferResponse, error)
	mustEmbedUnimplementedJourneyServiceServer()
}

// UnimplementedJourneyServiceServer provides forward-compatible default implementations.
type UnimplementedJourneyServiceServer struct{}

func (UnimplementedJourneyServiceServer) SubmitQuiz(context.Context, *SubmitQuizRequest) (*SubmitQuizResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitQuiz not implemented")
}
func (UnimplementedJourneyServiceServer) GetProgress(context.Context, *GetProgressRequest) (*GetProgressResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetProgress not implemented")
}
func (UnimplementedJourneyServiceServer) UpdateMilestone(context.Context, *UpdateMilestoneRequest) (*UpdateMilestoneResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateMilestone not implemented")
}
func (UnimplementedJourneyServiceServer) CompleteMilestone(context.Context, *CompleteMilestoneRequest) (*CompleteMilestoneResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompleteMilestone not implemented")
}
func (UnimplementedJourneyServiceServer) PersonalizeRates(context.Context, *PersonalizeRatesRequest) (*PersonalizeRatesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PersonalizeRates not implemented")
}
func (UnimplementedJourneyServiceServer) CreateAppointment(context.Context, *CreateAppointmentRequest) (*CreateAppointmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateAppointment not implemented")
}
func (UnimplementedJourneyServiceServer) CreateOffer(context.Context, *CreateOfferRequest) (*CreateOfferResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateOffer not implemented")
}
func (UnimplementedJourneyServiceServer) SubmitOffer(context.Context, *SubmitOfferRequest) (*SubmitOfferResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitOffer not implemented")
}
func (UnimplementedJourneyServiceServer) mustEmbedUnimplementedJourneyServiceServer() {}

// RegisterJourneyServiceServer registers the JourneyServiceServer with the gRPC server.
func RegisterJourneyServiceServer(s *grpclib.Server, srv JourneyServiceServer) {
	s.RegisterService(&_JourneyService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _JourneyService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "housesinbc.journey.v1.JourneyService",
	HandlerType: (*JourneyServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "SubmitQuiz", Handler: _JourneyService_SubmitQuiz_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "GetProgress", Handler: _JourneyService_GetProgress_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "UpdateMilestone", Handler: _JourneyService_UpdateMilestone_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "CompleteMilestone", Handler: _JourneyService_CompleteMilestone_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "PersonalizeRates", Handler: _JourneyService_PersonalizeRates_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "CreateAppointment", Handler: _JourneyService_CreateAppointment_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "CreateOffer", Handler: _JourneyService_CreateOffer_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "SubmitOffer", Handler: _JourneyService_SubmitOffer_Handler},             //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _JourneyService_SubmitQuiz_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitQuizRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JourneyServiceServer).SubmitQuiz(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/housesinbc.journey.v1.JourneyService/SubmitQuiz",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JourneyServiceServer).SubmitQuiz(ctx, req.(*SubmitQuizRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _JourneyService_GetProgress_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetProgressRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JourneyServiceServer).GetProgress(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/housesinbc.journey.v1.JourneyService/GetProgress",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JourneyServiceServer).GetProgress(ctx, req.(*GetProgressRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _JourneyService_UpdateMilestone_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateMilestoneRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JourneyServiceServer).UpdateMilestone(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/housesinbc.journey.v1.JourneyService/UpdateMilestone",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JourneyServiceServer).UpdateMilestone(ctx, req.(*UpdateMilestoneRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _JourneyService_CompleteMilestone_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteMilestoneRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JourneyServiceServer).CompleteMilestone(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/housesinbc.journey.v1.JourneyService/CompleteMilestone",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JourneyServiceServer).CompleteMilestone(ctx, req.(*CompleteMilestoneRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _JourneyService_PersonalizeRates_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(PersonalizeRatesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JourneyServiceServer).PersonalizeRates(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/housesinbc.journey.v1.JourneyService/PersonalizeRates",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JourneyServiceServer).PersonalizeRates(ctx, req.(*PersonalizeRatesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _JourneyService_CreateAppointment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateAppointmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JourneyServiceServer).CreateAppointment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/housesinbc.journey.v1.JourneyService/CreateAppointment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JourneyServiceServer).CreateAppointment(ctx, req.(*CreateAppointmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _JourneyService_CreateOffer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateOfferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JourneyServiceServer).CreateOffer(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/housesinbc.journey.v1.JourneyService/CreateOffer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JourneyServiceServer).CreateOffer(ctx, req.(*CreateOfferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _JourneyService_SubmitOffer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitOfferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JourneyServiceServer).SubmitOffer(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/housesinbc.journey.v1.JourneyService/SubmitOffer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JourneyServiceServer).SubmitOffer(ctx, req.(*SubmitOfferRequest))
	}
	return interceptor(ctx, in, info, handler)
}
