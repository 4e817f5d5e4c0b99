package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/event"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/model"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/port"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

// --- Mock implementations ---

type mockQuizResultRepository struct {
	saveFunc         func(ctx context.Context, q model.QuizResult) error
	findByUserIDFunc func(ctx context.Context, userID string) (model.QuizResult, error)

	saved []model.QuizResult
}

func (m *mockQuizResultRepository) Save(ctx context.Context, q model.QuizResult) error {
	m.saved = append(m.saved, q)
	if m.saveFunc != nil {
		return m.saveFunc(ctx, q)
	}
	return nil
}

func (m *mockQuizResultRepository) FindByUserID(ctx context.Context, userID string) (model.QuizResult, error) {
	if m.findByUserIDFunc != nil {
		return m.findByUserIDFunc(ctx, userID)
	}
	return model.QuizResult{}, valueobject.ErrNotFound
}

type mockJourneyRepository struct {
	createFunc            func(ctx context.Context, rec model.JourneyRecord) error
	findByUserIDFunc      func(ctx context.Context, userID string) (model.JourneyRecord, error)
	completeMilestoneFunc func(ctx context.Context, userID string, id valueobject.MilestoneID, payload valueobject.MilestonePayload, now time.Time) (int, bool, error)
	startMilestoneFunc    func(ctx context.Context, userID string, id valueobject.MilestoneID, payload valueobject.MilestonePayload, now time.Time) (int, error)

	created         []model.JourneyRecord
	completedCalls  []valueobject.MilestoneID
	startedCalls    []valueobject.MilestoneID
	completePayload []valueobject.MilestonePayload
}

func (m *mockJourneyRepository) Create(ctx context.Context, rec model.JourneyRecord) error {
	m.created = append(m.created, rec)
	if m.createFunc != nil {
		return m.createFunc(ctx, rec)
	}
	return nil
}

func (m *mockJourneyRepository) FindByUserID(ctx context.Context, userID string) (model.JourneyRecord, error) {
	if m.findByUserIDFunc != nil {
		return m.findByUserIDFunc(ctx, userID)
	}
	return model.JourneyRecord{}, valueobject.ErrNotFound
}

func (m *mockJourneyRepository) CompleteMilestone(ctx context.Context, userID string, id valueobject.MilestoneID, payload valueobject.MilestonePayload, now time.Time) (int, bool, error) {
	m.completedCalls = append(m.completedCalls, id)
	m.completePayload = append(m.completePayload, payload)
	if m.completeMilestoneFunc != nil {
		return m.completeMilestoneFunc(ctx, userID, id, payload, now)
	}
	return 13, true, nil
}

func (m *mockJourneyRepository) StartMilestone(ctx context.Context, userID string, id valueobject.MilestoneID, payload valueobject.MilestonePayload, now time.Time) (int, error) {
	m.startedCalls = append(m.startedCalls, id)
	if m.startMilestoneFunc != nil {
		return m.startMilestoneFunc(ctx, userID, id, payload, now)
	}
	return 0, nil
}

type mockAppointmentRepository struct {
	saveFunc     func(ctx context.Context, a model.Appointment) error
	findByIDFunc func(ctx context.Context, id string) (model.Appointment, error)

	saved []model.Appointment
}

func (m *mockAppointmentRepository) Save(ctx context.Context, a model.Appointment) error {
	m.saved = append(m.saved, a)
	if m.saveFunc != nil {
		return m.saveFunc(ctx, a)
	}
	return nil
}

func (m *mockAppointmentRepository) FindByID(ctx context.Context, id string) (model.Appointment, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Appointment{}, valueobject.ErrNotFound
}

func (m *mockAppointmentRepository) FindByUserID(_ context.Context, _ string) ([]model.Appointment, error) {
	return nil, nil
}

type mockOfferRepository struct {
	saveFunc     func(ctx context.Context, o model.Offer) error
	findByIDFunc func(ctx context.Context, id string) (model.Offer, error)

	saved []model.Offer
}

func (m *mockOfferRepository) Save(ctx context.Context, o model.Offer) error {
	m.saved = append(m.saved, o)
	if m.saveFunc != nil {
		return m.saveFunc(ctx, o)
	}
	return nil
}

func (m *mockOfferRepository) FindByID(ctx context.Context, id string) (model.Offer, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Offer{}, valueobject.ErrNotFound
}

func (m *mockOfferRepository) FindByUserID(_ context.Context, _ string) ([]model.Offer, error) {
	return nil, nil
}

type mockRateSource struct {
	currentRatesFunc func(ctx context.Context) ([]port.LenderRate, error)
}

func (m *mockRateSource) CurrentRates(ctx context.Context) ([]port.LenderRate, error) {
	if m.currentRatesFunc != nil {
		return m.currentRatesFunc(ctx)
	}
	return nil, nil
}

type mockPublisher struct {
	publishFunc func(ctx context.Context, events ...event.DomainEvent) error

	mu        sync.Mutex
	published []event.DomainEvent
}

func (m *mockPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	m.mu.Lock()
	m.published = append(m.published, events...)
	m.mu.Unlock()
	if m.publishFunc != nil {
		return m.publishFunc(ctx, events...)
	}
	return nil
}

func (m *mockPublisher) eventTypes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, 0, len(m.published))
	for _, ev := range m.published {
		types = append(types, ev.EventType())
	}
	return types
}
