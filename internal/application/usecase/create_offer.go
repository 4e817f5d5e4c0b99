package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/effendiaiwebsite/housesinbc/internal/application/dto"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/model"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/port"
)

// CreateOfferUseCase creates a draft purchase offer.
type CreateOfferUseCase struct {
	offerRepo port.OfferRepository
	publisher port.EventPublisher
}

// NewCreateOfferUseCase wires dependencies.
func NewCreateOfferUseCase(offerRepo port.OfferRepository, publisher port.EventPublisher) *CreateOfferUseCase {
	return &CreateOfferUseCase{offerRepo: offerRepo, publisher: publisher}
}

// Execute creates and persists a draft offer.
func (uc *CreateOfferUseCase) Execute(ctx context.Context, req dto.CreateOfferRequest) (dto.OfferResponse, error) {
	now := time.Now().UTC()

	offer, err := model.NewOffer(req.UserID, req.PropertyAddress, req.Amount, now)
	if err != nil {
		return dto.OfferResponse{}, fmt.Errorf("create offer: %w", err)
	}

	if err := uc.offerRepo.Save(ctx, offer); err != nil {
		return dto.OfferResponse{}, fmt.Errorf("save offer: %w", err)
	}

	if err := uc.publisher.Publish(ctx, offer.DomainEvents()...); err != nil {
		return dto.OfferResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toOfferResponse(offer), nil
}

func toOfferResponse(o model.Offer) dto.OfferResponse {
	return dto.OfferResponse{
		ID:              o.ID(),
		UserID:          o.UserID(),
		PropertyAddress: o.PropertyAddress(),
		Amount:          o.Amount(),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}
