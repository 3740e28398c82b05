package service

import (
	"context"

	"github.com/MKhiriev/internship-tracker/internal/validators"
	"github.com/MKhiriev/internship-tracker/models"
)

// InternshipValidationService rejects malformed records before they reach
// the wrapped service.
type InternshipValidationService struct {
	inner     InternshipService
	validator validators.Validator
}

func NewInternshipValidationService(validator validators.Validator) InternshipServiceWrapper {
	return &InternshipValidationService{validator: validator}
}

func (v *InternshipValidationService) Wrap(inner InternshipService) InternshipService {
	v.inner = inner
	return v
}

func (v *InternshipValidationService) List(ctx context.Context, userID string) ([]models.Internship, error) {
	return v.inner.List(ctx, userID)
}

func (v *InternshipValidationService) Get(ctx context.Context, userID, id string) (models.Internship, error) {
	return v.inner.Get(ctx, userID, id)
}

func (v *InternshipValidationService) Create(ctx context.Context, userID string, rec models.Internship) (models.Internship, error) {
	if err := v.validator.Validate(ctx, rec.InternshipFields); err != nil {
		return models.Internship{}, err
	}
	return v.inner.Create(ctx, userID, rec)
}

func (v *InternshipValidationService) Update(ctx context.Context, userID string, rec models.Internship) (models.Internship, error) {
	if rec.ID == "" {
		return models.Internship{}, &validators.FieldError{Field: "id", Tag: "required", Reason: "is required"}
	}
	if err := v.validator.Validate(ctx, rec.InternshipFields); err != nil {
		return models.Internship{}, err
	}
	return v.inner.Update(ctx, userID, rec)
}

func (v *InternshipValidationService) Delete(ctx context.Context, userID, id string) error {
	return v.inner.Delete(ctx, userID, id)
}
