package service

import (
	"context"

	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/store"
	"github.com/MKhiriev/internship-tracker/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{userRepository: userRepository, logger: logger}
}

func (u *userService) GetUser(ctx context.Context, requesterID, userID string) (models.User, error) {
	if requesterID != userID {
		logger.FromContext(ctx).Warn().
			Str("requester_id", requesterID).
			Str("user_id", userID).
			Msg("profile of another user requested")
		return models.User{}, ErrForbidden
	}

	return u.userRepository.GetUser(ctx, userID)
}
