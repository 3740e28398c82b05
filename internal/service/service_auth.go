package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/store"
	"github.com/MKhiriev/internship-tracker/internal/utils"
	"github.com/MKhiriev/internship-tracker/internal/validators"
	"github.com/MKhiriev/internship-tracker/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; sessions are HS256 JWTs whose
// subject is the user id.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration
	bcryptCost    int

	logger *logger.Logger
}

// NewAuthService constructs an AuthService on the given repository with the
// security parameters from cfg. The returned service is safe for
// concurrent use.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.Auth, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cost,
		logger:         logger,
	}
}

// Register creates a new account.
//
// Returns the stored user or:
//   - a *validators.FieldError if reg breaks a field rule.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (a *authService) Register(ctx context.Context, reg models.Registration) (models.User, error) {
	log := logger.FromContext(ctx)

	reg.Email = normalizeEmail(reg.Email)
	if err := a.validator.Validate(ctx, reg); err != nil {
		log.Debug().Err(err).Str("email", reg.Email).Msg("invalid registration")
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("email", reg.Email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        reg.Email,
		FirstName:    strings.TrimSpace(reg.FirstName),
		LastName:     strings.TrimSpace(reg.LastName),
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("email", reg.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login authenticates an existing user. Unknown emails and wrong passwords
// both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	creds.Email = normalizeEmail(creds.Email)
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("email", creds.Email).Msg("login for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		log.Debug().Str("id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
