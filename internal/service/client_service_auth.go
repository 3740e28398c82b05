package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/internship-tracker/internal/adapter"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/store"
	"github.com/MKhiriev/internship-tracker/internal/validators"
	"github.com/MKhiriev/internship-tracker/models"
	"github.com/golang-jwt/jwt/v5"
)

// ClientAuthService resolves and changes who the client is signed in as.
type ClientAuthService interface {
	Register(ctx context.Context, reg models.Registration) (models.CurrentUser, error)
	Login(ctx context.Context, creds models.Credentials) (models.CurrentUser, error)
	// CurrentUser returns nil when nobody is signed in or the stored
	// session has expired.
	CurrentUser(ctx context.Context) (*models.CurrentUser, error)
	// Profile fetches the users document of the signed-in user.
	Profile(ctx context.Context) (models.User, error)
	SignOut(ctx context.Context) error
}

type clientAuthService struct {
	sessions  store.SessionRepository
	auth      adapter.AuthProvider
	docs      adapter.DocumentStore
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewClientAuthService(sessions store.SessionRepository, auth adapter.AuthProvider, docs adapter.DocumentStore, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions:  sessions,
		auth:      auth,
		docs:      docs,
		validator: validators.NewStructValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (c *clientAuthService) Register(ctx context.Context, reg models.Registration) (models.CurrentUser, error) {
	reg.Email = strings.TrimSpace(reg.Email)
	if err := c.validator.Validate(ctx, reg); err != nil {
		return models.CurrentUser{}, newValidationError(err)
	}

	resp, err := c.auth.Register(ctx, reg)
	if err != nil {
		if errors.Is(err, adapter.ErrConflict) {
			err = fmt.Errorf("%w: %w", ErrEmailAlreadyRegistered, err)
		}
		return models.CurrentUser{}, &ServiceError{Op: "register", Err: err}
	}

	return c.startSession(ctx, resp)
}

func (c *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.CurrentUser, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := c.validator.Validate(ctx, creds); err != nil {
		return models.CurrentUser{}, newValidationError(err)
	}

	resp, err := c.auth.Login(ctx, creds)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			err = fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return models.CurrentUser{}, &ServiceError{Op: "login", Err: err}
	}

	return c.startSession(ctx, resp)
}

func (c *clientAuthService) startSession(ctx context.Context, resp models.AuthResponse) (models.CurrentUser, error) {
	session := models.Session{
		UserID:    resp.User.ID,
		Email:     resp.User.Email,
		Token:     resp.Token,
		CreatedAt: c.now().UTC(),
	}
	if err := c.sessions.SaveSession(ctx, session); err != nil {
		c.logger.Err(err).Str("func", "clientAuthService.startSession").Msg("error saving session")
		return models.CurrentUser{}, &ServiceError{Op: "save session", Err: err}
	}

	c.auth.SetToken(resp.Token)
	c.logger.Info().Str("user_id", session.UserID).Msg("signed in")

	return session.CurrentUser(), nil
}

func (c *clientAuthService) CurrentUser(ctx context.Context) (*models.CurrentUser, error) {
	session, err := c.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrNoSession) {
		return nil, nil
	}
	if err != nil {
		return nil, &ServiceError{Op: "load session", Err: err}
	}

	if c.expired(session.Token) {
		c.logger.Info().Str("user_id", session.UserID).Msg("stored session expired")
		if err := c.sessions.ClearSession(ctx); err != nil {
			return nil, &ServiceError{Op: "clear session", Err: err}
		}
		c.auth.SetToken("")
		return nil, nil
	}

	c.auth.SetToken(session.Token)
	user := session.CurrentUser()
	return &user, nil
}

// expired reads the exp claim without verifying the signature; the server
// verifies it on every request.
func (c *clientAuthService) expired(token string) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !c.now().Before(claims.ExpiresAt.Time)
}

func (c *clientAuthService) Profile(ctx context.Context) (models.User, error) {
	current, err := c.CurrentUser(ctx)
	if err != nil {
		return models.User{}, err
	}
	if current == nil {
		return models.User{}, &ServiceError{Op: "profile", Err: ErrNotSignedIn}
	}

	user, err := c.docs.GetUser(ctx, current.UserID)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			err = fmt.Errorf("%w: %w", ErrSessionExpired, err)
		}
		return models.User{}, &ServiceError{Op: "profile", Err: err}
	}
	return user, nil
}

func (c *clientAuthService) SignOut(ctx context.Context) error {
	if err := c.sessions.ClearSession(ctx); err != nil {
		return &ServiceError{Op: "sign out", Err: err}
	}
	c.auth.SetToken("")
	c.logger.Info().Msg("signed out")
	return nil
}
