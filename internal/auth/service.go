// Package auth implements the mocked authentication flow: login verifies
// nothing beyond field presence, registration enforces password rules and
// stores an argon2id hash so the persisted record never carries a plaintext
// password. Real identity is an external concern.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/oscarnavarro/showroom/internal/state"
	"github.com/oscarnavarro/showroom/pkg/config"
	pkgerrors "github.com/oscarnavarro/showroom/pkg/errors"
	"github.com/oscarnavarro/showroom/pkg/logger"
	"github.com/oscarnavarro/showroom/pkg/security"
	"github.com/oscarnavarro/showroom/pkg/validate"
)

// RegisterInput captures the registration form fields.
type RegisterInput struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// ServiceParams groups dependencies for the auth service.
type ServiceParams struct {
	State    *state.State
	Logger   *logger.Logger
	Password config.PasswordConfig
}

// Service exposes the authentication operations.
type Service interface {
	Login(ctx context.Context, email, password string) (*state.User, error)
	Register(ctx context.Context, input RegisterInput) (*state.User, error)
	Logout(ctx context.Context)
}

type service struct {
	st     *state.State
	logg   *logger.Logger
	pwConf config.PasswordConfig
}

// NewService builds the auth service.
func NewService(params ServiceParams) (Service, error) {
	if params.State == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "state is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{st: params.State, logg: params.Logger, pwConf: params.Password}, nil
}

// Login succeeds whenever both fields are non-empty; the display name is the
// email's local part.
func (s *service) Login(ctx context.Context, email, password string) (*state.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	user := &state.User{
		Name:  displayNameFromEmail(email),
		Email: email,
	}
	s.st.SaveUser(ctx, user)
	s.logg.Info(s.logg.WithUserEmail(ctx, email), "user logged in")
	return user, nil
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*state.User, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	if input.Password != input.ConfirmPassword {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "passwords do not match")
	}
	minLength := s.pwConf.MinLength
	if minLength <= 0 {
		minLength = 6
	}
	if len(input.Password) < minLength {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("password must be at least %d characters", minLength))
	}

	hash, err := security.HashPassword(input.Password, s.pwConf)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user := &state.User{
		Name:         input.Name,
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: hash,
	}
	s.st.SaveUser(ctx, user)
	s.logg.Info(s.logg.WithUserEmail(ctx, user.Email), "user registered")
	return user, nil
}

// Logout clears the current user from memory and from the durable store.
func (s *service) Logout(ctx context.Context) {
	s.st.SaveUser(ctx, nil)
	s.logg.Info(ctx, "user logged out")
}

func displayNameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return email
	}
	return local
}
