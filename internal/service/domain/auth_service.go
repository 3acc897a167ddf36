package domain

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"streamflix/internal/model"
	"streamflix/internal/repository"
	"streamflix/internal/security"
	"streamflix/internal/service"
)

// AuthResult is what a successful login or registration hands back.
type AuthResult struct {
	Token string
	Admin model.AdminView
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, email, password string) (*AuthResult, error)
}

type authService struct {
	repo   repository.AdminRepo
	tokens *security.TokenManager
	logger *zap.Logger
}

var _ AuthService = (*authService)(nil)

func NewAuthService(adminRepo repository.AdminRepo, tokens *security.TokenManager, logger *zap.Logger) *authService {
	return &authService{
		repo:   adminRepo,
		tokens: tokens,
		logger: logger,
	}
}

// Login verifies the credentials and issues a bearer token. Unknown email
// and wrong password produce the same error, so callers cannot probe which
// accounts exist.
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	admin, err := s.repo.FindByEmail(ctx, model.NormalizeEmail(email), true)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, service.ErrInvalidCredentials
	}

	if !security.ComparePassword(admin.Password, password) {
		return nil, service.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(admin.ID.Hex(), string(admin.Role))
	if err != nil {
		s.logger.Error("failed to issue token", zap.Error(err))
		return nil, err
	}

	return &AuthResult{Token: token, Admin: admin.View()}, nil
}

// Register creates a new admin credential. Used by the seed path; there is
// no public registration route.
func (s *authService) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	email = model.NormalizeEmail(email)
	if err := model.ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	admin, err := s.repo.Create(ctx, email, password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, service.ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.tokens.Issue(admin.ID.Hex(), string(admin.Role))
	if err != nil {
		s.logger.Error("failed to issue token", zap.Error(err))
		return nil, err
	}

	return &AuthResult{Token: token, Admin: admin.View()}, nil
}
