package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gestorpme/gestor_backend/internal/apperrors"
	"github.com/gestorpme/gestor_backend/internal/core/domain"
	"github.com/gestorpme/gestor_backend/internal/dto"
	portsrepo "github.com/gestorpme/gestor_backend/internal/core/ports/repositories"
	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
	"github.com/gestorpme/gestor_backend/internal/platform/config"
	"github.com/gestorpme/gestor_backend/internal/utils"
)

// Mailer is the outbound-mail contract the auth service depends on.
// Send returns apperrors.ErrUnavailable when the relay is not configured.
type Mailer interface {
	Enabled() bool
	Send(to, subject, body string) error
}

type authService struct {
	BaseService
	userRepo portsrepo.UserRepository
	cfg      *config.Config
	mailer   Mailer
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// NewAuthService creates a new instance of the auth service.
func NewAuthService(userRepo portsrepo.UserRepository, cfg *config.Config, mailer Mailer) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo, cfg: cfg, mailer: mailer}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "failed to hash password")
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "failed to create user")
		return nil, err
	}
	s.LogInfo(ctx, "user registered", "userID", created.UserID)
	return created, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "failed to look up user for login")
		return nil, "", err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "failed to sign token", "userID", user.UserID)
		return nil, "", fmt.Errorf("signing token: %w", err)
	}
	s.LogInfo(ctx, "user logged in", "userID", user.UserID)
	return user, token, nil
}

// ResetPassword mails a temporary password to the given address. The stored
// hash changes only after the relay has accepted the message.
func (s *authService) ResetPassword(ctx context.Context, email string) error {
	if !s.mailer.Enabled() {
		return fmt.Errorf("%w: mail relay not configured", apperrors.ErrUnavailable)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		s.LogError(ctx, err, "failed to look up user for password reset")
		return err
	}

	tempPassword, err := utils.GenerateTemporaryPassword()
	if err != nil {
		s.LogError(ctx, err, "failed to generate temporary password")
		return fmt.Errorf("generating temporary password: %w", err)
	}

	body := fmt.Sprintf("Hello %s,\r\n\r\nYour temporary password is: %s\r\n\r\nSign in with it and change your password right away.\r\n", user.Name, tempPassword)
	if err := s.mailer.Send(user.Email, "Password reset", body); err != nil {
		s.LogError(ctx, err, "failed to send password reset mail", "userID", user.UserID)
		return err
	}

	hash, err := utils.HashPassword(tempPassword)
	if err != nil {
		s.LogError(ctx, err, "failed to hash temporary password")
		return fmt.Errorf("hashing temporary password: %w", err)
	}
	if err := s.userRepo.UpdatePasswordHash(ctx, user.UserID, hash); err != nil {
		s.LogError(ctx, err, "failed to store temporary password", "userID", user.UserID)
		return err
	}
	s.LogInfo(ctx, "temporary password issued", "userID", user.UserID)
	return nil
}
