package usecase

import (
	"context"
	"fmt"
	"time"

	"contacts-api/internal/data/entity"
	"contacts-api/internal/data/repository"
	"contacts-api/internal/dto/request"
	"contacts-api/internal/dto/response"
	"contacts-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	Verify(ctx context.Context, token string) error
}

type authService struct {
	userRepo repository.UserRepository
	mail     VerificationMailer
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, mail VerificationMailer, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		mail:     mail,
		log:      log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// Duplicate email check before any write
	existingUser, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email %s: %w", req.Email, ErrConflict)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	subscription := entity.SubscriptionStarter
	if req.Subscription != "" {
		subscription = entity.Subscription(req.Subscription)
	}

	verificationToken := utils.GenerateVerificationToken()

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:             req.Email,
		PasswordHash:      hashedPassword,
		Subscription:      subscription,
		AvatarURL:         utils.GravatarURL(req.Email),
		Verify:            false,
		VerificationToken: &verificationToken,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	// Mail delivery must not block or fail the registration response
	go s.sendVerificationEmail(user.Email, verificationToken)

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}

	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	if !user.Verify {
		s.log.Warn("Unverified user tried to login", zap.String("user_id", user.ID.String()))
		return nil, ErrNotVerified
	}

	// Fresh token per login; overwriting the column invalidates the prior one
	token := utils.GenerateSessionToken()
	if err := s.userRepo.UpdateToken(ctx, user.ID, &token); err != nil {
		s.log.Error("Failed to store session token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.AuthResponse{
		Token: token.String(),
		User:  response.UserToResponse(user),
	}, nil
}

func (s *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.UpdateToken(ctx, userID, nil); err != nil {
		s.log.Error("Failed to clear session token", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out", zap.String("user_id", userID.String()))
	return nil
}

func (s *authService) Verify(ctx context.Context, token string) error {
	user, err := s.userRepo.FindByVerificationToken(ctx, token)
	if err != nil {
		s.log.Error("Failed to find user by verification token", zap.Error(err))
		return fmt.Errorf("failed to verify email")
	}
	if user == nil {
		return fmt.Errorf("verification token: %w", ErrNotFound)
	}

	if err := s.userRepo.UpdateVerification(ctx, user.ID); err != nil {
		s.log.Error("Failed to update verification", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("failed to verify email")
	}

	s.log.Info("Email verified",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return nil
}

func (s *authService) sendVerificationEmail(email, token string) {
	if err := s.mail.SendVerificationEmail(email, token); err != nil {
		s.log.Error("Failed to send verification email", zap.Error(err), zap.String("email", email))
	}
}
