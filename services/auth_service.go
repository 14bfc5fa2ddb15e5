package services

import (
	"context"
	"strings"

	"storefront/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService owns user identity: registration and login. Lookup failure
// and a wrong password produce the same message so accounts cannot be
// enumerated.
type AuthService struct {
	userRepo     IUserRepository
	tokenService *TokenService
	passwords    *PasswordValidator
	logger       *zap.Logger
}

func NewAuthService(ur IUserRepository, ts *TokenService, pv *PasswordValidator, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:     ur,
		tokenService: ts,
		passwords:    pv,
		logger:       logger,
	}
}

// NormalizeEmail lowercases and trims an email address; identity is always
// keyed by this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(ctx context.Context, email, password string) *ServiceError {
	email = NormalizeEmail(email)

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return errConflict("Email is already registered")
	}

	if err := s.passwords.ValidatePassword(password); err != nil {
		return errBadRequest(err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return errInternal("Failed to create account")
	}

	newUser := &models.User{
		Email:     email,
		Password:  string(hashedPassword),
		Cart:      []models.CartLine{},
		Addresses: []models.Address{},
		Orders:    0,
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return errInternal("Failed to create account")
	}

	s.logger.Info("User registered", zap.String("email", email))
	return nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *ServiceError) {
	email = NormalizeEmail(email)

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", errUnauthorized("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errUnauthorized("Invalid email or password")
	}

	token, err := s.tokenService.Issue(user.Email)
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return "", errInternal("Failed to generate token")
	}

	return token, nil
}
