package service

import (
	"context"

	"github.com/sangkips/venuebook-api/internal/domain/entity"
	"github.com/sangkips/venuebook-api/internal/domain/repository"
	"github.com/sangkips/venuebook-api/pkg/apperror"
	"github.com/sangkips/venuebook-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and token refresh.
type AuthService struct {
	userRepo     repository.UserRepository
	customerRepo repository.CustomerRepository
	jwtManager   *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	customerRepo repository.CustomerRepository,
	jwtManager *utils.JWTManager,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		jwtManager:   jwtManager,
	}
}

// RegisterInput is the validated input for account registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    *string
	Role     string
}

// TokenPair is an access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResult is the outcome of a successful login or registration.
type AuthResult struct {
	User   *entity.User `json:"user"`
	Tokens TokenPair    `json:"tokens"`
}

// Register creates a new user account. Customer accounts also get a
// customer profile so they can be attached to bookings.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthResult, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email is already registered")
	}

	role := input.Role
	switch role {
	case entity.RoleAdmin, entity.RoleHallManager, entity.RoleVendor, entity.RoleCustomer:
	case "":
		role = entity.RoleCustomer
	default:
		return nil, apperror.NewBadRequestError("Invalid role")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Role:     role,
		Phone:    input.Phone,
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if role == entity.RoleCustomer {
		customer := &entity.Customer{
			UserID: &user.ID,
			Name:   user.Name,
			Email:  &user.Email,
			Phone:  user.Phone,
		}
		if err := s.customerRepo.Create(ctx, customer); err != nil {
			return nil, err
		}
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Tokens: *tokens}, nil
}

// Login verifies credentials and issues a token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, apperror.NewAppError(401, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.NewAppError(401, "Invalid email or password")
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Tokens: *tokens}, nil
}

// Refresh validates a refresh token and issues a fresh token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.NewAppError(401, "Invalid refresh token")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, apperror.NewAppError(401, "Invalid refresh token")
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *entity.User) (*TokenPair, error) {
	access, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
