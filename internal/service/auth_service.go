package service

import (
	"errors"
	"fmt"
	"time"

	"smart-healthcare-backend/internal/apperror"
	"smart-healthcare-backend/internal/models"
	"smart-healthcare-backend/pkg/utils"
)

// UserStore is the persistence surface the services need for users and
// refresh tokens. Implemented by repository.UserRepository.
type UserStore interface {
	FindUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	ExistsByEmail(email string) (bool, error)
	CreateUser(user *models.User) error
	CreateRefreshToken(token *models.RefreshToken) error
	FindRefreshTokenByHash(hash string) (*models.RefreshToken, error)
	RevokeRefreshTokenByHash(hash string) error
}

// AuditLogger records audit entries. Implemented by repository.AuditRepository.
type AuditLogger interface {
	CreateAuditLog(userID *uint, action string, details string) error
}

type AuthService struct {
	userRepo     UserStore
	doctorRepo   DoctorStore
	hospitalRepo HospitalStore
	auditRepo    AuditLogger
}

func NewAuthService(userRepo UserStore, doctorRepo DoctorStore, hospitalRepo HospitalStore, auditRepo AuditLogger) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		doctorRepo:   doctorRepo,
		hospitalRepo: hospitalRepo,
		auditRepo:    auditRepo,
	}
}

// RegisterInput carries the registration payload. Specialization and
// HospitalID are only consulted for doctor self-registration.
type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Role           string
	Specialization string
	HospitalID     uint
}

// LoginResponse represents the response structure for login and register
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindUserByEmail(email)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, errors.New("invalid credentials")
	}

	response, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	userIDPtr := &user.ID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "user_login", fmt.Sprintf("User %s logged in", email))

	return response, nil
}

// Register creates a new user account. Role defaults to PATIENT. Doctor
// self-registration additionally requires a specialization and an existing
// hospital, and creates the doctor row alongside the user.
func (s *AuthService) Register(input RegisterInput) (*LoginResponse, error) {
	if input.Role == "" {
		input.Role = models.RolePatient
	}
	if input.Role != models.RoleAdmin && input.Role != models.RoleDoctor && input.Role != models.RolePatient {
		return nil, apperror.InvalidInput("invalid role: %s", input.Role)
	}

	exists, err := s.userRepo.ExistsByEmail(input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperror.Conflict("email already exists: %s", input.Email)
	}

	// Doctor self-registration must carry the doctor profile fields and an
	// existing hospital before any row is written.
	if input.Role == models.RoleDoctor {
		if input.Specialization == "" || input.HospitalID == 0 {
			return nil, apperror.InvalidInput("doctor registration requires specialization and hospital_id")
		}
		if _, err := s.hospitalRepo.GetHospitalByID(input.HospitalID); err != nil {
			return nil, err
		}
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         input.Role,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if input.Role == models.RoleDoctor {
		doctor := &models.Doctor{
			Name:           input.Name,
			Specialization: input.Specialization,
			HospitalID:     input.HospitalID,
		}
		if err := s.doctorRepo.CreateDoctor(doctor); err != nil {
			return nil, fmt.Errorf("failed to create doctor profile: %w", err)
		}
	}

	response, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	userIDPtr := &user.ID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "user_registration", fmt.Sprintf("User %s registered as %s", input.Email, input.Role))

	return response, nil
}

// RefreshAccessToken generates a new access token from a refresh token
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	tokenHash := utils.HashRefreshToken(refreshToken)

	token, err := s.userRepo.FindRefreshTokenByHash(tokenHash)
	if err != nil {
		return "", errors.New("invalid or revoked refresh token")
	}

	if time.Now().After(token.ExpiresAt) {
		return "", errors.New("refresh token expired")
	}

	accessToken, err := utils.GenerateAccessToken(token.User.ID, token.User.Role)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(refreshToken string) error {
	tokenHash := utils.HashRefreshToken(refreshToken)

	if err := s.userRepo.RevokeRefreshTokenByHash(tokenHash); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

func (s *AuthService) issueTokens(user *models.User) (*LoginResponse, error) {
	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokenHash := utils.HashRefreshToken(refreshToken)
	refreshTokenModel := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}

	if err := s.userRepo.CreateRefreshToken(refreshTokenModel); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}
