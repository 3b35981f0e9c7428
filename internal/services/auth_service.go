package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ecomarket/internal/models"
	"ecomarket/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  7 * 24 * time.Hour, // Token valid for 7 days
	}
}

// Register registers a new user, hashes their password and returns the user
// together with a signed token.
func (s *AuthService) Register(user *models.User) (string, error) {
	if strings.TrimSpace(user.Email) == "" || user.Password == "" {
		return "", newError(ValidationFailure, "email and password are required")
	}

	existing, err := s.userRepo.GetByEmail(user.Email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return "", newError(DependencyFailure, "failed to check existing user: %v", err)
	}
	if existing != nil {
		return "", newError(Conflict, "user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", newError(DependencyFailure, "failed to hash password: %v", err)
	}
	user.Password = string(hashedPassword)

	if user.Role == "" {
		user.Role = "user"
	}
	now := time.Now()
	user.CreatedAt = now
	user.LastLoginAt = &now

	if err := s.userRepo.Create(user); err != nil {
		return "", newError(DependencyFailure, "failed to register user: %v", err)
	}

	return s.generateToken(user)
}

// Login authenticates a user by email and password, bumps their last-login
// timestamp and returns the user with a signed token.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", newError(ValidationFailure, "email and password are required")
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the email exists.
		return nil, "", newError(AuthorizationDenied, "invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", newError(AuthorizationDenied, "invalid email or password")
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		return nil, "", newError(DependencyFailure, "failed to update last login: %v", err)
	}
	user.LastLoginAt = &now

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetUserByID retrieves the account for an authenticated caller.
func (s *AuthService) GetUserByID(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ReferenceNotFound, "user not found")
		}
		return nil, newError(DependencyFailure, "failed to retrieve user %s: %v", id, err)
	}
	return user, nil
}

// generateToken signs an HS256 JWT carrying the user's identity and role.
func (s *AuthService) generateToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", newError(DependencyFailure, "failed to generate token: %v", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if
// valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
