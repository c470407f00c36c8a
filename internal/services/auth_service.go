package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"cakeshop/internal/config"
	"cakeshop/internal/models"
	"cakeshop/internal/repositories"
	"cakeshop/internal/validation"
)

// Token roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// AdminUserID is the subject of tokens issued for the configured admin.
const AdminUserID = "admin"

// RegisterInput is a new account request.
type RegisterInput struct {
	Username        string `json:"username" validate:"required,min=3,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=4"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// LoginResult is returned on successful login. User is nil for the admin.
type LoginResult struct {
	Token string       `json:"token"`
	Role  string       `json:"role"`
	User  *models.User `json:"user,omitempty"`
}

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo      repositories.UserRepository
	validate      *validator.Validate
	jwtSecret     []byte
	tokenTTL      time.Duration
	adminEmail    string
	adminPassword string
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, cfg config.AuthConfig) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		validate:      validation.New(),
		jwtSecret:     []byte(cfg.JWTSecret),
		tokenTTL:      cfg.TokenTTL,
		adminEmail:    cfg.AdminEmail,
		adminPassword: cfg.AdminPassword,
	}
}

// Register creates an account with a bcrypt-hashed password. Usernames and
// emails must be unused. Username and email are trimmed before validation.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}
	if err := s.ensureUnused(ctx, in.Username, in.Email); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hashedPassword),
		Status:   models.UserStatusActive,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

func (s *AuthService) ensureUnused(ctx context.Context, username, email string) error {
	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return fmt.Errorf("username '%s' already taken: %w", username, ErrDuplicateUser)
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	_, err = s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err == nil {
		return fmt.Errorf("email '%s' already registered: %w", email, ErrDuplicateUser)
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	return nil
}

// Login authenticates by email and password. The configured admin
// credentials yield an admin token; blocked users are refused before their
// password is checked.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if s.isAdmin(email, password) {
		token, err := s.issueToken(AdminUserID, "admin", RoleAdmin)
		if err != nil {
			return nil, err
		}
		return &LoginResult{Token: token, Role: RoleAdmin}, nil
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.IsBlocked() {
		return nil, ErrUserBlocked
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID, user.Username, RoleUser)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Role: RoleUser, User: user}, nil
}

func (s *AuthService) isAdmin(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(strings.ToLower(strings.TrimSpace(email))), []byte(strings.ToLower(s.adminEmail))) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	return emailOK && passwordOK
}

func (s *AuthService) issueToken(userID, username, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"role":     role,
		"exp":      now.Add(s.tokenTTL).Unix(),
		"iat":      now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if _, ok := claims["user_id"].(string); !ok {
		return nil, fmt.Errorf("%w: missing user_id", ErrInvalidToken)
	}
	return claims, nil
}
