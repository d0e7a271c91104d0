package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"dashboard/internal/domain"
	"dashboard/internal/domain/models"
	"dashboard/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var errBadCredentials = domain.UnauthorizedError{Msg: "invalid username or password"}

type LoginRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginResult struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expiresAt"`
	User      models.PublicUser `json:"user"`
}

// Claims is the JWT payload issued on login.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// UserStore looks users up by login name.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (models.User, error)
}

// MemoryUserStore keeps the configured accounts in memory.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserStore(users ...models.User) *MemoryUserStore {
	s := &MemoryUserStore{users: map[string]models.User{}}
	for _, u := range users {
		s.users[strings.ToLower(u.Username)] = u
	}
	return s
}

func (s *MemoryUserStore) FindByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return models.User{}, domain.NotFoundError{Resource: "user", ID: username}
	}
	return u, nil
}

// NewUser hashes password with bcrypt and returns an active account. A blank role means staff.
func NewUser(id, name, username, password, role string) (models.User, error) {
	if strings.TrimSpace(role) == "" {
		role = domain.RoleStaff
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	return models.User{
		ID:           id,
		Name:         name,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Status:       "active",
	}, nil
}

type AuthService struct {
	Users     UserStore
	Secret    []byte
	TTL       time.Duration
	RequestID string
	Now       func() time.Time
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s AuthService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return 24 * time.Hour
}

// Login checks credentials and issues an HS256 token.
func (s AuthService) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	if err := validatePayload(req); err != nil {
		return LoginResult{}, err
	}
	if s.Users == nil {
		return LoginResult{}, errBadCredentials
	}
	u, err := s.Users.FindByUsername(ctx, req.Username)
	if err != nil {
		if domain.IsNotFound(err) {
			utils.LogEvent(s.RequestID, "auth", "login_rejected", "reason=unknown_user")
			return LoginResult{}, errBadCredentials
		}
		return LoginResult{}, err
	}
	if u.Status != "" && u.Status != "active" {
		utils.LogEvent(s.RequestID, "auth", "login_rejected", "reason=inactive user_id="+u.ID)
		return LoginResult{}, domain.UnauthorizedError{Msg: "account is not active"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		utils.LogEvent(s.RequestID, "auth", "login_rejected", "reason=bad_password user_id="+u.ID)
		return LoginResult{}, errBadCredentials
	}

	exp := s.now().Add(s.ttl())
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: u.ID,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(s.now()),
		},
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return LoginResult{}, fmt.Errorf("sign token: %w", err)
	}

	utils.LogEvent(s.RequestID, "auth", "login", "user_id="+u.ID)
	return LoginResult{Token: signed, ExpiresAt: exp, User: u.ToPublic()}, nil
}

// ParseToken verifies signature and expiry.
func (s AuthService) ParseToken(raw string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, domain.UnauthorizedError{Msg: "token expired"}
		}
		return Claims{}, domain.UnauthorizedError{Msg: "invalid token"}
	}
	if claims.UserID == "" {
		return Claims{}, domain.UnauthorizedError{Msg: "invalid token"}
	}
	return claims, nil
}
