package services

import (
	"context"
	"testing"
	"time"

	"dashboard/internal/domain"
)

func newTestAuth(t *testing.T) AuthService {
	t.Helper()
	admin, err := NewUser("1", "Administrator", "admin", "admin123", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("NewUser error: %v", err)
	}
	return AuthService{Users: NewMemoryUserStore(admin), Secret: []byte("test-secret"), TTL: time.Hour}
}

func TestLoginIssuesToken(t *testing.T) {
	svc := newTestAuth(t)
	res, err := svc.Login(context.Background(), LoginRequest{Username: "Admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if res.Token == "" || res.User.Role != domain.RoleAdmin {
		t.Fatalf("unexpected login result: %+v", res)
	}

	claims, err := svc.ParseToken(res.Token)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.UserID != "1" || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuth(t)
	if _, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "wrong-pass"}); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "whatever"}); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized for unknown user, got %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginRequest{Username: "ad", Password: "123"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for short input, got %v", err)
	}
}

func TestParseTokenRejectsExpiredAndForeign(t *testing.T) {
	svc := newTestAuth(t)
	issued := time.Now().Add(-2 * time.Hour)
	svc.Now = func() time.Time { return issued }
	res, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	svc.Now = nil
	if _, err := svc.ParseToken(res.Token); !domain.IsUnauthorized(err) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}

	other := newTestAuth(t)
	other.Secret = []byte("another-secret")
	fresh, _ := newTestAuth(t).Login(context.Background(), LoginRequest{Username: "admin", Password: "admin123"})
	if _, err := other.ParseToken(fresh.Token); !domain.IsUnauthorized(err) {
		t.Fatalf("expected foreign signature to be rejected, got %v", err)
	}
}

func TestNewUserDefaultsToStaff(t *testing.T) {
	u, err := NewUser("7", "Front desk", "desk", "desk1234", " ")
	if err != nil {
		t.Fatalf("NewUser error: %v", err)
	}
	if u.Role != domain.RoleStaff || u.PasswordHash == "desk1234" {
		t.Fatalf("unexpected user: %+v", u)
	}
}
