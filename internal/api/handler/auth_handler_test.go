package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ecotrack/ecotrack-api/internal/api/middleware"
	"github.com/ecotrack/ecotrack-api/internal/core/domain"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
	token       string
	user        *domain.User
}

func (s *stubAuthService) Register(_ context.Context, username, email, _ string) (*domain.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &domain.User{ID: 1, Username: username, Email: email}, nil
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.token, s.user, nil
}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Created(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newAuthContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"secret123"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.Username != "alice" || resp.User.ID != 1 {
		t.Fatalf("unexpected user in response: %+v", resp.User)
	}
	if strings.Contains(rec.Body.String(), "secret123") {
		t.Fatalf("response leaks the password")
	}
}

func TestAuthHandler_Register_ValidationRejected(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	for name, body := range map[string]string{
		"bad email":      `{"username":"alice","email":"not-an-email","password":"secret123"}`,
		"short password": `{"username":"alice","email":"a@x.com","password":"short"}`,
		"no username":    `{"email":"a@x.com","password":"secret123"}`,
	} {
		c, _ := newAuthContext(t, http.MethodPost, "/auth/register", body)
		err := h.Register(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", name, err)
		}
	}
}

func TestAuthHandler_Register_DuplicatePropagates(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists})
	c, _ := newAuthContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"secret123"}`)

	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to propagate to the error handler, got %v", err)
	}
}

func TestAuthHandler_Login_SetsCookieAndReturnsToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		token: "signed.session.token",
		user:  &domain.User{ID: 9, Username: "bob"},
	})
	c, rec := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"identifier":"bob","password":"secret123"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed.session.token" {
		t.Fatalf("unexpected token in body: %q", resp.Token)
	}

	cookie := findCookie(t, rec, middleware.SessionCookie)
	if cookie.Value != "signed.session.token" {
		t.Fatalf("cookie value mismatch: %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Fatalf("session cookie must be SameSite=Strict")
	}
}

func TestAuthHandler_Login_InvalidCredentialsPropagate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})
	c, rec := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"identifier":"ghost","password":"whatever1"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("no cookie may be set on a failed login")
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newAuthContext(t, http.MethodPost, "/auth/logout", "")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := findCookie(t, rec, middleware.SessionCookie)
	if cookie.Value != "" || cookie.MaxAge != -1 {
		t.Fatalf("logout must expire the cookie, got value=%q maxAge=%d", cookie.Value, cookie.MaxAge)
	}
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}
