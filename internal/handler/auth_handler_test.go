package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"worko/internal/app/user"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func withUser(r *http.Request, u *user.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), contextUserKey, u))
}

func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == TokenCookieName {
			return c
		}
	}
	return nil
}

func TestHandleRegister_Success(t *testing.T) {
	created := testUser()
	store := &stubStore{
		create: func(_ context.Context, params user.CreateParams) (*user.User, error) {
			if params.Email != "alice@example.com" || params.Password != "secret123" {
				t.Errorf("unexpected create params: %+v", params)
			}
			return created, nil
		},
	}

	rr := httptest.NewRecorder()
	req := jsonRequest(t, "POST", "/worko/user/register", map[string]any{
		"email": "alice@example.com", "password": "secret123",
		"name": "Alice", "age": 30, "city": "Lisbon", "zipCode": "1000-001",
	})
	HandleRegister(testDeps(store))(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	env := decodeEnvelope(t, rr)
	if !env.Success || env.Message != "User created successfully" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if env.Data == nil {
		t.Fatal("expected created record in data")
	}
}

func TestHandleRegister_MissingField(t *testing.T) {
	rr := httptest.NewRecorder()
	req := jsonRequest(t, "POST", "/worko/user/register", map[string]any{
		"email": "alice@example.com", "password": "secret123",
		"name": "Alice", "age": 30, "city": "Lisbon",
	})
	HandleRegister(testDeps(&stubStore{}))(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rr.Code)
	}
	if env := decodeEnvelope(t, rr); env.Message != "Missing required fields" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestHandleRegister_DuplicateEmail(t *testing.T) {
	store := &stubStore{
		create: func(context.Context, user.CreateParams) (*user.User, error) {
			return nil, user.ErrDuplicateEmail
		},
	}

	rr := httptest.NewRecorder()
	req := jsonRequest(t, "POST", "/worko/user/register", map[string]any{
		"email": "alice@example.com", "password": "secret123",
		"name": "Alice", "age": 30, "city": "Lisbon", "zipCode": "1000-001",
	})
	HandleRegister(testDeps(store))(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rr.Code)
	}
	if env := decodeEnvelope(t, rr); env.Message != "User with this email already exists" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestHandleLogin_Success(t *testing.T) {
	hash, err := user.HashPassword("secret123")
	if err != nil {
		t.Fatal(err)
	}
	u := testUser()
	u.PasswordHash = hash

	store := &stubStore{
		findByEmail: func(_ context.Context, email string) (*user.User, error) {
			return u, nil
		},
	}

	rr := httptest.NewRecorder()
	req := jsonRequest(t, "GET", "/worko/user/login", map[string]any{
		"email": u.Email, "password": "secret123",
	})
	HandleLogin(testDeps(store))(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	env := decodeEnvelope(t, rr)
	if !env.Success || env.Message != "User logged in successfully" {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	cookie := sessionCookie(rr)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("expected token cookie to be set")
	}
	if !cookie.HttpOnly {
		t.Error("token cookie should be HttpOnly")
	}
}

func TestHandleLogin_UnknownEmail(t *testing.T) {
	store := &stubStore{
		findByEmail: func(context.Context, string) (*user.User, error) {
			return nil, user.ErrNotFound
		},
	}

	rr := httptest.NewRecorder()
	req := jsonRequest(t, "GET", "/worko/user/login", map[string]any{
		"email": "ghost@example.com", "password": "secret123",
	})
	HandleLogin(testDeps(store))(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rr.Code)
	}
	if env := decodeEnvelope(t, rr); env.Message != "User not found" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestHandleLogin_IncorrectPassword(t *testing.T) {
	hash, err := user.HashPassword("secret123")
	if err != nil {
		t.Fatal(err)
	}
	u := testUser()
	u.PasswordHash = hash

	store := &stubStore{
		findByEmail: func(context.Context, string) (*user.User, error) {
			return u, nil
		},
	}

	rr := httptest.NewRecorder()
	req := jsonRequest(t, "GET", "/worko/user/login", map[string]any{
		"email": u.Email, "password": "wrong-password",
	})
	HandleLogin(testDeps(store))(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rr.Code)
	}
	if env := decodeEnvelope(t, rr); env.Message != "Incorrect password" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
	if sessionCookie(rr) != nil {
		t.Error("no cookie should be set on a failed login")
	}
}

func TestHandleLogin_MissingField(t *testing.T) {
	rr := httptest.NewRecorder()
	req := jsonRequest(t, "GET", "/worko/user/login", map[string]any{
		"email": "alice@example.com",
	})
	HandleLogin(testDeps(&stubStore{}))(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rr.Code)
	}
	if env := decodeEnvelope(t, rr); env.Message != "Missing required fields" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestHandleLogin_ResponseOmitsPasswordHash(t *testing.T) {
	hash, err := user.HashPassword("secret123")
	if err != nil {
		t.Fatal(err)
	}
	u := testUser()
	u.PasswordHash = hash

	store := &stubStore{
		findByEmail: func(context.Context, string) (*user.User, error) {
			return u, nil
		},
	}

	rr := httptest.NewRecorder()
	req := jsonRequest(t, "GET", "/worko/user/login", map[string]any{
		"email": u.Email, "password": "secret123",
	})
	HandleLogin(testDeps(store))(rr, req)

	if bytes.Contains(rr.Body.Bytes(), []byte(hash)) {
		t.Fatal("response body leaked the password hash")
	}
}

func TestHandleLogout_ClearsCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/worko/user/logout", nil)
	HandleLogout(testDeps(&stubStore{}))(rr, withUser(req, testUser()))

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if env := decodeEnvelope(t, rr); env.Message != "User logged out successfully" {
		t.Fatalf("unexpected message: %q", env.Message)
	}

	cookie := sessionCookie(rr)
	if cookie == nil {
		t.Fatal("expected an overwriting token cookie")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("cookie not cleared: %+v", cookie)
	}
}

func TestValidatedBody_RejectsBadEmailBeforeHandler(t *testing.T) {
	handlerCalled := false
	next := func(w http.ResponseWriter, r *http.Request) { handlerCalled = true }

	rr := httptest.NewRecorder()
	req := jsonRequest(t, "POST", "/worko/user/register", map[string]any{
		"email": "not-an-email", "password": "secret123",
		"name": "Alice", "age": 30, "city": "Lisbon", "zipCode": "1000-001",
	})
	ValidatedBody[RegisterInput](next)(rr, req)

	if handlerCalled {
		t.Fatal("handler ran despite validation failure")
	}
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rr.Code)
	}
	if env := decodeEnvelope(t, rr); env.Message != "Validation error" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestValidatedBody_PassesBodyThrough(t *testing.T) {
	var seen LoginInput
	next := func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&seen); err != nil {
			t.Fatalf("handler could not re-read body: %v", err)
		}
	}

	rr := httptest.NewRecorder()
	req := jsonRequest(t, "GET", "/worko/user/login", map[string]any{
		"email": "alice@example.com", "password": "secret123",
	})
	ValidatedBody[LoginInput](next)(rr, req)

	if seen.Email != "alice@example.com" {
		t.Fatalf("body not restored for handler: %+v", seen)
	}
}
