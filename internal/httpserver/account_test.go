package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
	accountsvc "github.com/Bhargavikambam/GreenBag/internal/service/account"
)

func TestSignupCreated(t *testing.T) {
	account := &stubAccountService{user: &domain.User{ID: "u1", Username: "jane"}}
	deps := defaultDeps()
	deps.AccountSvc = account
	router := newTestRouter(t, deps)

	body := `{"username":"jane","password":"Password1","confirmPassword":"Password1"}`
	rec := doRequest(t, router, http.MethodPost, "/signup", body, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if account.lastRegister == nil || account.lastRegister.Username != "jane" {
		t.Fatalf("unexpected register input %+v", account.lastRegister)
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	deps := defaultDeps()
	deps.AccountSvc = &stubAccountService{registerErr: domain.ErrAlreadyExists}
	router := newTestRouter(t, deps)

	body := `{"username":"jane","password":"Password1","confirmPassword":"Password1"}`
	rec := doRequest(t, router, http.MethodPost, "/signup", body, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestSignupBadPayload(t *testing.T) {
	router := newTestRouter(t, defaultDeps())
	rec := doRequest(t, router, http.MethodPost, "/signup", `{"username":`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLoginReturnsTokens(t *testing.T) {
	router := newTestRouter(t, defaultDeps())

	rec := doRequest(t, router, http.MethodPost, "/login", `{"username":"jane","password":"Password1"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken != "access-token" || resp.RefreshToken != "refresh-token" {
		t.Fatalf("unexpected tokens %+v", resp)
	}
	if resp.ExpiresIn != 3600 || resp.User.Username != "jane" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	deps := defaultDeps()
	deps.AccountSvc = &stubAccountService{loginErr: accountsvc.ErrInvalidCredentials}
	router := newTestRouter(t, deps)

	rec := doRequest(t, router, http.MethodPost, "/login", `{"username":"jane","password":"nope"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLoginMissingFields(t *testing.T) {
	router := newTestRouter(t, defaultDeps())
	rec := doRequest(t, router, http.MethodPost, "/login", `{"username":"jane"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMeReturnsUserAndProfile(t *testing.T) {
	deps := defaultDeps()
	deps.AccountSvc = &stubAccountService{
		user:    &domain.User{ID: "u1", Username: "jane"},
		profile: &domain.Profile{UserID: "u1", FullName: "Jane Roe"},
	}
	router := newTestRouter(t, deps)

	rec := doRequest(t, router, http.MethodGet, "/me", "", authHeaders())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		User    domain.User    `json:"user"`
		Profile domain.Profile `json:"profile"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.Username != "jane" || resp.Profile.FullName != "Jane Roe" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestProfileUpdate(t *testing.T) {
	router := newTestRouter(t, defaultDeps())

	body := `{"fullName":"Jane Roe","phone":"555-0101","address":"1 Main St"}`
	rec := doRequest(t, router, http.MethodPut, "/me/profile", body, authHeaders())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var profile domain.Profile
	if err := json.Unmarshal(rec.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if profile.UserID != "u1" || profile.FullName != "Jane Roe" {
		t.Fatalf("unexpected profile %+v", profile)
	}
}
