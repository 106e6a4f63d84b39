package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
	tokenrepo "github.com/Bhargavikambam/GreenBag/internal/repository/token"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	user       *domain.User
	profile    *domain.Profile
	createErr  error
	profileErr error

	lastCreated *domain.User
	lastProfile *domain.Profile
}

func (s *stubUserRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	s.lastCreated = &u
	if s.createErr != nil {
		return nil, s.createErr
	}
	out := u
	out.ID = "u1"
	return &out, nil
}

func (s *stubUserRepo) GetByID(_ context.Context, _ string) (*domain.User, error) {
	if s.user == nil {
		return nil, domain.ErrNotFound
	}
	return s.user, nil
}

func (s *stubUserRepo) GetByUsername(_ context.Context, _ string) (*domain.User, error) {
	if s.user == nil {
		return nil, domain.ErrNotFound
	}
	return s.user, nil
}

func (s *stubUserRepo) UpsertProfile(_ context.Context, p domain.Profile) (*domain.Profile, error) {
	s.lastProfile = &p
	if s.profileErr != nil {
		return nil, s.profileErr
	}
	out := p
	return &out, nil
}

func (s *stubUserRepo) GetProfile(_ context.Context, _ string) (*domain.Profile, error) {
	if s.profile == nil {
		return nil, domain.ErrNotFound
	}
	return s.profile, nil
}

type stubTokenRepo struct {
	tokens map[string]tokenrepo.Token
}

func newStubTokenRepo() *stubTokenRepo {
	return &stubTokenRepo{tokens: map[string]tokenrepo.Token{}}
}

func (s *stubTokenRepo) Create(_ context.Context, t tokenrepo.Token) error {
	if _, ok := s.tokens[t.Token]; ok {
		return domain.ErrAlreadyExists
	}
	s.tokens[t.Token] = t
	return nil
}

func (s *stubTokenRepo) Get(_ context.Context, token string) (*tokenrepo.Token, error) {
	t, ok := s.tokens[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (s *stubTokenRepo) Delete(_ context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

func validRegister() RegisterInput {
	return RegisterInput{
		Username:        "Jane",
		Email:           "jane@example.com",
		Password:        "Password1",
		ConfirmPassword: "Password1",
		FullName:        "Jane Roe",
		Phone:           "555-0101",
		Address:         "1 Main St",
	}
}

func TestRegisterLowercasesUsername(t *testing.T) {
	repo := &stubUserRepo{}
	svc := New(repo, newStubTokenRepo())

	user, err := svc.Register(context.Background(), validRegister())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "jane" {
		t.Fatalf("expected lowercased username, got %q", user.Username)
	}
	if repo.lastProfile == nil || repo.lastProfile.UserID != "u1" {
		t.Fatalf("expected profile upsert for new user, got %+v", repo.lastProfile)
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := &stubUserRepo{}
	svc := New(repo, newStubTokenRepo())

	if _, err := svc.Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastCreated.PasswordHash == "Password1" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.lastCreated.PasswordHash), []byte("Password1")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc := New(&stubUserRepo{}, newStubTokenRepo())
	in := validRegister()
	in.ConfirmPassword = "Password2"

	_, err := svc.Register(context.Background(), in)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	svc := New(&stubUserRepo{}, newStubTokenRepo())
	for _, password := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		in := validRegister()
		in.Password = password
		in.ConfirmPassword = password
		_, err := svc.Register(context.Background(), in)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("%q: expected invalid input, got %v", password, err)
		}
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := New(&stubUserRepo{createErr: domain.ErrAlreadyExists}, newStubTokenRepo())
	_, err := svc.Register(context.Background(), validRegister())
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func registeredUser(t *testing.T) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &domain.User{ID: "u1", Username: "jane", PasswordHash: string(hash)}
}

func TestLoginIssuesTokens(t *testing.T) {
	tokens := newStubTokenRepo()
	svc := New(&stubUserRepo{user: registeredUser(t)}, tokens)

	user, access, refresh, err := svc.Login(context.Background(), "Jane", "Password1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" {
		t.Fatalf("unexpected user %+v", user)
	}
	if access == "" || refresh == "" || access == refresh {
		t.Fatalf("expected distinct tokens, got %q and %q", access, refresh)
	}
	if tokens.tokens[access].Kind != "access" || tokens.tokens[refresh].Kind != "refresh" {
		t.Fatalf("unexpected token kinds: %+v", tokens.tokens)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := New(&stubUserRepo{user: registeredUser(t)}, newStubTokenRepo())
	_, _, _, err := svc.Login(context.Background(), "jane", "WrongPass1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := New(&stubUserRepo{}, newStubTokenRepo())
	_, _, _, err := svc.Login(context.Background(), "ghost", "Password1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLookupByToken(t *testing.T) {
	tokens := newStubTokenRepo()
	svc := New(&stubUserRepo{user: registeredUser(t)}, tokens)

	_, access, _, err := svc.Login(context.Background(), "jane", "Password1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	user, err := svc.LookupByToken(context.Background(), access)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestLookupByTokenRejectsRefreshToken(t *testing.T) {
	tokens := newStubTokenRepo()
	svc := New(&stubUserRepo{user: registeredUser(t)}, tokens)

	_, _, refresh, err := svc.Login(context.Background(), "jane", "Password1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := svc.LookupByToken(context.Background(), refresh); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestLookupByExpiredTokenDeletesIt(t *testing.T) {
	tokens := newStubTokenRepo()
	svc := New(&stubUserRepo{user: registeredUser(t)}, tokens)
	tokens.tokens["stale"] = tokenrepo.Token{
		Token:     "stale",
		UserID:    "u1",
		Kind:      "access",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	if _, err := svc.LookupByToken(context.Background(), "stale"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
	if _, ok := tokens.tokens["stale"]; ok {
		t.Fatal("expected expired token to be deleted")
	}
}

func TestProfileDefaultsToEmpty(t *testing.T) {
	svc := New(&stubUserRepo{}, newStubTokenRepo())
	p, err := svc.Profile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.UserID != "u1" || p.FullName != "" {
		t.Fatalf("unexpected profile %+v", p)
	}
}

func TestUpdateProfileBindsOwner(t *testing.T) {
	repo := &stubUserRepo{}
	svc := New(repo, newStubTokenRepo())

	_, err := svc.UpdateProfile(context.Background(), "u1", domain.Profile{UserID: "someone-else", FullName: "Jane Roe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastProfile.UserID != "u1" {
		t.Fatalf("expected owner pinned to caller, got %q", repo.lastProfile.UserID)
	}
}
