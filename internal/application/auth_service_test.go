package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/reelstream/reelstream/internal/domain/entity"
	repo "github.com/reelstream/reelstream/internal/domain/repository"
	"github.com/reelstream/reelstream/pkg/helpers"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		// the storage-layer unique constraint, the authoritative guard
		return repo.ErrEmailTaken
	}
	f.nextID++
	u.ID = fmt.Sprintf("id-%d", f.nextID)
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func TestRegister_HashesAndCreates(t *testing.T) {
	t.Parallel()

	r := newFakeUserRepo()
	s := NewAuthService(r, nil)

	u, err := s.Register(context.Background(), "a@x.com", "p1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("expected an assigned id")
	}
	if u.PasswordHash == nil || *u.PasswordHash == "p1" {
		t.Fatalf("password must be stored hashed")
	}
	if !helpers.CheckPassword(*u.PasswordHash, "p1") {
		t.Fatalf("stored hash does not verify against the plaintext")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	r := newFakeUserRepo()
	s := NewAuthService(r, nil)

	if _, err := s.Register(context.Background(), "a@x.com", "p1"); err != nil {
		t.Fatalf("first Register error: %v", err)
	}
	_, err := s.Register(context.Background(), "a@x.com", "p2")
	if !errors.Is(err, repo.ErrEmailTaken) {
		t.Fatalf("got %v want ErrEmailTaken", err)
	}
	if len(r.byEmail) != 1 {
		t.Fatalf("duplicate register must not create a record")
	}
}

func TestLogin_UniformFailures(t *testing.T) {
	t.Parallel()

	r := newFakeUserRepo()
	s := NewAuthService(r, nil)

	if _, err := s.Register(context.Background(), "a@x.com", "p1"); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	// an account provisioned externally, with no local credential
	r.byEmail["sso@x.com"] = &entity.User{ID: "id-sso", Email: "sso@x.com"}

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@x.com", "p1"},
		{"wrong password", "a@x.com", "wrong"},
		{"no local credential", "sso@x.com", "p1"},
	}
	for _, tc := range cases {
		if _, err := s.Login(context.Background(), tc.email, tc.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("%s: got %v want ErrInvalidCredentials", tc.name, err)
		}
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	r := newFakeUserRepo()
	s := NewAuthService(r, nil)

	created, err := s.Register(context.Background(), "a@x.com", "p1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	u, err := s.Login(context.Background(), "a@x.com", "p1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if u.ID != created.ID || u.Email != "a@x.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
}
