package handler

import (
	"context"

	"github.com/google/uuid"

	"worko/internal/app/user"
	"worko/internal/configs"
)

// stubStore implements user.Store with per-call hooks. A call without a
// hook panics so tests notice unexpected store access.
type stubStore struct {
	list           func(ctx context.Context) ([]user.User, error)
	findByID       func(ctx context.Context, id uuid.UUID) (*user.User, error)
	findByEmail    func(ctx context.Context, email string) (*user.User, error)
	create         func(ctx context.Context, params user.CreateParams) (*user.User, error)
	replace        func(ctx context.Context, id uuid.UUID, params user.ReplaceParams) (*user.User, error)
	merge          func(ctx context.Context, id uuid.UUID, params user.MergeParams) (*user.User, error)
	updatePassword func(ctx context.Context, id uuid.UUID, plain string) error
	delete         func(ctx context.Context, id uuid.UUID) error
}

func (s *stubStore) List(ctx context.Context) ([]user.User, error) {
	if s.list == nil {
		panic("unexpected List call")
	}
	return s.list(ctx)
}

func (s *stubStore) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if s.findByID == nil {
		panic("unexpected FindByID call")
	}
	return s.findByID(ctx, id)
}

func (s *stubStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if s.findByEmail == nil {
		panic("unexpected FindByEmail call")
	}
	return s.findByEmail(ctx, email)
}

func (s *stubStore) Create(ctx context.Context, params user.CreateParams) (*user.User, error) {
	if s.create == nil {
		panic("unexpected Create call")
	}
	return s.create(ctx, params)
}

func (s *stubStore) Replace(ctx context.Context, id uuid.UUID, params user.ReplaceParams) (*user.User, error) {
	if s.replace == nil {
		panic("unexpected Replace call")
	}
	return s.replace(ctx, id, params)
}

func (s *stubStore) Merge(ctx context.Context, id uuid.UUID, params user.MergeParams) (*user.User, error) {
	if s.merge == nil {
		panic("unexpected Merge call")
	}
	return s.merge(ctx, id, params)
}

func (s *stubStore) UpdatePassword(ctx context.Context, id uuid.UUID, plain string) error {
	if s.updatePassword == nil {
		panic("unexpected UpdatePassword call")
	}
	return s.updatePassword(ctx, id, plain)
}

func (s *stubStore) Delete(ctx context.Context, id uuid.UUID) error {
	if s.delete == nil {
		panic("unexpected Delete call")
	}
	return s.delete(ctx, id)
}

func testDeps(store user.Store) *AppDeps {
	return &AppDeps{
		Config: &configs.AppConfig{
			Environment: "development",
			Port:        8080,
			TokenSecret: "test-secret",
		},
		Users: store,
	}
}

func testUser() *user.User {
	return &user.User{
		ID:      uuid.New(),
		Email:   "alice@example.com",
		Name:    "Alice",
		Age:     30,
		City:    "Lisbon",
		ZipCode: "1000-001",
	}
}
