package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-cry-monitor/internal/domain/cries"
	"pet-cry-monitor/internal/domain/pets"
	"pet-cry-monitor/internal/domain/users"
)

func TestUserDelete_CascadesPetsAndCries(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if err := s.Users().Create(ctx, users.User{UID: "u-1", Email: "a@example.com", Nickname: "ana"}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := s.Users().Create(ctx, users.User{UID: "u-2", Email: "b@example.com", Nickname: "beto"}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	mine, err := s.Pets().Create(ctx, pets.Pet{OwnerUserID: "u-1", Name: "Choco", Gender: "male", Species: "dog"})
	if err != nil {
		t.Fatalf("create pet: %v", err)
	}
	other, err := s.Pets().Create(ctx, pets.Pet{OwnerUserID: "u-2", Name: "Nabi", Gender: "female", Species: "cat"})
	if err != nil {
		t.Fatalf("create pet: %v", err)
	}

	cry, err := s.Cries().Create(ctx, cries.Cry{
		PetID:     mine.ID,
		Time:      time.Now(),
		State:     "anger",
		Intensity: "medium",
		Duration:  2,
	})
	if err != nil {
		t.Fatalf("create cry: %v", err)
	}

	if err := s.Users().Delete(ctx, "u-1"); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	// La cascada arrastra mascotas del usuario y sus llantos
	if _, err := s.Pets().GetByID(ctx, mine.ID); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected pet gone after user delete, got %v", err)
	}
	if _, _, err := s.Cries().GetWithOwner(ctx, cry.ID); !errors.Is(err, cries.ErrNotFound) {
		t.Fatalf("expected cry gone after user delete, got %v", err)
	}

	// Lo ajeno queda intacto
	if _, err := s.Pets().GetByID(ctx, other.ID); err != nil {
		t.Fatalf("other owner's pet must survive: %v", err)
	}
	if _, err := s.Users().GetByUID(ctx, "u-2"); err != nil {
		t.Fatalf("other user must survive: %v", err)
	}
}

func TestPetDelete_CascadesCriesOnly(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if err := s.Users().Create(ctx, users.User{UID: "u-1", Email: "a@example.com", Nickname: "ana"}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	p, err := s.Pets().Create(ctx, pets.Pet{OwnerUserID: "u-1", Name: "Choco", Gender: "male", Species: "dog"})
	if err != nil {
		t.Fatalf("create pet: %v", err)
	}
	cry, err := s.Cries().Create(ctx, cries.Cry{PetID: p.ID, Time: time.Now(), State: "sad", Intensity: "low", Duration: 1})
	if err != nil {
		t.Fatalf("create cry: %v", err)
	}

	if err := s.Pets().Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete pet: %v", err)
	}

	if _, _, err := s.Cries().GetWithOwner(ctx, cry.ID); !errors.Is(err, cries.ErrNotFound) {
		t.Fatalf("expected cry gone after pet delete, got %v", err)
	}
	if _, err := s.Users().GetByUID(ctx, "u-1"); err != nil {
		t.Fatalf("owner must survive a pet delete: %v", err)
	}
}
