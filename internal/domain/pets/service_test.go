package pets

import (
	"context"
	"errors"
	"testing"
)

// -------------------------
// Stubs de test (in-memory)
// -------------------------

type testRepo struct {
	byID map[int64]Pet
	next int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) (Pet, error) {
	r.next++
	p.ID = r.next
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type testImageStore struct {
	saved map[int64][]byte
}

func newTestImageStore() *testImageStore {
	return &testImageStore{saved: map[int64][]byte{}}
}

func (s *testImageStore) SaveProfile(ctx context.Context, petID int64, data []byte) error {
	s.saved[petID] = data
	return nil
}

func (s *testImageStore) ProfilePath(petID int64) string {
	if _, ok := s.saved[petID]; ok {
		return "saved"
	}
	return "default"
}

// -------------------------
// Tests
// -------------------------

func TestCreate_NormalizesKoreanLexicon(t *testing.T) {
	svc := NewService(newTestRepo(), newTestImageStore())

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:    "Choco",
		Species: "개",
		Gender:  "수컷",
		Age:     3,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Se persiste el canónico, nunca el display
	if p.Species != "dog" {
		t.Fatalf("expected canonical species dog, got %q", p.Species)
	}
	if p.Gender != "male" {
		t.Fatalf("expected canonical gender male, got %q", p.Gender)
	}
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	svc := NewService(newTestRepo(), newTestImageStore())

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"empty name", CreateInput{Species: "dog", Gender: "male"}},
		{"negative age", CreateInput{Name: "x", Species: "dog", Gender: "male", Age: -1}},
		{"unknown species", CreateInput{Name: "x", Species: "bird", Gender: "male"}},
		{"unknown gender", CreateInput{Name: "x", Species: "dog", Gender: "other"}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(context.Background(), "owner-1", tc.in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestAuthorize_DistinguishesMissingFromForeign(t *testing.T) {
	svc := NewService(newTestRepo(), newTestImageStore())

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name: "Choco", Species: "dog", Gender: "male",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Authorize(context.Background(), p.ID, "owner-1"); err != nil {
		t.Fatalf("owner should pass: %v", err)
	}
	if _, err := svc.Authorize(context.Background(), p.ID, "stranger"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := svc.Authorize(context.Background(), 999, "owner-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_RevalidatesLexicon(t *testing.T) {
	svc := NewService(newTestRepo(), newTestImageStore())

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name: "Choco", Species: "dog", Gender: "male",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	sp := "고양이"
	updated, err := svc.Update(context.Background(), p.ID, "owner-1", UpdateInput{Species: &sp})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Species != "cat" {
		t.Fatalf("expected canonical cat, got %q", updated.Species)
	}

	bad := "dragon"
	if _, err := svc.Update(context.Background(), p.ID, "owner-1", UpdateInput{Species: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	negative := -2
	if _, err := svc.Update(context.Background(), p.ID, "owner-1", UpdateInput{Age: &negative}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative age, got %v", err)
	}
}

func TestUploadProfileImage_ExtensionWhitelist(t *testing.T) {
	images := newTestImageStore()
	svc := NewService(newTestRepo(), images)

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name: "Choco", Species: "dog", Gender: "male",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, bad := range []string{"photo.exe", "photo", "photo.", "audio.wav", "photo.gif"} {
		if err := svc.UploadProfileImage(context.Background(), p.ID, "owner-1", bad, []byte("x")); !errors.Is(err, ErrWrongFileType) {
			t.Fatalf("%s: expected ErrWrongFileType, got %v", bad, err)
		}
	}

	// La extensión compara case-insensitive
	if err := svc.UploadProfileImage(context.Background(), p.ID, "owner-1", "photo.PNG", []byte("x")); err != nil {
		t.Fatalf("PNG upload: %v", err)
	}
	if _, ok := images.saved[p.ID]; !ok {
		t.Fatal("expected image delegated to the store")
	}

	if err := svc.UploadProfileImage(context.Background(), p.ID, "stranger", "photo.png", []byte("x")); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
