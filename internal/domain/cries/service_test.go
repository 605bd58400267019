package cries

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"pet-cry-monitor/internal/domain/pets"
	"pet-cry-monitor/internal/platform/logger"
)

// -------------------------
// Stubs de test (in-memory)
// -------------------------

type testPetsRepo struct {
	byID map[int64]pets.Pet
	next int64
}

func newTestPetsRepo() *testPetsRepo {
	return &testPetsRepo{byID: map[int64]pets.Pet{}}
}

func (r *testPetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.next++
	p.ID = r.next
	r.byID[p.ID] = p
	return p, nil
}

func (r *testPetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *testPetsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testPetsRepo) Update(ctx context.Context, p pets.Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return pets.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testPetsRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return pets.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type nopImageStore struct{}

func (nopImageStore) SaveProfile(ctx context.Context, petID int64, data []byte) error { return nil }
func (nopImageStore) ProfilePath(petID int64) string                                  { return "" }

type testCryRepo struct {
	pets *testPetsRepo
	byID map[int64]Cry
	next int64
}

func newTestCryRepo(pr *testPetsRepo) *testCryRepo {
	return &testCryRepo{pets: pr, byID: map[int64]Cry{}}
}

func (r *testCryRepo) Create(ctx context.Context, c Cry) (Cry, error) {
	r.next++
	c.ID = r.next
	r.byID[c.ID] = c
	return c, nil
}

func (r *testCryRepo) GetWithOwner(ctx context.Context, id int64) (Cry, string, error) {
	c, ok := r.byID[id]
	if !ok {
		return Cry{}, "", ErrNotFound
	}
	p, ok := r.pets.byID[c.PetID]
	if !ok {
		return Cry{}, "", ErrNotFound
	}
	return c, p.OwnerUserID, nil
}

func (r *testCryRepo) ListByPet(ctx context.Context, petID int64) ([]Cry, error) {
	out := make([]Cry, 0)
	for _, c := range r.byID {
		if c.PetID == petID {
			out = append(out, c)
		}
	}
	sortCries(out)
	return out, nil
}

func (r *testCryRepo) ListByPetAndState(ctx context.Context, petID int64, state string) ([]Cry, error) {
	out := make([]Cry, 0)
	for _, c := range r.byID {
		if c.PetID == petID && c.State == state {
			out = append(out, c)
		}
	}
	sortCries(out)
	return out, nil
}

func (r *testCryRepo) ListByPetBetween(ctx context.Context, petID int64, from, to time.Time) ([]Cry, error) {
	out := make([]Cry, 0)
	for _, c := range r.byID {
		if c.PetID != petID {
			continue
		}
		if c.Time.Before(from) || c.Time.After(to) {
			continue
		}
		out = append(out, c)
	}
	sortCries(out)
	return out, nil
}

func (r *testCryRepo) Update(ctx context.Context, c Cry) error {
	if _, ok := r.byID[c.ID]; !ok {
		return ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testCryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func sortCries(items []Cry) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].Time.Equal(items[j].Time) {
			return items[i].Time.Before(items[j].Time)
		}
		return items[i].ID < items[j].ID
	})
}

type testReportStore struct {
	byKey map[string]*Report
	puts  int
}

func newTestReportStore() *testReportStore {
	return &testReportStore{byKey: map[string]*Report{}}
}

func (s *testReportStore) Get(ctx context.Context, key string) (*Report, error) {
	return s.byKey[key], nil
}

func (s *testReportStore) Put(ctx context.Context, key string, r *Report) error {
	s.puts++
	s.byKey[key] = r
	return nil
}

type classifierFunc func(ctx context.Context, wav []byte, species, userID string) (map[string]float64, error)

func (f classifierFunc) Classify(ctx context.Context, wav []byte, species, userID string) (map[string]float64, error) {
	return f(ctx, wav, species, userID)
}

type testAudioStore struct {
	saved map[string][]byte
}

func newTestAudioStore() *testAudioStore {
	return &testAudioStore{saved: map[string][]byte{}}
}

func (s *testAudioStore) SaveWav(ctx context.Context, audioID string, data []byte) error {
	s.saved[audioID] = data
	return nil
}

type testEnv struct {
	svc     *Service
	pets    *testPetsRepo
	cries   *testCryRepo
	reports *testReportStore
	audio   *testAudioStore
}

func newTestEnv(classify classifierFunc) *testEnv {
	pr := newTestPetsRepo()
	cr := newTestCryRepo(pr)
	rs := newTestReportStore()
	as := newTestAudioStore()

	petsSvc := pets.NewService(pr, nopImageStore{})
	svc := NewService(cr, petsSvc, rs, classify, as, logger.New(logger.Error, logger.FormatText, "test"))

	return &testEnv{svc: svc, pets: pr, cries: cr, reports: rs, audio: as}
}

func (e *testEnv) addPet(owner, species string) int64 {
	p, _ := e.pets.Create(context.Background(), pets.Pet{
		OwnerUserID: owner,
		Name:        "test",
		Gender:      "male",
		Species:     species,
	})
	return p.ID
}

// -------------------------
// Tests del service
// -------------------------

func TestCreate_DefaultsAndKoreanState(t *testing.T) {
	env := newTestEnv(nil)
	petID := env.addPet("owner-1", "dog")

	c, err := env.svc.Create(context.Background(), "owner-1", CreateInput{
		PetID: petID,
		Time:  time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		State: "화남",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// El estado se persiste canónico, no en display
	if c.State != "anger" {
		t.Fatalf("expected canonical state anger, got %q", c.State)
	}
	if c.Intensity != "medium" {
		t.Fatalf("expected default intensity medium, got %q", c.Intensity)
	}
	if c.Duration != 2.0 {
		t.Fatalf("expected default duration 2.0, got %v", c.Duration)
	}
}

func TestCreate_RejectsStateOfOtherSpecies(t *testing.T) {
	env := newTestEnv(nil)
	dogID := env.addPet("owner-1", "dog")
	catID := env.addPet("owner-1", "cat")

	cases := []struct {
		petID int64
		state string
	}{
		{dogID, "hunger"},
		{dogID, "배고픔"},
		{catID, "anger"},
		{catID, "놀고 싶음"},
	}
	for _, tc := range cases {
		_, err := env.svc.Create(context.Background(), "owner-1", CreateInput{
			PetID: tc.petID,
			Time:  time.Now(),
			State: tc.state,
		})
		if !errors.Is(err, ErrWrongStateForSpecies) {
			t.Fatalf("pet %d state %q: expected ErrWrongStateForSpecies, got %v", tc.petID, tc.state, err)
		}
	}
}

func TestCreate_SharedHappyWorksForBoth(t *testing.T) {
	env := newTestEnv(nil)
	dogID := env.addPet("owner-1", "dog")
	catID := env.addPet("owner-1", "cat")

	for _, petID := range []int64{dogID, catID} {
		c, err := env.svc.Create(context.Background(), "owner-1", CreateInput{
			PetID: petID,
			Time:  time.Now(),
			State: "행복함",
		})
		if err != nil {
			t.Fatalf("pet %d: %v", petID, err)
		}
		if c.State != "happy" {
			t.Fatalf("pet %d: expected happy, got %q", petID, c.State)
		}
	}
}

func TestCreate_RejectsNonPositiveDuration(t *testing.T) {
	env := newTestEnv(nil)
	petID := env.addPet("owner-1", "dog")

	zero := 0.0
	_, err := env.svc.Create(context.Background(), "owner-1", CreateInput{
		PetID:    petID,
		Time:     time.Now(),
		State:    "anger",
		Duration: &zero,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero duration, got %v", err)
	}
}

func TestCreate_OwnershipGuard(t *testing.T) {
	env := newTestEnv(nil)
	petID := env.addPet("owner-1", "dog")

	in := CreateInput{PetID: petID, Time: time.Now(), State: "anger"}

	if _, err := env.svc.Create(context.Background(), "stranger", in); !errors.Is(err, pets.ErrUnauthorized) {
		t.Fatalf("expected pets.ErrUnauthorized, got %v", err)
	}

	in.PetID = 999
	if _, err := env.svc.Create(context.Background(), "owner-1", in); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected pets.ErrNotFound for missing pet, got %v", err)
	}
}

func TestListByPetBetween_EndOfDayInclusive(t *testing.T) {
	env := newTestEnv(nil)
	petID := env.addPet("owner-1", "dog")

	late := time.Date(2026, 8, 15, 23, 30, 0, 0, time.UTC)
	if _, err := env.svc.Create(context.Background(), "owner-1", CreateInput{
		PetID: petID,
		Time:  late,
		State: "sad",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	day := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	items, err := env.svc.ListByPetBetween(context.Background(), petID, "owner-1", day, day)
	if err != nil {
		t.Fatalf("list between: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected the 23:30 cry inside the single-day range, got %d items", len(items))
	}

	if _, err := env.svc.ListByPetBetween(context.Background(), petID, "owner-1", day, day.AddDate(0, 0, -1)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for inverted range, got %v", err)
	}
}

func TestListByPetWithState_NormalizesQuery(t *testing.T) {
	env := newTestEnv(nil)
	petID := env.addPet("owner-1", "dog")

	if _, err := env.svc.Create(context.Background(), "owner-1", CreateInput{
		PetID: petID,
		Time:  time.Now(),
		State: "anger",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := env.svc.ListByPetWithState(context.Background(), petID, "owner-1", "화남")
	if err != nil {
		t.Fatalf("list by state: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 cry for 화남, got %d", len(items))
	}

	if _, err := env.svc.ListByPetWithState(context.Background(), petID, "owner-1", "lonely"); !errors.Is(err, ErrWrongStateForSpecies) {
		t.Fatalf("expected ErrWrongStateForSpecies for cat state, got %v", err)
	}
}

func TestUpdate_StateRevalidatedAgainstSpecies(t *testing.T) {
	env := newTestEnv(nil)
	petID := env.addPet("owner-1", "dog")

	c, err := env.svc.Create(context.Background(), "owner-1", CreateInput{
		PetID: petID,
		Time:  time.Now(),
		State: "anger",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	bad := "lonely"
	if _, err := env.svc.Update(context.Background(), c.ID, "owner-1", UpdateInput{State: &bad}); !errors.Is(err, ErrWrongStateForSpecies) {
		t.Fatalf("expected ErrWrongStateForSpecies, got %v", err)
	}

	good := "슬픔"
	updated, err := env.svc.Update(context.Background(), c.ID, "owner-1", UpdateInput{State: &good})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.State != "sad" {
		t.Fatalf("expected canonical sad, got %q", updated.State)
	}
}

func TestGetDelete_OwnershipGuard(t *testing.T) {
	env := newTestEnv(nil)
	petID := env.addPet("owner-1", "dog")

	c, err := env.svc.Create(context.Background(), "owner-1", CreateInput{
		PetID: petID,
		Time:  time.Now(),
		State: "anger",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := env.svc.GetByID(context.Background(), c.ID, "stranger"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := env.svc.GetByID(context.Background(), 999, "owner-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := env.svc.Delete(context.Background(), c.ID, "stranger"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized on delete, got %v", err)
	}
	if err := env.svc.Delete(context.Background(), c.ID, "owner-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := env.svc.GetByID(context.Background(), c.ID, "owner-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
