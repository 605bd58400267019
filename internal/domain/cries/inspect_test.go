package cries

import (
	"context"
	"testing"
	"time"
)

func seedCries(env *testEnv, petID int64, n int, state string, duration float64, at time.Time) {
	for i := 0; i < n; i++ {
		env.cries.next++
		env.cries.byID[env.cries.next] = Cry{
			ID:        env.cries.next,
			PetID:     petID,
			Time:      at,
			State:     state,
			Intensity: "medium",
			Duration:  duration,
		}
	}
}

func TestInspect_NotEnoughSamples(t *testing.T) {
	env := newTestEnv(nil)
	petID := env.addPet("owner-1", "dog")

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	env.svc.now = func() time.Time { return now }

	seedCries(env, petID, minInspectSample-1, "anger", 10, now.AddDate(0, 0, -1))

	report, err := env.svc.Inspect(context.Background(), petID, "owner-1")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if report != nil {
		t.Fatalf("expected nil report under the sample floor, got %+v", report)
	}
	if env.reports.puts != 0 {
		t.Fatalf("expected no cache write under the floor, got %d puts", env.reports.puts)
	}
}

func TestInspect_ComputesAndCaches(t *testing.T) {
	env := newTestEnv(nil)
	petID := env.addPet("owner-1", "dog")

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	env.svc.now = func() time.Time { return now }

	day1 := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 11, 21, 0, 0, 0, time.UTC)

	// Medias: anger 10s, play 4s, happy 4s (empate play/happy)
	seedCries(env, petID, 60, "anger", 10, day1)
	seedCries(env, petID, 30, "play", 4, day2)
	seedCries(env, petID, 30, "happy", 4, day2)

	report, err := env.svc.Inspect(context.Background(), petID, "owner-1")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if report == nil {
		t.Fatal("expected a report with 120 samples")
	}

	wantKey := "1_2026-07-21_2026-08-20"
	if report.LogID != wantKey {
		t.Fatalf("expected logId %q, got %q", wantKey, report.LogID)
	}

	if len(report.CryFreqHour) != 24 {
		t.Fatalf("expected 24 hour buckets, got %d", len(report.CryFreqHour))
	}
	if report.CryFreqHour[9] != 60 || report.CryFreqHour[21] != 60 {
		t.Fatalf("unexpected hour histogram: %v", report.CryFreqHour)
	}

	wantDates := []string{"2026-08-10", "2026-08-11"}
	for i, d := range wantDates {
		if report.CryFreqDate.Date[i] != d {
			t.Fatalf("expected date[%d]=%s, got %v", i, d, report.CryFreqDate.Date)
		}
	}
	if report.CryFreqDate.Freqs[0] != 60 || report.CryFreqDate.Freqs[1] != 60 {
		t.Fatalf("unexpected date freqs: %v", report.CryFreqDate.Freqs)
	}

	if report.TypeFreq["anger"] != 60 || report.TypeFreq["play"] != 30 || report.TypeFreq["happy"] != 30 {
		t.Fatalf("unexpected type freq: %v", report.TypeFreq)
	}

	// Orden por media ascendente, empate alfabético: happy, play, anger
	wantTypes := []string{"happy", "play", "anger"}
	for i, st := range wantTypes {
		if report.DurationOfType.Type[i] != st {
			t.Fatalf("expected type order %v, got %v", wantTypes, report.DurationOfType.Type)
		}
	}

	// Restando el mínimo: [0, 0, 6]; escalado por el máximo: [0, 0, 1]
	wantDur := []float64{0, 0, 6}
	wantPct := []float64{0, 0, 1}
	for i := range wantTypes {
		if report.DurationOfType.Duration[i] != wantDur[i] {
			t.Fatalf("expected durations %v, got %v", wantDur, report.DurationOfType.Duration)
		}
		if report.DurationOfType.BarPercent[i] != wantPct[i] {
			t.Fatalf("expected percents %v, got %v", wantPct, report.DurationOfType.BarPercent)
		}
	}
	for _, p := range report.DurationOfType.BarPercent {
		if p < 0 || p > 1 {
			t.Fatalf("bar percent out of [0,1]: %v", report.DurationOfType.BarPercent)
		}
	}

	if env.reports.puts != 1 {
		t.Fatalf("expected 1 cache write, got %d", env.reports.puts)
	}

	// Llantos nuevos en la misma ventana NO invalidan el reporte
	seedCries(env, petID, 50, "sad", 30, day2)

	again, err := env.svc.Inspect(context.Background(), petID, "owner-1")
	if err != nil {
		t.Fatalf("second inspect: %v", err)
	}
	if again != report {
		t.Fatal("expected the cached report on the second inspect")
	}
	if env.reports.puts != 1 {
		t.Fatalf("expected no extra cache write, got %d puts", env.reports.puts)
	}
}

func TestInspect_OwnershipGuard(t *testing.T) {
	env := newTestEnv(nil)
	petID := env.addPet("owner-1", "dog")

	if _, err := env.svc.Inspect(context.Background(), petID, "stranger"); err == nil {
		t.Fatal("expected error inspecting someone else's pet")
	}
}

func TestBuildReport_AllMeansEqual(t *testing.T) {
	at := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	window := []Cry{
		{ID: 1, Time: at, State: "anger", Duration: 5},
		{ID: 2, Time: at, State: "happy", Duration: 5},
		{ID: 3, Time: at, State: "sad", Duration: 5},
	}

	report, err := buildReport("k", window)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}

	for i := range report.DurationOfType.Type {
		if report.DurationOfType.Duration[i] != 0 {
			t.Fatalf("expected all-zero durations, got %v", report.DurationOfType.Duration)
		}
		if report.DurationOfType.BarPercent[i] != 0 {
			t.Fatalf("expected all-zero percents, got %v", report.DurationOfType.BarPercent)
		}
	}
}

func TestBuildReport_RoundsToThreeDecimals(t *testing.T) {
	at := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	window := []Cry{
		{ID: 1, Time: at, State: "anger", Duration: 1},
		{ID: 2, Time: at, State: "anger", Duration: 2},
		{ID: 3, Time: at, State: "anger", Duration: 2},
		{ID: 4, Time: at, State: "happy", Duration: 1},
	}

	report, err := buildReport("k", window)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}

	// Media de anger = 5/3 ≈ 1.6667 => menos el mínimo (1) = 0.667
	if got := report.DurationOfType.Duration[1]; got != 0.667 {
		t.Fatalf("expected 0.667, got %v", got)
	}
}

func TestBuildReport_RejectsNegativeDuration(t *testing.T) {
	at := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	window := []Cry{{ID: 1, Time: at, State: "anger", Duration: -1}}

	if _, err := buildReport("k", window); err == nil {
		t.Fatal("expected error for negative duration")
	}
}
