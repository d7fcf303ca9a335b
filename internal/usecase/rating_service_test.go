package usecase

import (
	"errors"
	"sort"
	"testing"

	"github.com/matchday/lineup-manager/internal/domain/player"
	"github.com/matchday/lineup-manager/internal/infrastructure/repository/memory"
	"github.com/matchday/lineup-manager/internal/platform/id"
)

func newRatingFixture(t *testing.T, workers int) (*memory.PlayerRepository, *RatingService) {
	t.Helper()
	repo := memory.NewPlayerRepository(id.NewRandomGenerator())
	return repo, NewRatingService(repo, workers)
}

func TestRatingService_SubmitRatings(t *testing.T) {
	repo, svc := newRatingFixture(t, 2)

	p1, err := repo.Create(t.Context(), player.Insert{Name: "One", PreferredPosition: "GK"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	p2, err := repo.Create(t.Context(), player.Insert{Name: "Two", PreferredPosition: "ST"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	result, err := svc.SubmitRatings(t.Context(), map[string]float64{
		p1.ID: 7.5,
		p2.ID: 10,
	})
	if err != nil {
		t.Fatalf("submit ratings: %v", err)
	}
	if result.Updated != 2 || len(result.Failed) != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}

	got, exists, err := repo.GetByID(t.Context(), p1.ID)
	if err != nil || !exists {
		t.Fatalf("get after rating: exists=%v err=%v", exists, err)
	}
	if got.Rating == nil || *got.Rating != 7.5 {
		t.Fatalf("rating not persisted: %v", got.Rating)
	}
}

func TestRatingService_RejectsBatchBeforeAnyWrite(t *testing.T) {
	repo, svc := newRatingFixture(t, 2)

	p, err := repo.Create(t.Context(), player.Insert{Name: "One", PreferredPosition: "GK"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cases := map[string]map[string]float64{
		"empty map":        {},
		"empty player id":  {p.ID: 8, "": 5},
		"rating too low":   {p.ID: 0.5},
		"rating too high":  {p.ID: 10.5},
		"valid plus wrong": {p.ID: 8, "other": 11},
	}

	for name, ratings := range cases {
		result, err := svc.SubmitRatings(t.Context(), ratings)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
		if result.Updated != 0 {
			t.Fatalf("%s: writes should not happen: %+v", name, result)
		}
	}

	got, _, err := repo.GetByID(t.Context(), p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Rating != nil {
		t.Fatalf("rejected batch must not touch the roster, rating=%v", *got.Rating)
	}
}

func TestRatingService_PartialApply(t *testing.T) {
	repo, svc := newRatingFixture(t, 3)

	p, err := repo.Create(t.Context(), player.Insert{Name: "One", PreferredPosition: "GK"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	result, err := svc.SubmitRatings(t.Context(), map[string]float64{
		p.ID:      6,
		"ghost-b": 7,
		"ghost-a": 8,
	})
	if err == nil {
		t.Fatalf("expected aggregate error for missing players")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound in aggregate, got %v", err)
	}

	if result.Updated != 1 {
		t.Fatalf("surviving update count: got=%d want=1", result.Updated)
	}
	if len(result.Failed) != 2 || !sort.StringsAreSorted(result.Failed) {
		t.Fatalf("failed ids should be sorted: %v", result.Failed)
	}

	got, _, err := repo.GetByID(t.Context(), p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Rating == nil || *got.Rating != 6 {
		t.Fatalf("valid entry should still commit: %v", got.Rating)
	}
}
