package memory

import (
	"testing"
	"time"

	"github.com/matchday/lineup-manager/internal/domain/player"
	"github.com/matchday/lineup-manager/internal/platform/id"
)

func TestPlayerRepository_CreateAssignsDefaults(t *testing.T) {
	repo := NewPlayerRepository(id.NewRandomGenerator())

	created, err := repo.Create(t.Context(), player.Insert{
		Name:              "Luca Bianchi",
		Number:            9,
		PreferredPosition: "ST",
	})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}

	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.Status != player.StatusAvailable {
		t.Fatalf("expected default status, got %s", created.Status)
	}
	if created.EntryOrder == 0 {
		t.Fatalf("expected entry order assigned at creation")
	}
}

func TestPlayerRepository_ListPreservesCreationOrder(t *testing.T) {
	repo := NewPlayerRepository(id.NewRandomGenerator())
	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		if _, err := repo.Create(t.Context(), player.Insert{Name: name, PreferredPosition: "CM"}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	listed, err := repo.List(t.Context())
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(listed) != len(names) {
		t.Fatalf("unexpected count: got=%d want=%d", len(listed), len(names))
	}
	for i, name := range names {
		if listed[i].Name != name {
			t.Fatalf("position %d: got=%s want=%s", i, listed[i].Name, name)
		}
	}
}

func TestPlayerRepository_UpdateMergesOnlyProvidedFields(t *testing.T) {
	repo := NewPlayerRepository(id.NewRandomGenerator())
	created, err := repo.Create(t.Context(), player.Insert{
		Name:              "Marco Verdi",
		Number:            4,
		PreferredPosition: "CB",
		Notes:             "strong in the air",
	})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}

	newNumber := 5
	updated, found, err := repo.Update(t.Context(), created.ID, player.Update{Number: &newNumber})
	if err != nil {
		t.Fatalf("update player: %v", err)
	}
	if !found {
		t.Fatalf("expected player to be found")
	}
	if updated.Number != 5 {
		t.Fatalf("number: got=%d want=5", updated.Number)
	}
	if updated.Name != "Marco Verdi" || updated.Notes != "strong in the air" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestPlayerRepository_UpdateMissing(t *testing.T) {
	repo := NewPlayerRepository(id.NewRandomGenerator())

	_, found, err := repo.Update(t.Context(), "missing", player.Update{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if found {
		t.Fatalf("did not expect missing player to be found")
	}
}

func TestPlayerRepository_Delete(t *testing.T) {
	repo := NewPlayerRepository(id.NewRandomGenerator())
	created, err := repo.Create(t.Context(), player.Insert{Name: "Gone Soon", PreferredPosition: "LW"})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}

	removed, err := repo.Delete(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("delete player: %v", err)
	}
	if !removed {
		t.Fatalf("expected delete to report removal")
	}

	if _, found, _ := repo.GetByID(t.Context(), created.ID); found {
		t.Fatalf("expected player gone after delete")
	}

	removed, err = repo.Delete(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if removed {
		t.Fatalf("second delete should report nothing removed")
	}
}

func TestPlayerRepository_EntryOrderMonotonic(t *testing.T) {
	repo := NewPlayerRepository(id.NewRandomGenerator())
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	repo.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Millisecond)
	}

	first, err := repo.Create(t.Context(), player.Insert{Name: "A", PreferredPosition: "GK"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := repo.Create(t.Context(), player.Insert{Name: "B", PreferredPosition: "GK"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if first.EntryOrder >= second.EntryOrder {
		t.Fatalf("entry order not increasing: %d >= %d", first.EntryOrder, second.EntryOrder)
	}
}
