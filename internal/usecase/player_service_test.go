package usecase

import (
	"errors"
	"testing"

	"github.com/matchday/lineup-manager/internal/domain/player"
	"github.com/matchday/lineup-manager/internal/infrastructure/repository/memory"
	"github.com/matchday/lineup-manager/internal/platform/id"
)

func TestPlayerService_CreatePlayer_TrimsAndValidates(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(id.NewRandomGenerator()))

	created, err := svc.CreatePlayer(t.Context(), player.Insert{
		Name:              "  Luca Bianchi  ",
		PreferredPosition: " ST ",
		Number:            9,
	})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if created.Name != "Luca Bianchi" || created.PreferredPosition != "ST" {
		t.Fatalf("expected trimmed fields, got %+v", created)
	}
}

func TestPlayerService_CreatePlayer_RejectsMissingFields(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(id.NewRandomGenerator()))

	_, err := svc.CreatePlayer(t.Context(), player.Insert{Name: "   ", PreferredPosition: "ST"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}

	_, err = svc.CreatePlayer(t.Context(), player.Insert{Name: "Luca", PreferredPosition: ""})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank position, got %v", err)
	}
}

func TestPlayerService_GetPlayer_NotFound(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(id.NewRandomGenerator()))

	_, err := svc.GetPlayer(t.Context(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_UpdatePlayer_RejectsBlankPointerFields(t *testing.T) {
	repo := memory.NewPlayerRepository(id.NewRandomGenerator())
	svc := NewPlayerService(repo)

	created, err := svc.CreatePlayer(t.Context(), player.Insert{Name: "Luca", PreferredPosition: "ST"})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}

	blank := "   "
	_, err = svc.UpdatePlayer(t.Context(), created.ID, player.Update{Name: &blank})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	_, err = svc.UpdatePlayer(t.Context(), created.ID, player.Update{PreferredPosition: &blank})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank position, got %v", err)
	}
}

func TestPlayerService_DeletePlayer(t *testing.T) {
	repo := memory.NewPlayerRepository(id.NewRandomGenerator())
	svc := NewPlayerService(repo)

	created, err := svc.CreatePlayer(t.Context(), player.Insert{Name: "Luca", PreferredPosition: "ST"})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}

	if err := svc.DeletePlayer(t.Context(), created.ID); err != nil {
		t.Fatalf("delete player: %v", err)
	}
	if err := svc.DeletePlayer(t.Context(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
