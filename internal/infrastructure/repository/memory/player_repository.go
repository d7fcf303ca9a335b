package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/matchday/lineup-manager/internal/domain/player"
	"github.com/matchday/lineup-manager/internal/platform/id"
)

// PlayerRepository keeps the roster in process memory. Order of
// creation is preserved so listings follow registration order.
type PlayerRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]player.Player
	ids   id.Generator
	now   func() time.Time
}

func NewPlayerRepository(ids id.Generator) *PlayerRepository {
	return &PlayerRepository{
		items: make(map[string]player.Player),
		ids:   ids,
		now:   time.Now,
	}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.order))
	for _, playerID := range r.order {
		out = append(out, r.items[playerID])
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[playerID]
	return item, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, in player.Insert) (player.Player, error) {
	playerID, err := r.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	status := in.Status
	if status == "" {
		status = player.DefaultStatus
	}
	entryOrder := in.EntryOrder
	if entryOrder == 0 {
		entryOrder = r.now().UnixMilli()
	}

	item := player.Player{
		ID:                playerID,
		Name:              in.Name,
		Number:            in.Number,
		PreferredPosition: in.PreferredPosition,
		Status:            status,
		Age:               in.Age,
		Notes:             in.Notes,
		PhotoURL:          in.PhotoURL,
		EntryOrder:        entryOrder,
		Rating:            in.Rating,
	}

	r.items[playerID] = item
	r.order = append(r.order, playerID)

	return item, nil
}

func (r *PlayerRepository) Update(_ context.Context, playerID string, in player.Update) (player.Player, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[playerID]
	if !ok {
		return player.Player{}, false, nil
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Number != nil {
		item.Number = *in.Number
	}
	if in.PreferredPosition != nil {
		item.PreferredPosition = *in.PreferredPosition
	}
	if in.Status != nil {
		item.Status = *in.Status
	}
	if in.Age != nil {
		item.Age = in.Age
	}
	if in.Notes != nil {
		item.Notes = *in.Notes
	}
	if in.PhotoURL != nil {
		item.PhotoURL = *in.PhotoURL
	}
	if in.EntryOrder != nil {
		item.EntryOrder = *in.EntryOrder
	}
	if in.Rating != nil {
		item.Rating = in.Rating
	}

	r.items[playerID] = item
	return item, true, nil
}

// Delete removes a player from the roster only. Teams keeping the id as
// captain or man of the match, and saved lineups holding it in a slot,
// are left untouched; readers resolve those stale ids to "none".
func (r *PlayerRepository) Delete(_ context.Context, playerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[playerID]; !ok {
		return false, nil
	}

	delete(r.items, playerID)
	for idx, existing := range r.order {
		if existing == playerID {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}

	return true, nil
}
