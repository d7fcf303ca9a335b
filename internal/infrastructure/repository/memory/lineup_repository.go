package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/matchday/lineup-manager/internal/domain/lineup"
	"github.com/matchday/lineup-manager/internal/platform/id"
)

// LineupRepository keeps saved lineups in process memory in creation
// order. Positions maps are cloned on every boundary crossing so
// callers cannot mutate stored state.
type LineupRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]lineup.Lineup
	ids   id.Generator
}

func NewLineupRepository(ids id.Generator) *LineupRepository {
	return &LineupRepository{
		items: make(map[string]lineup.Lineup),
		ids:   ids,
	}
}

func (r *LineupRepository) List(_ context.Context, teamID string) ([]lineup.Lineup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]lineup.Lineup, 0, len(r.order))
	for _, lineupID := range r.order {
		item := r.items[lineupID]
		if teamID != "" && item.TeamID != teamID {
			continue
		}
		out = append(out, cloneLineup(item))
	}

	return out, nil
}

func (r *LineupRepository) GetByID(_ context.Context, lineupID string) (lineup.Lineup, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[lineupID]
	if !ok {
		return lineup.Lineup{}, false, nil
	}

	return cloneLineup(item), true, nil
}

func (r *LineupRepository) Create(_ context.Context, in lineup.Insert) (lineup.Lineup, error) {
	lineupID, err := r.ids.NewID()
	if err != nil {
		return lineup.Lineup{}, fmt.Errorf("generate lineup id: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item := lineup.Lineup{
		ID:        lineupID,
		TeamID:    in.TeamID,
		Name:      in.Name,
		Formation: in.Formation,
		Positions: clonePositions(in.Positions),
	}

	r.items[lineupID] = item
	r.order = append(r.order, lineupID)

	return cloneLineup(item), nil
}

func (r *LineupRepository) Update(_ context.Context, lineupID string, in lineup.Update) (lineup.Lineup, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[lineupID]
	if !ok {
		return lineup.Lineup{}, false, nil
	}

	if in.TeamID != nil {
		item.TeamID = *in.TeamID
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Formation != nil {
		item.Formation = *in.Formation
	}
	if in.Positions != nil {
		item.Positions = clonePositions(in.Positions)
	}

	r.items[lineupID] = item
	return cloneLineup(item), true, nil
}

func (r *LineupRepository) Delete(_ context.Context, lineupID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[lineupID]; !ok {
		return false, nil
	}

	delete(r.items, lineupID)
	for idx, existing := range r.order {
		if existing == lineupID {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}

	return true, nil
}

func cloneLineup(item lineup.Lineup) lineup.Lineup {
	copied := item
	copied.Positions = clonePositions(item.Positions)
	return copied
}

func clonePositions(positions map[string]string) map[string]string {
	if positions == nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(positions))
	for slot, playerID := range positions {
		out[slot] = playerID
	}
	return out
}
