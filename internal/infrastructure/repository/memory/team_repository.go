package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/matchday/lineup-manager/internal/domain/formation"
	"github.com/matchday/lineup-manager/internal/domain/team"
	"github.com/matchday/lineup-manager/internal/platform/id"
)

// TeamRepository keeps teams in process memory in creation order. The
// editor treats the first team as the current one.
type TeamRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]team.Team
	ids   id.Generator
}

func NewTeamRepository(ids id.Generator) *TeamRepository {
	return &TeamRepository{
		items: make(map[string]team.Team),
		ids:   ids,
	}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.order))
	for _, teamID := range r.order {
		out = append(out, r.items[teamID])
	}

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[teamID]
	return item, ok, nil
}

func (r *TeamRepository) Create(_ context.Context, in team.Insert) (team.Team, error) {
	teamID, err := r.ids.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	formationKey := in.Formation
	if formationKey == "" {
		formationKey = formation.Default
	}

	item := team.Team{
		ID:        teamID,
		Name:      in.Name,
		Coach:     in.Coach,
		Formation: formationKey,
		CaptainID: in.CaptainID,
		MotmID:    in.MotmID,
		LogoURL:   in.LogoURL,
	}

	r.items[teamID] = item
	r.order = append(r.order, teamID)

	return item, nil
}

func (r *TeamRepository) Update(_ context.Context, teamID string, in team.Update) (team.Team, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[teamID]
	if !ok {
		return team.Team{}, false, nil
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Coach != nil {
		item.Coach = *in.Coach
	}
	if in.Formation != nil {
		item.Formation = *in.Formation
	}
	if in.CaptainID != nil {
		item.CaptainID = *in.CaptainID
	}
	if in.MotmID != nil {
		item.MotmID = *in.MotmID
	}
	if in.LogoURL != nil {
		item.LogoURL = *in.LogoURL
	}

	r.items[teamID] = item
	return item, true, nil
}

func (r *TeamRepository) Delete(_ context.Context, teamID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[teamID]; !ok {
		return false, nil
	}

	delete(r.items, teamID)
	for idx, existing := range r.order {
		if existing == teamID {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}

	return true, nil
}
