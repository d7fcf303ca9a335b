package memory

import (
	"context"
	"fmt"

	"github.com/matchday/lineup-manager/internal/domain/formation"
	"github.com/matchday/lineup-manager/internal/domain/team"
)

// SeedDefaultTeam creates the single team every fresh process starts
// with. The editor binds to it until the user creates another.
func SeedDefaultTeam(ctx context.Context, teams team.Repository) (team.Team, error) {
	item, err := teams.Create(ctx, team.Insert{
		Name:      "FC Champions",
		Coach:     "Marco Rossi",
		Formation: formation.Default,
	})
	if err != nil {
		return team.Team{}, fmt.Errorf("seed default team: %w", err)
	}

	return item, nil
}
