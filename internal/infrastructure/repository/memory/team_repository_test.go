package memory

import (
	"testing"

	"github.com/matchday/lineup-manager/internal/domain/formation"
	"github.com/matchday/lineup-manager/internal/domain/player"
	"github.com/matchday/lineup-manager/internal/domain/team"
	"github.com/matchday/lineup-manager/internal/platform/id"
)

func TestTeamRepository_CreateDefaultsFormation(t *testing.T) {
	repo := NewTeamRepository(id.NewRandomGenerator())

	created, err := repo.Create(t.Context(), team.Insert{Name: "AC Test"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if created.Formation != formation.Default {
		t.Fatalf("formation: got=%s want=%s", created.Formation, formation.Default)
	}
}

func TestTeamRepository_ListCreationOrder(t *testing.T) {
	repo := NewTeamRepository(id.NewRandomGenerator())
	for _, name := range []string{"Alpha", "Beta"} {
		if _, err := repo.Create(t.Context(), team.Insert{Name: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	listed, err := repo.List(t.Context())
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(listed) != 2 || listed[0].Name != "Alpha" || listed[1].Name != "Beta" {
		t.Fatalf("unexpected listing: %v", listed)
	}
}

func TestTeamRepository_UpdateMergesOnlyProvidedFields(t *testing.T) {
	repo := NewTeamRepository(id.NewRandomGenerator())
	created, err := repo.Create(t.Context(), team.Insert{Name: "AC Test", Coach: "Mister"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	newFormation := "4-3-3"
	updated, found, err := repo.Update(t.Context(), created.ID, team.Update{Formation: &newFormation})
	if err != nil {
		t.Fatalf("update team: %v", err)
	}
	if !found {
		t.Fatalf("expected team to be found")
	}
	if updated.Formation != "4-3-3" {
		t.Fatalf("formation: got=%s want=4-3-3", updated.Formation)
	}
	if updated.Coach != "Mister" {
		t.Fatalf("coach changed unexpectedly: %s", updated.Coach)
	}
}

func TestTeamRepository_CaptainReferenceSurvivesPlayerDelete(t *testing.T) {
	ids := id.NewRandomGenerator()
	teams := NewTeamRepository(ids)
	players := NewPlayerRepository(ids)

	captain, err := players.Create(t.Context(), player.Insert{Name: "Skipper", PreferredPosition: "CB"})
	if err != nil {
		t.Fatalf("create captain: %v", err)
	}

	created, err := teams.Create(t.Context(), team.Insert{Name: "AC Test", CaptainID: captain.ID})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	if _, err := players.Delete(t.Context(), captain.ID); err != nil {
		t.Fatalf("delete captain: %v", err)
	}

	// No cascade: the team keeps the stale captain id and readers are
	// expected to resolve it tolerantly.
	got, found, err := teams.GetByID(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if !found {
		t.Fatalf("expected team to survive")
	}
	if got.CaptainID != captain.ID {
		t.Fatalf("captain id: got=%s want=%s", got.CaptainID, captain.ID)
	}
}

func TestSeedDefaultTeam(t *testing.T) {
	repo := NewTeamRepository(id.NewRandomGenerator())

	seeded, err := SeedDefaultTeam(t.Context(), repo)
	if err != nil {
		t.Fatalf("seed default team: %v", err)
	}
	if seeded.Name != "FC Champions" || seeded.Coach != "Marco Rossi" {
		t.Fatalf("unexpected seed team: %+v", seeded)
	}
	if seeded.Formation != formation.Default {
		t.Fatalf("seed formation: got=%s want=%s", seeded.Formation, formation.Default)
	}
}
