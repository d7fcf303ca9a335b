package usecase

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matchday/lineup-manager/internal/domain/player"
	"github.com/matchday/lineup-manager/internal/domain/selection"
	"github.com/matchday/lineup-manager/internal/domain/team"
	"github.com/matchday/lineup-manager/internal/infrastructure/repository/memory"
	"github.com/matchday/lineup-manager/internal/platform/id"
)

type shareFixture struct {
	players *memory.PlayerRepository
	teams   *memory.TeamRepository
	svc     *ShareService
}

func newShareFixture(t *testing.T) shareFixture {
	t.Helper()
	ids := id.NewRandomGenerator()
	players := memory.NewPlayerRepository(ids)
	teams := memory.NewTeamRepository(ids)
	return shareFixture{
		players: players,
		teams:   teams,
		svc:     NewShareService(players, teams),
	}
}

func TestShareService_RoundTrip(t *testing.T) {
	f := newShareFixture(t)

	keeper, err := f.players.Create(t.Context(), player.Insert{Name: "Keeper", PreferredPosition: "GK"})
	require.NoError(t, err)
	striker, err := f.players.Create(t.Context(), player.Insert{Name: "Striker", PreferredPosition: "ST"})
	require.NoError(t, err)

	home, err := f.teams.Create(t.Context(), team.Insert{Name: "Home", Formation: "4-3-3", CaptainID: keeper.ID})
	require.NoError(t, err)

	a := selection.Assignment{"GK": keeper.ID, "ST": striker.ID}
	query, err := EncodeShareQuery(home.ID, "4-3-3", a)
	require.NoError(t, err)

	values, err := url.ParseQuery(query)
	require.NoError(t, err)

	view, err := f.svc.BuildShareView(t.Context(),
		values.Get("team"), values.Get("formation"), values.Get("lineup"))
	require.NoError(t, err)

	require.Equal(t, home.ID, view.Team.ID)
	require.Equal(t, "4-3-3", view.Formation)
	require.Len(t, view.Slots, 11)

	require.NotNil(t, view.Slots[0].Player)
	require.Equal(t, keeper.ID, view.Slots[0].Player.ID)
	require.True(t, view.Slots[0].Captain)

	require.Len(t, view.Assigned, 2)
	require.Len(t, view.Groups.Goalkeepers, 1)
	require.Len(t, view.Groups.Attackers, 1)
	require.Equal(t, 2, view.Stats.Starters)
}

func TestShareService_TeamAndFormationFallback(t *testing.T) {
	f := newShareFixture(t)

	first, err := f.teams.Create(t.Context(), team.Insert{Name: "First", Formation: "3-5-2"})
	require.NoError(t, err)
	_, err = f.teams.Create(t.Context(), team.Insert{Name: "Second", Formation: "4-4-2"})
	require.NoError(t, err)

	view, err := f.svc.BuildShareView(t.Context(), "no-such-team", "", "")
	require.NoError(t, err)
	require.Equal(t, first.ID, view.Team.ID)
	require.Equal(t, "3-5-2", view.Formation)
}

func TestShareService_NoTeams(t *testing.T) {
	f := newShareFixture(t)

	_, err := f.svc.BuildShareView(t.Context(), "", "", "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestShareService_InvalidLineupParam(t *testing.T) {
	f := newShareFixture(t)

	_, err := f.teams.Create(t.Context(), team.Insert{Name: "Home"})
	require.NoError(t, err)

	_, err = f.svc.BuildShareView(t.Context(), "", "", "{not json")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestShareService_UnknownFormation(t *testing.T) {
	f := newShareFixture(t)

	_, err := f.teams.Create(t.Context(), team.Insert{Name: "Home"})
	require.NoError(t, err)

	_, err = f.svc.BuildShareView(t.Context(), "", "2-2-2", "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDecodeAssignment(t *testing.T) {
	a, err := DecodeAssignment("")
	require.NoError(t, err)
	require.Empty(t, a)

	a, err = DecodeAssignment(`{"GK":"p1"}`)
	require.NoError(t, err)
	require.Equal(t, selection.Assignment{"GK": "p1"}, a)

	// Hosts sometimes escape the JSON a second time.
	a, err = DecodeAssignment(url.QueryEscape(`{"GK":"p1"}`))
	require.NoError(t, err)
	require.Equal(t, selection.Assignment{"GK": "p1"}, a)

	_, err = DecodeAssignment("{{{")
	require.Error(t, err)
}
