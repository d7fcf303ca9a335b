package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/matchday/lineup-manager/internal/domain/formation"
	"github.com/matchday/lineup-manager/internal/domain/player"
	"github.com/matchday/lineup-manager/internal/domain/selection"
	"github.com/matchday/lineup-manager/internal/domain/team"
)

// ShareView is the read-only reconstruction of a shared lineup. It is
// rebuilt from three opaque values (team id, formation key, JSON
// assignment) plus the live roster, so it shows the same derived state
// as the editor at the moment the link is opened.
type ShareView struct {
	Team      team.Team
	Formation string
	Slots     []BoardSlot
	Assigned  []player.Player
	Groups    selection.ShareGroups
	Stats     selection.Stats
}

type ShareService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
}

func NewShareService(playerRepo player.Repository, teamRepo team.Repository) *ShareService {
	return &ShareService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
	}
}

// BuildShareView resolves the three share-link values. The team id
// falls back to the first stored team when it does not resolve, and an
// empty formation key falls back to the team's formation. The lineup
// value is the JSON slot→player-id map, possibly still URL-escaped.
func (s *ShareService) BuildShareView(ctx context.Context, teamID, formationKey, lineupParam string) (ShareView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ShareService.BuildShareView")
	defer span.End()

	a, err := DecodeAssignment(lineupParam)
	if err != nil {
		return ShareView{}, fmt.Errorf("%w: lineup parameter is not a valid assignment: %v", ErrInvalidInput, err)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return ShareView{}, fmt.Errorf("list players: %w", err)
	}
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return ShareView{}, fmt.Errorf("list teams: %w", err)
	}
	if len(teams) == 0 {
		return ShareView{}, fmt.Errorf("%w: share link does not resolve to any team", ErrNotFound)
	}

	shareTeam := teams[0]
	for _, t := range teams {
		if t.ID == strings.TrimSpace(teamID) {
			shareTeam = t
			break
		}
	}

	formationKey = strings.TrimSpace(formationKey)
	if formationKey == "" {
		formationKey = shareTeam.Formation
	}
	if formationKey == "" {
		formationKey = formation.Default
	}
	slots, err := formation.Slots(formationKey)
	if err != nil {
		return ShareView{}, fmt.Errorf("%w: formation=%s", ErrInvalidInput, formationKey)
	}

	boardSlots := make([]BoardSlot, 0, len(slots))
	for _, code := range slots {
		slot := BoardSlot{
			Code:        code,
			DisplayName: formation.DisplayName(code),
		}
		if occupant, ok := selection.PlayerAt(a, players, code); ok {
			p := occupant
			slot.Player = &p
			slot.Captain = selection.IsCaptain(shareTeam, p)
			slot.Motm = selection.IsMotm(shareTeam, p)
		}
		boardSlots = append(boardSlots, slot)
	}

	return ShareView{
		Team:      shareTeam,
		Formation: formationKey,
		Slots:     boardSlots,
		Assigned:  selection.AssignedPlayers(a, players),
		Groups:    selection.GroupForShare(a, slots, players),
		Stats:     selection.ComputeStats(a, players),
	}, nil
}

// EncodeShareQuery builds the querystring the host appends to its share
// URL: the team id, the formation key and the URL-escaped JSON
// assignment, in that order.
func EncodeShareQuery(teamID, formationKey string, a selection.Assignment) (string, error) {
	payload, err := sonic.Marshal(map[string]string(a))
	if err != nil {
		return "", fmt.Errorf("marshal assignment: %w", err)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString("team=")
	buf.WriteString(url.QueryEscape(teamID))
	buf.WriteString("&formation=")
	buf.WriteString(url.QueryEscape(formationKey))
	buf.WriteString("&lineup=")
	buf.WriteString(url.QueryEscape(string(payload)))

	return buf.String(), nil
}

// DecodeAssignment parses the share-link lineup value. An empty value
// means an empty assignment. Hosts that escape the JSON a second time
// are tolerated by unescaping and retrying once.
func DecodeAssignment(raw string) (selection.Assignment, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return selection.Assignment{}, nil
	}

	var positions map[string]string
	if err := sonic.Unmarshal([]byte(raw), &positions); err != nil {
		unescaped, unescapeErr := url.QueryUnescape(raw)
		if unescapeErr != nil {
			return nil, err
		}
		if retryErr := sonic.Unmarshal([]byte(unescaped), &positions); retryErr != nil {
			return nil, err
		}
	}

	return selection.Assignment(positions), nil
}
