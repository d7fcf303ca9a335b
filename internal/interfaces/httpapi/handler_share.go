package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/matchday/lineup-manager/internal/domain/player"
	"github.com/matchday/lineup-manager/internal/usecase"
)

func (h *Handler) GetShareView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetShareView")
	defer span.End()

	query := r.URL.Query()
	teamID := strings.TrimSpace(query.Get("team"))
	formationKey := strings.TrimSpace(query.Get("formation"))

	view, err := h.shareService.BuildShareView(ctx, teamID, formationKey, query.Get("lineup"))
	if err != nil {
		h.logger.WarnContext(ctx, "build share view failed", "team_id", teamID, "formation", formationKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, shareViewToDTO(ctx, view))
}

func (h *Handler) CreateShareLink(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateShareLink")
	defer span.End()

	var req shareLinkRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	query, err := usecase.EncodeShareQuery(req.TeamID, req.Formation, req.Positions)
	if err != nil {
		h.logger.WarnContext(ctx, "encode share link failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, shareLinkDTO{Query: query})
}

type shareLinkRequest struct {
	TeamID    string            `json:"teamId" validate:"required"`
	Formation string            `json:"formation" validate:"required,max=20"`
	Positions map[string]string `json:"positions"`
}

type shareLinkDTO struct {
	Query string `json:"query"`
}

type shareGroupsDTO struct {
	Goalkeepers []playerDTO `json:"goalkeepers"`
	Defenders   []playerDTO `json:"defenders"`
	Midfielders []playerDTO `json:"midfielders"`
	Attackers   []playerDTO `json:"attackers"`
}

type shareViewDTO struct {
	Team      teamDTO        `json:"team"`
	Formation string         `json:"formation"`
	Slots     []boardSlotDTO `json:"slots"`
	Assigned  []playerDTO    `json:"assigned"`
	Groups    shareGroupsDTO `json:"groups"`
	Stats     statsDTO       `json:"stats"`
}

func shareViewToDTO(ctx context.Context, v usecase.ShareView) shareViewDTO {
	ctx, span := startSpan(ctx, "httpapi.shareViewToDTO")
	defer span.End()

	return shareViewDTO{
		Team:      teamToDTO(ctx, v.Team),
		Formation: v.Formation,
		Slots:     boardSlotsToDTO(ctx, v.Slots),
		Assigned:  playersToDTO(ctx, v.Assigned),
		Groups: shareGroupsDTO{
			Goalkeepers: playersToDTO(ctx, v.Groups.Goalkeepers),
			Defenders:   playersToDTO(ctx, v.Groups.Defenders),
			Midfielders: playersToDTO(ctx, v.Groups.Midfielders),
			Attackers:   playersToDTO(ctx, v.Groups.Attackers),
		},
		Stats: statsToDTO(ctx, v.Stats),
	}
}

func playersToDTO(ctx context.Context, players []player.Player) []playerDTO {
	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(ctx, p))
	}

	return items
}
