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

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.playerService.ListPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	item, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(ctx, item))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req playerCreateRequest
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

	item, err := h.playerService.CreatePlayer(ctx, player.Insert{
		Name:              req.Name,
		Number:            req.Number,
		PreferredPosition: req.PreferredPosition,
		Status:            player.Status(req.Status),
		Age:               req.Age,
		Notes:             req.Notes,
		PhotoURL:          req.PhotoURL,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(ctx, item))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	var req playerUpdateRequest
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

	var status *player.Status
	if req.Status != nil {
		s := player.Status(*req.Status)
		status = &s
	}

	item, err := h.playerService.UpdatePlayer(ctx, playerID, player.Update{
		Name:              req.Name,
		Number:            req.Number,
		PreferredPosition: req.PreferredPosition,
		Status:            status,
		Age:               req.Age,
		Notes:             req.Notes,
		PhotoURL:          req.PhotoURL,
		Rating:            req.Rating,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(ctx, item))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	if err := h.playerService.DeletePlayer(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}

type playerCreateRequest struct {
	Name              string `json:"name" validate:"required,max=100"`
	Number            int    `json:"number" validate:"gte=0,lte=99"`
	PreferredPosition string `json:"preferredPosition" validate:"required,max=10"`
	Status            string `json:"status" validate:"omitempty,oneof=available absent injured suspended"`
	Age               *int   `json:"age" validate:"omitempty,gte=5,lte=99"`
	Notes             string `json:"notes" validate:"max=500"`
	PhotoURL          string `json:"photoUrl" validate:"omitempty,url"`
}

type playerUpdateRequest struct {
	Name              *string  `json:"name" validate:"omitempty,max=100"`
	Number            *int     `json:"number" validate:"omitempty,gte=0,lte=99"`
	PreferredPosition *string  `json:"preferredPosition" validate:"omitempty,max=10"`
	Status            *string  `json:"status" validate:"omitempty,oneof=available absent injured suspended"`
	Age               *int     `json:"age" validate:"omitempty,gte=5,lte=99"`
	Notes             *string  `json:"notes" validate:"omitempty,max=500"`
	PhotoURL          *string  `json:"photoUrl" validate:"omitempty,url"`
	Rating            *float64 `json:"rating" validate:"omitempty,gte=1,lte=10"`
}

type playerDTO struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Number            int      `json:"number"`
	PreferredPosition string   `json:"preferredPosition"`
	Status            string   `json:"status"`
	Age               *int     `json:"age,omitempty"`
	Notes             string   `json:"notes,omitempty"`
	PhotoURL          string   `json:"photoUrl,omitempty"`
	EntryOrder        int64    `json:"entryOrder"`
	Rating            *float64 `json:"rating,omitempty"`
}

func playerToDTO(ctx context.Context, v player.Player) playerDTO {
	ctx, span := startSpan(ctx, "httpapi.playerToDTO")
	defer span.End()

	return playerDTO{
		ID:                v.ID,
		Name:              v.Name,
		Number:            v.Number,
		PreferredPosition: v.PreferredPosition,
		Status:            string(v.Status),
		Age:               v.Age,
		Notes:             v.Notes,
		PhotoURL:          v.PhotoURL,
		EntryOrder:        v.EntryOrder,
		Rating:            v.Rating,
	}
}
