package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/matchday/lineup-manager/internal/usecase"
)

func (h *Handler) SubmitRatings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitRatings")
	defer span.End()

	var req ratingsRequest
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

	result, err := h.ratingService.SubmitRatings(ctx, req.Ratings)
	if err != nil {
		h.logger.WarnContext(ctx, "submit ratings failed", "count", len(req.Ratings), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ratingResultDTO{
		Updated: result.Updated,
		Failed:  result.Failed,
	})
}

type ratingsRequest struct {
	Ratings map[string]float64 `json:"ratings" validate:"required,min=1,dive,gte=1,lte=10"`
}

type ratingResultDTO struct {
	Updated int      `json:"updated"`
	Failed  []string `json:"failed,omitempty"`
}
