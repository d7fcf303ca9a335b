package httpapi

import (
	"net/http"

	"github.com/matchday/lineup-manager/internal/domain/formation"
)

func (h *Handler) ListFormations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFormations")
	defer span.End()

	keys := formation.Keys()
	items := make([]formationDTO, 0, len(keys))
	for _, key := range keys {
		slots, err := formation.Slots(key)
		if err != nil {
			writeInternalError(ctx, w)
			return
		}

		positions := make([]formationSlotDTO, 0, len(slots))
		for _, code := range slots {
			positions = append(positions, formationSlotDTO{
				Code:        code,
				DisplayName: formation.DisplayName(code),
			})
		}

		items = append(items, formationDTO{Key: key, Slots: positions})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type formationDTO struct {
	Key   string             `json:"key"`
	Slots []formationSlotDTO `json:"slots"`
}

type formationSlotDTO struct {
	Code        string `json:"code"`
	DisplayName string `json:"displayName"`
}
