package admin

import (
	"net/http"
	"strconv"

	"elephant_backend/internal/config"
	"elephant_backend/internal/converter"
	"elephant_backend/internal/middleware"
	"elephant_backend/internal/service"
	"elephant_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv       service.GameService
	CreatorCfg config.CreatorConfig
}

type Handler struct {
	serv       service.GameService
	creatorCfg config.CreatorConfig
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:       deps.Serv,
		creatorCfg: deps.CreatorCfg,
	}
}

// Summaries - последние итоги сессий. Доступно только создателю
func (h *Handler) Summaries(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok || userID != h.creatorCfg.CreatorID() {
		http.Error(w, "unauthorized", http.StatusForbidden)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records, err := h.serv.RecentSummaries(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSummaryRecords(records))
}
