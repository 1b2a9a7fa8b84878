package handler

import (
	"net/http"

	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/app/service"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/common"

	"github.com/go-chi/chi/v5"
)

type RankingHandler struct {
	rankingService *service.RankingService
}

func NewRankingHandler(rs *service.RankingService) *RankingHandler {
	return &RankingHandler{rankingService: rs}
}

func (h *RankingHandler) RegisterRoutes(r chi.Router) {
	r.Get("/ranking", h.getRanking) // GET /public/ranking
}

func (h *RankingHandler) getRanking(w http.ResponseWriter, r *http.Request) {
	entries, err := h.rankingService.GetRanking(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, entries)
}
