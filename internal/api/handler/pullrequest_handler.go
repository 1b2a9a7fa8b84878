package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/app/service"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/common"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type PullRequestHandler struct {
	prService *service.PullRequestService
	validator *validator.Validate
}

func NewPullRequestHandler(ps *service.PullRequestService) *PullRequestHandler {
	return &PullRequestHandler{prService: ps, validator: validator.New()}
}

func (h *PullRequestHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.getPullRequests) // GET /api/pr?id= for a single PR
	r.Post("/", h.createPullRequest)
	r.Put("/{prID}", h.updatePullRequest)
	r.Delete("/{prID}", h.deletePullRequest)
}

func (h *PullRequestHandler) getPullRequests(w http.ResponseWriter, r *http.Request) {
	if prID := r.URL.Query().Get("id"); prID != "" {
		pr, err := h.prService.GetPullRequest(r.Context(), prID)
		if err != nil {
			common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
			return
		}
		common.RespondWithJSON(w, http.StatusOK, pr)
		return
	}

	prs, err := h.prService.ListPullRequests(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, prs)
}

func (h *PullRequestHandler) createPullRequest(w http.ResponseWriter, r *http.Request) {
	var req service.CreatePullRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	pr, err := h.prService.CreatePullRequest(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, pr)
}

func (h *PullRequestHandler) updatePullRequest(w http.ResponseWriter, r *http.Request) {
	prID := chi.URLParam(r, "prID")

	var req service.UpdatePullRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	pr, err := h.prService.UpdatePullRequest(r.Context(), prID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, pr)
}

func (h *PullRequestHandler) deletePullRequest(w http.ResponseWriter, r *http.Request) {
	prID := chi.URLParam(r, "prID")

	pr, err := h.prService.DeletePullRequest(r.Context(), prID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, pr)
}
