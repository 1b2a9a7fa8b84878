package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/app/service"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/common"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ProblemHandler struct {
	problemService *service.ProblemService
	validator      *validator.Validate
}

func NewProblemHandler(ps *service.ProblemService) *ProblemHandler {
	return &ProblemHandler{problemService: ps, validator: validator.New()}
}

func (h *ProblemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.getProblems) // GET /api/problem?id= for a single problem
	r.Post("/", h.createProblem)
	r.Put("/{problemID}", h.updateProblem)
	r.Delete("/{problemID}", h.deleteProblem)
}

func (h *ProblemHandler) getProblems(w http.ResponseWriter, r *http.Request) {
	if problemID := r.URL.Query().Get("id"); problemID != "" {
		problem, err := h.problemService.GetProblem(r.Context(), problemID)
		if err != nil {
			common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
			return
		}
		common.RespondWithJSON(w, http.StatusOK, problem)
		return
	}

	problems, err := h.problemService.ListProblems(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, problems)
}

func (h *ProblemHandler) createProblem(w http.ResponseWriter, r *http.Request) {
	var req service.CreateProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	problem, err := h.problemService.CreateProblem(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, problem)
}

func (h *ProblemHandler) updateProblem(w http.ResponseWriter, r *http.Request) {
	problemID := chi.URLParam(r, "problemID")

	var req service.UpdateProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	problem, err := h.problemService.UpdateProblem(r.Context(), problemID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, problem)
}

func (h *ProblemHandler) deleteProblem(w http.ResponseWriter, r *http.Request) {
	problemID := chi.URLParam(r, "problemID")

	problem, err := h.problemService.DeleteProblem(r.Context(), problemID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, problem)
}
