package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/app/service"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/common"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService *service.UserService
	validator   *validator.Validate
}

func NewUserHandler(us *service.UserService) *UserHandler {
	return &UserHandler{userService: us, validator: validator.New()}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.getUsers) // GET /api/user?nickname= for a single user
	r.Post("/", h.createUser)
	r.Put("/{nickname}", h.updateUser)
	r.Delete("/{nickname}", h.deleteUser)
}

func (h *UserHandler) getUsers(w http.ResponseWriter, r *http.Request) {
	if nickname := r.URL.Query().Get("nickname"); nickname != "" {
		user, err := h.userService.GetUser(r.Context(), nickname)
		if err != nil {
			common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
			return
		}
		common.RespondWithJSON(w, http.StatusOK, user)
		return
	}

	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, users)
}

func (h *UserHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req service.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	nickname := chi.URLParam(r, "nickname")

	var req service.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), nickname, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	nickname := chi.URLParam(r, "nickname")

	user, err := h.userService.DeleteUser(r.Context(), nickname)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}
