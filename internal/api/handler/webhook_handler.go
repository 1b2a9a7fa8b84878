package handler

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/app/service"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/common"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/common/security"

	"github.com/go-chi/chi/v5"
)

type WebhookHandler struct {
	webhookService *service.WebhookService
	secret         []byte
}

func NewWebhookHandler(ws *service.WebhookService, secret string) *WebhookHandler {
	return &WebhookHandler{webhookService: ws, secret: []byte(secret)}
}

func (h *WebhookHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.handlePullRequestEvent) // POST /github
}

// handlePullRequestEvent authenticates the delivery against the raw body
// before any parsing. Every authenticated delivery gets the same 200
// response whether it was ingested or ignored.
func (h *WebhookHandler) handlePullRequestEvent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	defer r.Body.Close()

	signature := r.Header.Get("X-Hub-Signature-256")
	if !security.VerifySignature(h.secret, body, signature) {
		common.RespondWithError(w, http.StatusForbidden, "unauthorized")
		return
	}

	var payload service.PullRequestEventPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("Webhook ignored: unparseable payload: %v", err)
		common.RespondWithJSON(w, http.StatusOK, map[string]string{"response": "ok"})
		return
	}

	if _, err := h.webhookService.HandlePullRequestEvent(r.Context(), payload); err != nil {
		log.Printf("ERROR: Webhook processing failed: %v", err)
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"response": "ok"})
}
