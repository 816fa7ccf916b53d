package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	httputil "hotelbooking/pkg/http"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/token"
)

type AuthHandler struct {
	issuer *token.Issuer
	log    *logger.Logger
}

func NewAuthHandler(issuer *token.Issuer, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		issuer: issuer,
		log:    log,
	}
}

// IssueToken signs whatever user payload the client posts and returns the
// raw token. No other endpoint checks it.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "IssueToken", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	signed, err := h.issuer.Sign(payload)
	if err != nil {
		h.log.Error("Failed to sign token", "error", err)
		if writeErr := httputil.WriteJSON(w, http.StatusInternalServerError, httputil.ErrorResponse{
			Error: "Failed to issue token",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "IssueToken", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteText(w, http.StatusOK, signed); err != nil {
		h.log.Error("failed to write token response", "handler", "IssueToken", "operation", "WriteText", "error", err)
	}
}

func (h *AuthHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/jwt", h.IssueToken)
}
