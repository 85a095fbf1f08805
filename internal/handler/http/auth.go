package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req, err := requestBody[models.RegisterRequest](r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", resp.ID).Msg("user registered")
	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req, err := requestBody[models.LoginRequest](r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", resp.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) currentSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, _ := utils.GetUserIDFromContext(ctx)
	rawToken, _ := utils.GetTokenFromContext(ctx)

	session, err := h.services.AuthService.CurrentSession(ctx, userID, rawToken)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}
