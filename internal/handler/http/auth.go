package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lkarow/shop-api/internal/logger"
	"github.com/lkarow/shop-api/internal/service"
	"github.com/lkarow/shop-api/internal/utils"
	"github.com/lkarow/shop-api/models"
)

// loginFailedMessage is the single opaque body returned for every login
// failure. The response never reveals whether the username existed or the
// password was wrong; that distinction only reaches the server log.
const loginFailedMessage = "Something is not right"

// login authenticates a username/password pair and, on success, responds
// with the identity (password hash stripped) and a freshly signed bearer
// token. Every failure — bad JSON, missing fields, unknown user, wrong
// password, even a store outage — collapses into one 400 response with an
// opaque message.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: loginFailedMessage}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid credentials")
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
		}

		utils.WriteJSON(w, models.MessageResponse{Message: loginFailedMessage}, http.StatusBadRequest)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.MessageResponse{Message: loginFailedMessage}, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{User: foundUser, Token: token.SignedString}, http.StatusOK)
}
