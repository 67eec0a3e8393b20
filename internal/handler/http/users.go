package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lkarow/shop-api/internal/logger"
	"github.com/lkarow/shop-api/internal/service"
	"github.com/lkarow/shop-api/internal/store"
	"github.com/lkarow/shop-api/internal/utils"
	"github.com/lkarow/shop-api/models"
)

// register creates a new shop account and responds with the persisted
// identity. The password never appears in the response.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.UserService.Register(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			http.Error(w, fmt.Sprintf("%s already exists", request.Username), http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

// getUser returns the account identified by the {username} URL parameter.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	foundUser, err := h.services.UserService.GetUser(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Str("username", username).Msg("no user was found")
			http.Error(w, "no user was found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, foundUser, http.StatusOK)
}

// updateUser applies a partial update to the account identified by the
// {username} URL parameter and responds with the updated identity.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.UserService.UpdateUser(ctx, username, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided) || errors.Is(err, store.ErrEmptyUpdate):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Str("username", username).Msg("no user was found")
			http.Error(w, "no user was found", http.StatusNotFound)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			http.Error(w, "username already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}

// deleteUser removes the account identified by the {username} URL parameter.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	if err := h.services.UserService.DeleteUser(ctx, username); err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Str("username", username).Msg("no user was found")
			http.Error(w, "no user was found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user deletion")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: fmt.Sprintf("%s was deleted", username)}, http.StatusOK)
}

// addCartItem puts the item identified by {itemID} into the cart of the
// account identified by {username} and responds with the updated identity.
func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	h.changeCart(w, r, h.services.UserService.AddCartItem)
}

// removeCartItem takes the item identified by {itemID} out of the cart of
// the account identified by {username} and responds with the updated
// identity.
func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	h.changeCart(w, r, h.services.UserService.RemoveCartItem)
}

func (h *Handler) changeCart(w http.ResponseWriter, r *http.Request, operation func(ctx context.Context, username string, itemID int64) (models.User, error)) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid item id")
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	updatedUser, err := operation(ctx, username, itemID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Str("username", username).Msg("no user was found")
			http.Error(w, "no user was found", http.StatusNotFound)
			return
		case errors.Is(err, store.ErrNoItemWasFound):
			log.Err(err).Int64("item_id", itemID).Msg("no item was found")
			http.Error(w, "no item was found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during cart update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}
