package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lkarow/shop-api/internal/logger"
	"github.com/lkarow/shop-api/internal/store"
	"github.com/lkarow/shop-api/internal/utils"
	"github.com/lkarow/shop-api/models"
)

// listItems serves the catalog listing. Optional query parameters "brand",
// "min_price" and "max_price" narrow the result.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := itemFilterFromQuery(r)
	if err != nil {
		log.Err(err).Msg("invalid catalog filter")
		http.Error(w, "invalid catalog filter", http.StatusBadRequest)
		return
	}

	items, err := h.services.CatalogService.ListItems(ctx, filter)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during catalog listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

// getItem serves one catalog item by the {itemID} URL parameter.
func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid item id")
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	item, err := h.services.CatalogService.GetItem(ctx, itemID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoItemWasFound):
			log.Err(err).Int64("item_id", itemID).Msg("no item was found")
			http.Error(w, "no item was found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during item lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

// itemFilterFromQuery parses the optional catalog filter query parameters.
func itemFilterFromQuery(r *http.Request) (models.ItemFilter, error) {
	query := r.URL.Query()

	filter := models.ItemFilter{Brand: query.Get("brand")}

	if raw := query.Get("min_price"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.ItemFilter{}, err
		}
		filter.MinPrice = &minPrice
	}

	if raw := query.Get("max_price"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.ItemFilter{}, err
		}
		filter.MaxPrice = &maxPrice
	}

	return filter, nil
}
