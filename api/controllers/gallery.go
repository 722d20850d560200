package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hobfurniture/orderdesk-backend/api/responses"
	"github.com/hobfurniture/orderdesk-backend/api/validators"
	"github.com/hobfurniture/orderdesk-backend/internal/state"
	"github.com/hobfurniture/orderdesk-backend/pkg/enums"
	pkgerrors "github.com/hobfurniture/orderdesk-backend/pkg/errors"
	"github.com/hobfurniture/orderdesk-backend/pkg/logger"
	"github.com/hobfurniture/orderdesk-backend/pkg/types"
)

// ListGallery returns the gallery, most recent first.
func ListGallery(engine *state.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		responses.WriteSuccess(w, engine.Gallery())
	}
}

// AddGalleryItem records a new image at the front of the gallery.
func AddGalleryItem(engine *state.Engine, logg *logger.Logger) http.HandlerFunc {
	type request struct {
		URL     string `json:"url" validate:"required"`
		Caption string `json:"caption"`
		Date    string `json:"date"`
		Type    string `json:"type"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		imageType := enums.GalleryImageTypeProduction
		if req.Type != "" {
			parsed, err := enums.ParseGalleryImageType(req.Type)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown gallery image type"))
				return
			}
			imageType = parsed
		}

		date := req.Date
		if date == "" {
			date = time.Now().Format("02/01/2006")
		}

		item := engine.AddGalleryItem(types.GalleryItem{
			URL:     req.URL,
			Caption: req.Caption,
			Date:    date,
			Type:    imageType,
		})
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// RemoveGalleryItem deletes by id; unknown ids are a quiet no-op.
func RemoveGalleryItem(engine *state.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine.RemoveGalleryItem(chi.URLParam(r, "id"))
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}
