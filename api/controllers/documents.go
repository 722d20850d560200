package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hobfurniture/orderdesk-backend/api/responses"
	"github.com/hobfurniture/orderdesk-backend/api/validators"
	"github.com/hobfurniture/orderdesk-backend/internal/export"
	"github.com/hobfurniture/orderdesk-backend/internal/state"
	"github.com/hobfurniture/orderdesk-backend/internal/views"
	"github.com/hobfurniture/orderdesk-backend/pkg/enums"
	pkgerrors "github.com/hobfurniture/orderdesk-backend/pkg/errors"
	"github.com/hobfurniture/orderdesk-backend/pkg/logger"
	"github.com/hobfurniture/orderdesk-backend/pkg/types"
)

// SavingReporter exposes the autosave indicator to the document views.
type SavingReporter interface {
	Saving() bool
}

func parseDocumentKind(r *http.Request) (enums.DocumentKind, error) {
	kind, err := enums.ParseDocumentKind(chi.URLParam(r, "kind"))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown document kind")
	}
	return kind, nil
}

// GetDocument returns the view-specific projection of the shared state.
func GetDocument(engine *state.Engine, saving SavingReporter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := parseDocumentKind(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		binding := views.For(kind)
		responses.WriteSuccess(w, binding.Project(engine.Snapshot(), saving.Saving()))
	}
}

// UpdateDocumentNumber writes an edited document number back to the
// canonical order number, de-prefixing it for receipt views first.
func UpdateDocumentNumber(engine *state.Engine, logg *logger.Logger) http.HandlerFunc {
	type request struct {
		Number string `json:"number" validate:"required"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := parseDocumentKind(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req request
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		binding := views.For(kind)
		order := engine.Snapshot().Order
		order.OrderNumber = binding.NormalizeOrderNumber(req.Number)
		engine.UpdateOrder(order)

		responses.WriteSuccess(w, map[string]string{"orderNumber": order.OrderNumber})
	}
}

// ExportDocument renders the projection to PDF. With ?capture=1 the artifact
// is also recorded in the gallery as a capture.
func ExportDocument(engine *state.Engine, saving SavingReporter, renderer *export.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := parseDocumentKind(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		binding := views.For(kind)
		doc := binding.Project(engine.Snapshot(), saving.Saving())

		payload, err := renderer.Render(doc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "document export failed"))
			return
		}

		filename := binding.ExportFilename(doc.Order)
		if r.URL.Query().Get("capture") == "1" {
			engine.AddGalleryItem(types.GalleryItem{
				URL:     "captures/" + filename,
				Caption: doc.Title + " " + doc.DocumentNumber,
				Date:    time.Now().Format("02/01/2006"),
				Type:    enums.GalleryImageTypeCapture,
			})
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(payload); err != nil {
			logg.Error(r.Context(), "failed to stream pdf", err)
		}
	}
}
