package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hobfurniture/orderdesk-backend/api/responses"
	"github.com/hobfurniture/orderdesk-backend/api/validators"
	"github.com/hobfurniture/orderdesk-backend/internal/state"
	"github.com/hobfurniture/orderdesk-backend/pkg/enums"
	pkgerrors "github.com/hobfurniture/orderdesk-backend/pkg/errors"
	"github.com/hobfurniture/orderdesk-backend/pkg/logger"
	"github.com/hobfurniture/orderdesk-backend/pkg/types"
)

// GetOrder returns the canonical order record.
func GetOrder(engine *state.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		responses.WriteSuccess(w, engine.Snapshot().Order)
	}
}

// UpdateOrder replaces the order wholesale. Used for header edits that do
// not touch the items; the submitted derived fields must already agree with
// the items.
func UpdateOrder(engine *state.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var order types.Order
		if err := validators.DecodeJSONBody(r, &order); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !order.Status.IsValid() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status"))
			return
		}

		engine.UpdateOrder(order)
		responses.WriteSuccess(w, engine.Snapshot().Order)
	}
}

// AddOrderItem appends a default line item and returns it.
func AddOrderItem(engine *state.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		item := engine.AddOrderItem()
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// UpdateOrderItem sets one field on the item at {index}.
func UpdateOrderItem(engine *state.Engine, logg *logger.Logger) http.HandlerFunc {
	type request struct {
		Field string `json:"field" validate:"required"`
		Value any    `json:"value"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := parseItemIndex(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req request
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		field, err := enums.ParseOrderItemField(req.Field)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown item field"))
			return
		}

		if err := engine.UpdateOrderItem(index, field, req.Value); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, engine.Snapshot().Order)
	}
}

// RemoveOrderItem deletes the item at {index}.
func RemoveOrderItem(engine *state.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := parseItemIndex(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := engine.RemoveOrderItem(index); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, engine.Snapshot().Order)
	}
}

// UpdateAmountPaid sets the amount paid and returns the recomputed order.
// The amount is coerced by the engine, so free-text form input is accepted.
func UpdateAmountPaid(engine *state.Engine, logg *logger.Logger) http.HandlerFunc {
	type request struct {
		Amount any `json:"amount"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		engine.UpdateAmountPaid(req.Amount)
		responses.WriteSuccess(w, engine.Snapshot().Order)
	}
}

func parseItemIndex(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "item index must be an integer")
	}
	return index, nil
}
