package controllers

import (
	"net/http"

	"github.com/hobfurniture/orderdesk-backend/api/responses"
	"github.com/hobfurniture/orderdesk-backend/api/validators"
	"github.com/hobfurniture/orderdesk-backend/internal/state"
	"github.com/hobfurniture/orderdesk-backend/pkg/logger"
	"github.com/hobfurniture/orderdesk-backend/pkg/types"
)

// GetCompany returns the company record backing the settings screen.
func GetCompany(engine *state.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		responses.WriteSuccess(w, engine.Snapshot().CompanyInfo)
	}
}

// UpdateCompany replaces the company record wholesale.
func UpdateCompany(engine *state.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var info types.CompanyInfo
		if err := validators.DecodeJSONBody(r, &info); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		engine.UpdateCompanyInfo(info)
		responses.WriteSuccess(w, engine.Snapshot().CompanyInfo)
	}
}

// GetCustomer returns the customer record backing the profile screen.
func GetCustomer(engine *state.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		responses.WriteSuccess(w, engine.Snapshot().Customer)
	}
}

// UpdateCustomer replaces the customer record wholesale.
func UpdateCustomer(engine *state.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var customer types.Customer
		if err := validators.DecodeJSONBody(r, &customer); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		engine.UpdateCustomer(customer)
		responses.WriteSuccess(w, engine.Snapshot().Customer)
	}
}
