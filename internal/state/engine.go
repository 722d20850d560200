// Package state owns the canonical session records shared by every document
// view: company info, customer, order and gallery. All mutations flow through
// the Engine, which recomputes derived totals synchronously and marks the
// autosave scheduler dirty. Views never mutate state directly; they read
// snapshots and submit mutation intents.
package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hobfurniture/orderdesk-backend/internal/snapshots"
	"github.com/hobfurniture/orderdesk-backend/internal/totals"
	"github.com/hobfurniture/orderdesk-backend/pkg/enums"
	pkgerrors "github.com/hobfurniture/orderdesk-backend/pkg/errors"
	"github.com/hobfurniture/orderdesk-backend/pkg/logger"
	"github.com/hobfurniture/orderdesk-backend/pkg/types"
)

// AutosaveMarker is the sliver of the scheduler the engine needs: every
// mutation marks the aggregate state dirty.
type AutosaveMarker interface {
	Mark()
}

// Params configure the engine.
type Params struct {
	Logger *logger.Logger
	Store  *snapshots.Store
}

// Engine is the single authority over the canonical records. One mutex
// serializes every mutation, preserving the single-writer discipline the
// debounced autosave depends on.
type Engine struct {
	mu          sync.Mutex
	companyInfo types.CompanyInfo
	customer    types.Customer
	order       types.Order
	gallery     []types.GalleryItem

	autosave AutosaveMarker
	logg     *logger.Logger
}

// Snapshot is a point-in-time copy of every canonical record.
type Snapshot struct {
	CompanyInfo types.CompanyInfo
	Customer    types.Customer
	Order       types.Order
	Gallery     []types.GalleryItem
}

// New builds the engine, loading each record from the snapshot store when
// present and falling back to the built-in defaults otherwise. The load is
// synchronous: initial state is complete before New returns.
func New(ctx context.Context, params Params) (*Engine, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}

	e := &Engine{
		companyInfo: DefaultCompanyInfo(),
		customer:    DefaultCustomer(),
		order:       DefaultOrder(),
		gallery:     DefaultGallery(),
		logg:        params.Logger,
	}

	if params.Store != nil {
		params.Store.Load(ctx, snapshots.KeyCompanyInfo, &e.companyInfo)
		params.Store.Load(ctx, snapshots.KeyCustomer, &e.customer)
		params.Store.Load(ctx, snapshots.KeyOrder, &e.order)
		params.Store.Load(ctx, snapshots.KeyGallery, &e.gallery)
	}

	// Stored snapshots may predate the current totals rules; recompute so the
	// derived fields agree with the items from the first read onward.
	e.recomputeTotals()

	return e, nil
}

// SetAutosave attaches the scheduler after construction. The scheduler's
// write callback needs the engine, so the two are wired in this order.
func (e *Engine) SetAutosave(marker AutosaveMarker) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.autosave = marker
}

// Snapshot returns a deep copy of the canonical state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		CompanyInfo: e.companyInfo,
		Customer:    e.customer,
		Order:       copyOrder(e.order),
		Gallery:     copyGallery(e.gallery),
	}
}

// UpdateCompanyInfo replaces the company record wholesale.
func (e *Engine) UpdateCompanyInfo(info types.CompanyInfo) {
	e.mu.Lock()
	e.companyInfo = info
	e.mu.Unlock()
	e.mark()
}

// UpdateCustomer replaces the customer record wholesale.
func (e *Engine) UpdateCustomer(customer types.Customer) {
	e.mu.Lock()
	e.customer = customer
	e.mu.Unlock()
	e.mark()
}

// UpdateOrder replaces the order wholesale. Callers use this for header
// edits (dates, order number, status) and must pass an order whose derived
// fields already satisfy the totals invariants.
func (e *Engine) UpdateOrder(order types.Order) {
	e.mu.Lock()
	e.order = copyOrder(order)
	e.mu.Unlock()
	e.mark()
}

// UpdateOrderItem sets one field on the item at index. Quantity and price
// edits recompute the item total and then the order totals. Malformed
// numeric input coerces to zero; an out-of-range index is a bounds error.
func (e *Engine) UpdateOrderItem(index int, field enums.OrderItemField, value any) error {
	e.mu.Lock()

	if index < 0 || index >= len(e.order.Items) {
		e.mu.Unlock()
		return boundsError(index, len(e.order.Items))
	}

	item := &e.order.Items[index]
	switch field {
	case enums.OrderItemFieldDescription:
		item.Description = coerceString(value)
	case enums.OrderItemFieldUnit:
		item.Unit = coerceString(value)
	case enums.OrderItemFieldDetails:
		item.Details = coerceStringSlice(value)
	case enums.OrderItemFieldQuantity:
		item.Quantity = coerceQuantity(value)
		item.Total = totals.LineTotal(item.Quantity, item.Price)
	case enums.OrderItemFieldPrice:
		item.Price = coerceDecimal(value)
		item.Total = totals.LineTotal(item.Quantity, item.Price)
	default:
		e.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown item field %q", field))
	}

	e.recomputeTotals()
	e.mu.Unlock()
	e.mark()
	return nil
}

// AddOrderItem appends a new line item with the standard defaults and
// returns it.
func (e *Engine) AddOrderItem() types.OrderItem {
	item := types.OrderItem{
		ID:          uuid.NewString(),
		Description: "New Item",
		Details:     []string{},
		Quantity:    decimal.NewFromInt(1),
		Unit:        "each",
		Price:       decimal.Zero,
		Total:       decimal.Zero,
	}

	e.mu.Lock()
	e.order.Items = append(e.order.Items, item)
	e.recomputeTotals()
	e.mu.Unlock()
	e.mark()
	return item
}

// RemoveOrderItem deletes the item at index and recomputes totals.
func (e *Engine) RemoveOrderItem(index int) error {
	e.mu.Lock()

	if index < 0 || index >= len(e.order.Items) {
		e.mu.Unlock()
		return boundsError(index, len(e.order.Items))
	}

	e.order.Items = append(e.order.Items[:index], e.order.Items[index+1:]...)
	e.recomputeTotals()
	e.mu.Unlock()
	e.mark()
	return nil
}

// UpdateAmountPaid sets the amount paid and recomputes every derived field.
// Subtotal and total are recomputed from the existing items as well, for
// uniformity. Malformed input coerces to zero.
func (e *Engine) UpdateAmountPaid(value any) {
	e.mu.Lock()
	e.order.AmountPaid = coerceDecimal(value)
	e.recomputeTotals()
	e.mu.Unlock()
	e.mark()
}

func (e *Engine) recomputeTotals() {
	for i := range e.order.Items {
		e.order.Items[i].Total = totals.LineTotal(e.order.Items[i].Quantity, e.order.Items[i].Price)
	}
	derived := totals.Compute(e.order.Items, e.order.AmountPaid)
	e.order.Subtotal = derived.Subtotal
	e.order.Tax = derived.Tax
	e.order.Total = derived.Total
	e.order.AmountDue = derived.AmountDue
}

func (e *Engine) mark() {
	if e.autosave != nil {
		e.autosave.Mark()
	}
}

func boundsError(index, length int) error {
	return pkgerrors.New(pkgerrors.CodeOutOfRange, fmt.Sprintf("item index %d out of range (%d items)", index, length))
}

func copyOrder(order types.Order) types.Order {
	copied := order
	copied.Items = make([]types.OrderItem, len(order.Items))
	copy(copied.Items, order.Items)
	for i := range copied.Items {
		details := make([]string, len(copied.Items[i].Details))
		copy(details, copied.Items[i].Details)
		copied.Items[i].Details = details
	}
	return copied
}

func copyGallery(gallery []types.GalleryItem) []types.GalleryItem {
	copied := make([]types.GalleryItem, len(gallery))
	copy(copied, gallery)
	return copied
}
