package state

import (
	"context"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hobfurniture/orderdesk-backend/internal/snapshots"
	"github.com/hobfurniture/orderdesk-backend/pkg/db/models"
	"github.com/hobfurniture/orderdesk-backend/pkg/enums"
	pkgerrors "github.com/hobfurniture/orderdesk-backend/pkg/errors"
	"github.com/hobfurniture/orderdesk-backend/pkg/logger"
)

type countingMarker struct {
	marks int
}

func (m *countingMarker) Mark() {
	m.marks++
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func newTestEngine(t *testing.T) (*Engine, *countingMarker) {
	t.Helper()

	engine, err := New(context.Background(), Params{Logger: testLogger()})
	require.NoError(t, err)

	marker := &countingMarker{}
	engine.SetAutosave(marker)
	return engine, marker
}

func TestNewRequiresLogger(t *testing.T) {
	_, err := New(context.Background(), Params{})
	require.Error(t, err)
}

func TestNewSeedsDefaults(t *testing.T) {
	engine, _ := newTestEngine(t)
	snapshot := engine.Snapshot()

	assert.Equal(t, "HOB FURNITURE", snapshot.CompanyInfo.Name)
	assert.Equal(t, "Arthur Cook", snapshot.Customer.Name)
	assert.Equal(t, "2025-376", snapshot.Order.OrderNumber)
	require.Len(t, snapshot.Order.Items, 1)
	assert.True(t, snapshot.Order.Subtotal.Equal(decimal.NewFromInt(2000)))
	assert.True(t, snapshot.Order.AmountDue.IsZero())
	assert.Len(t, snapshot.Gallery, 2)
}

func TestUpdateOrderItemQuantityRecomputesTotals(t *testing.T) {
	engine, marker := newTestEngine(t)

	err := engine.UpdateOrderItem(0, enums.OrderItemFieldQuantity, "2")
	require.NoError(t, err)

	order := engine.Snapshot().Order
	assert.True(t, order.Items[0].Total.Equal(decimal.NewFromInt(4000)), "line total %s", order.Items[0].Total)
	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(4000)))
	assert.True(t, order.Total.Equal(decimal.NewFromInt(4000)))
	// 2000 already paid on the seed order.
	assert.True(t, order.AmountDue.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, 1, marker.marks)
}

func TestUpdateOrderItemPriceRecomputesTotals(t *testing.T) {
	engine, _ := newTestEngine(t)

	err := engine.UpdateOrderItem(0, enums.OrderItemFieldPrice, "1500.50")
	require.NoError(t, err)

	order := engine.Snapshot().Order
	expected, _ := decimal.NewFromString("1500.50")
	assert.True(t, order.Items[0].Price.Equal(expected))
	assert.True(t, order.Subtotal.Equal(expected))
	assert.True(t, order.AmountDue.IsZero(), "overpaid order clamps to zero")
}

func TestUpdateOrderItemMalformedNumberCoercesToZero(t *testing.T) {
	engine, _ := newTestEngine(t)

	err := engine.UpdateOrderItem(0, enums.OrderItemFieldPrice, "not-a-number")
	require.NoError(t, err)

	order := engine.Snapshot().Order
	assert.True(t, order.Items[0].Price.IsZero())
	assert.True(t, order.Subtotal.IsZero())
	assert.True(t, order.AmountDue.IsZero())
}

func TestUpdateOrderItemNegativeQuantityCoercesToZero(t *testing.T) {
	engine, _ := newTestEngine(t)

	err := engine.UpdateOrderItem(0, enums.OrderItemFieldQuantity, "-3")
	require.NoError(t, err)

	order := engine.Snapshot().Order
	assert.True(t, order.Items[0].Quantity.IsZero())
	assert.True(t, order.Items[0].Total.IsZero())
}

func TestUpdateOrderItemTextFields(t *testing.T) {
	engine, _ := newTestEngine(t)

	require.NoError(t, engine.UpdateOrderItem(0, enums.OrderItemFieldDescription, "Corner Sofa"))
	require.NoError(t, engine.UpdateOrderItem(0, enums.OrderItemFieldUnit, "set"))
	require.NoError(t, engine.UpdateOrderItem(0, enums.OrderItemFieldDetails, []any{"10ft x 3ft", "Leather"}))

	item := engine.Snapshot().Order.Items[0]
	assert.Equal(t, "Corner Sofa", item.Description)
	assert.Equal(t, "set", item.Unit)
	assert.Equal(t, []string{"10ft x 3ft", "Leather"}, item.Details)
}

func TestUpdateOrderItemOutOfRange(t *testing.T) {
	engine, marker := newTestEngine(t)

	err := engine.UpdateOrderItem(5, enums.OrderItemFieldPrice, "100")
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeOutOfRange, typed.Code())
	assert.Equal(t, 0, marker.marks, "failed mutation must not schedule a save")

	err = engine.UpdateOrderItem(-1, enums.OrderItemFieldPrice, "100")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeOutOfRange, pkgerrors.As(err).Code())
}

func TestAddAndRemoveOrderItem(t *testing.T) {
	engine, marker := newTestEngine(t)

	added := engine.AddOrderItem()
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "New Item", added.Description)
	assert.Equal(t, "each", added.Unit)
	assert.True(t, added.Quantity.Equal(decimal.NewFromInt(1)))
	assert.True(t, added.Price.IsZero())

	order := engine.Snapshot().Order
	require.Len(t, order.Items, 2)
	// A zero-priced item leaves the totals untouched.
	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(2000)))

	require.NoError(t, engine.RemoveOrderItem(1))
	assert.Len(t, engine.Snapshot().Order.Items, 1)
	assert.Equal(t, 2, marker.marks)
}

func TestRemoveOrderItemOutOfRange(t *testing.T) {
	engine, _ := newTestEngine(t)

	err := engine.RemoveOrderItem(3)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeOutOfRange, pkgerrors.As(err).Code())
}

func TestRemoveLastItemZeroesTotals(t *testing.T) {
	engine, _ := newTestEngine(t)

	require.NoError(t, engine.RemoveOrderItem(0))

	order := engine.Snapshot().Order
	assert.Empty(t, order.Items)
	assert.True(t, order.Subtotal.IsZero())
	assert.True(t, order.Total.IsZero())
	assert.True(t, order.AmountDue.IsZero())
}

func TestUpdateAmountPaid(t *testing.T) {
	engine, marker := newTestEngine(t)

	engine.UpdateAmountPaid("500")
	order := engine.Snapshot().Order
	assert.True(t, order.AmountPaid.Equal(decimal.NewFromInt(500)))
	assert.True(t, order.AmountDue.Equal(decimal.NewFromInt(1500)))

	engine.UpdateAmountPaid("garbage")
	order = engine.Snapshot().Order
	assert.True(t, order.AmountPaid.IsZero())
	assert.True(t, order.AmountDue.Equal(decimal.NewFromInt(2000)))

	engine.UpdateAmountPaid(9999)
	order = engine.Snapshot().Order
	assert.True(t, order.AmountDue.IsZero(), "overpayment clamps to zero")
	assert.Equal(t, 3, marker.marks)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	engine, _ := newTestEngine(t)

	snapshot := engine.Snapshot()
	snapshot.Order.Items[0].Description = "mutated"
	snapshot.Order.Items[0].Details[0] = "mutated"
	snapshot.Gallery[0].Caption = "mutated"

	fresh := engine.Snapshot()
	assert.Equal(t, "Clinton Cinema Sofa", fresh.Order.Items[0].Description)
	assert.Equal(t, "12ft x 4ft", fresh.Order.Items[0].Details[0])
	assert.Equal(t, "Frame assembly complete", fresh.Gallery[0].Caption)
}

func TestUpdateCompanyAndCustomer(t *testing.T) {
	engine, marker := newTestEngine(t)

	company := engine.Snapshot().CompanyInfo
	company.Name = "HOB FURNITURE LTD"
	engine.UpdateCompanyInfo(company)

	customer := engine.Snapshot().Customer
	customer.Phone = "+441865000000"
	engine.UpdateCustomer(customer)

	snapshot := engine.Snapshot()
	assert.Equal(t, "HOB FURNITURE LTD", snapshot.CompanyInfo.Name)
	assert.Equal(t, "+441865000000", snapshot.Customer.Phone)
	assert.Equal(t, 2, marker.marks)
}

func setupStateStore(t *testing.T) *snapshots.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:statetest?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Snapshot{}))
	require.NoError(t, db.Exec("DELETE FROM snapshots").Error)

	store, err := snapshots.NewStore(snapshots.NewGormRepository(db), testLogger())
	require.NoError(t, err)
	return store
}

func TestStateSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	store := setupStateStore(t)

	engine, err := New(ctx, Params{Logger: testLogger(), Store: store})
	require.NoError(t, err)

	require.NoError(t, engine.UpdateOrderItem(0, enums.OrderItemFieldQuantity, "3"))
	engine.UpdateAmountPaid("1000")

	snapshot := engine.Snapshot()
	require.NoError(t, store.Save(ctx, snapshots.KeyCompanyInfo, snapshot.CompanyInfo))
	require.NoError(t, store.Save(ctx, snapshots.KeyCustomer, snapshot.Customer))
	require.NoError(t, store.Save(ctx, snapshots.KeyOrder, snapshot.Order))
	require.NoError(t, store.Save(ctx, snapshots.KeyGallery, snapshot.Gallery))

	reloaded, err := New(ctx, Params{Logger: testLogger(), Store: store})
	require.NoError(t, err)

	order := reloaded.Snapshot().Order
	assert.True(t, order.Items[0].Quantity.Equal(decimal.NewFromInt(3)))
	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(6000)))
	assert.True(t, order.AmountPaid.Equal(decimal.NewFromInt(1000)))
	assert.True(t, order.AmountDue.Equal(decimal.NewFromInt(5000)))
}
