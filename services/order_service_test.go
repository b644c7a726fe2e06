package services

import (
	"testing"
	"time"

	"stallpos/entity"
	"stallpos/pkg/apperr"
	"stallpos/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutPersistsOrderWithLines(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(t, db)
	svc := newOrderService(t, db, carts)
	biryani := seedMultiPlateItem(t, db, "Biryani", 12000, ptr(7000))
	chai := seedStandardItem(t, db, "Chai", 1000)

	_, err := carts.Add(opID, biryani.ID, entity.VariantHalf)
	require.NoError(t, err)
	_, err = carts.Add(opID, chai.ID, "")
	require.NoError(t, err)
	_, err = carts.Add(opID, chai.ID, "")
	require.NoError(t, err)

	wantTotal := carts.Get(opID).Total()

	res, err := svc.Checkout(opID, "Asha", "9876543210")
	require.NoError(t, err)
	assert.Equal(t, wantTotal, res.Total)

	var o entity.Order
	require.NoError(t, db.Preload("Lines").First(&o, res.ID).Error)
	assert.Equal(t, "Asha", o.CustomerName)
	assert.Equal(t, "9876543210", o.Mobile)
	assert.Equal(t, wantTotal, o.TotalAmount)
	assert.WithinDuration(t, time.Now(), o.PlacedAt, 5*time.Second)
	require.Len(t, o.Lines, 2)
	assert.Equal(t, int64(7000), o.Lines[0].UnitPriceAtTime)
	assert.Equal(t, 1, o.Lines[0].Qty)
	assert.Equal(t, int64(1000), o.Lines[1].UnitPriceAtTime)
	assert.Equal(t, 2, o.Lines[1].Qty)

	// The draft is gone once the order is committed.
	assert.Empty(t, carts.Get(opID).Lines)
}

func TestCheckoutRejectsBadMobile(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(t, db)
	svc := newOrderService(t, db, carts)
	chai := seedStandardItem(t, db, "Chai", 1000)

	_, err := carts.Add(opID, chai.ID, "")
	require.NoError(t, err)

	for _, mobile := range []string{"", "12345", "12345678901", "987654321x"} {
		_, err := svc.Checkout(opID, "Asha", mobile)
		assert.ErrorIs(t, err, apperr.ErrValidation, "mobile %q", mobile)
	}

	// No partial writes, and the draft survives for retry.
	var orders, lines int64
	db.Model(&entity.Order{}).Count(&orders)
	db.Model(&entity.OrderLine{}).Count(&lines)
	assert.Zero(t, orders)
	assert.Zero(t, lines)
	assert.Len(t, carts.Get(opID).Lines, 1)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(t, db)
	svc := newOrderService(t, db, carts)

	_, err := svc.Checkout(opID, "Asha", "9876543210")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestCheckoutDefaultsNameToMobile(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(t, db)
	svc := newOrderService(t, db, carts)
	chai := seedStandardItem(t, db, "Chai", 1000)

	_, err := carts.Add(opID, chai.ID, "")
	require.NoError(t, err)

	res, err := svc.Checkout(opID, "   ", "9876543210")
	require.NoError(t, err)

	var o entity.Order
	require.NoError(t, db.First(&o, res.ID).Error)
	assert.Equal(t, "9876543210", o.CustomerName)
}

func TestOrderRoundTrip(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(t, db)
	svc := newOrderService(t, db, carts)
	biryani := seedMultiPlateItem(t, db, "Biryani", 12000, ptr(7000))

	_, err := carts.Add(opID, biryani.ID, entity.VariantFull)
	require.NoError(t, err)
	res, err := svc.Checkout(opID, "Asha", "9876543210")
	require.NoError(t, err)

	listed, err := svc.List("9876543210", 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, res.ID, listed[0].ID)
	require.Len(t, listed[0].Lines, 1)

	d, err := svc.Detail(res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", d.Order.CustomerName)
	assert.Equal(t, "9876543210", d.Order.Mobile)
	assert.Equal(t, int64(12000), d.Order.TotalAmount)
	require.Len(t, d.Lines, 1)
	assert.Equal(t, "Biryani", d.Lines[0].Name)
	assert.Equal(t, entity.VariantFull, d.Lines[0].Variant)
	assert.Equal(t, 1, d.Lines[0].Qty)
	assert.Equal(t, int64(12000), d.Lines[0].UnitPrice)

	// Filter misses other numbers.
	none, err := svc.List("0000000000", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDetailRelabelsAfterPriceEdit(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(t, db)
	svc := newOrderService(t, db, carts)
	biryani := seedMultiPlateItem(t, db, "Biryani", 12000, ptr(7000))

	_, err := carts.Add(opID, biryani.ID, entity.VariantHalf)
	require.NoError(t, err)
	res, err := svc.Checkout(opID, "", "9876543210")
	require.NoError(t, err)

	// After the half price moves, the stored snapshot matches no tier.
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", biryani.ID).
		Update("half_plate_price", 6000).Error)

	d, err := svc.Detail(res.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VariantCustom, d.Lines[0].Variant)
	assert.Equal(t, int64(7000), d.Lines[0].UnitPrice, "snapshot itself never changes")
}

func TestDeleteReferencedMenuItemRejected(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(t, db)
	orderSvc := newOrderService(t, db, carts)
	menuSvc := NewMenuService(repository.NewMenuRepository(db), nil)
	chai := seedStandardItem(t, db, "Chai", 1000)

	_, err := carts.Add(opID, chai.ID, "")
	require.NoError(t, err)
	res, err := orderSvc.Checkout(opID, "", "9876543210")
	require.NoError(t, err)

	err = menuSvc.Delete(chai.ID)
	assert.ErrorIs(t, err, apperr.ErrReferentialIntegrity)

	// Both sides are untouched.
	var item entity.MenuItem
	assert.NoError(t, db.First(&item, chai.ID).Error)
	var lines int64
	db.Model(&entity.OrderLine{}).Where("order_id = ?", res.ID).Count(&lines)
	assert.Equal(t, int64(1), lines)
}

func TestSlipDataUsesStoredValues(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(t, db)
	svc := newOrderService(t, db, carts)
	biryani := seedMultiPlateItem(t, db, "Biryani", 12000, ptr(7000))

	_, err := carts.Add(opID, biryani.ID, entity.VariantHalf)
	require.NoError(t, err)
	res, err := svc.Checkout(opID, "Asha", "9876543210")
	require.NoError(t, err)

	d, err := svc.SlipData(res.ID)
	require.NoError(t, err)
	assert.Equal(t, "STREET FOOD & CAFE", d.StallName)
	assert.Equal(t, res.ID, d.OrderID)
	assert.Equal(t, "Asha", d.CustomerName)
	assert.Equal(t, int64(7000), d.Total)
	require.Len(t, d.Lines, 1)
	assert.Equal(t, "Half", d.Lines[0].Variant)
}
