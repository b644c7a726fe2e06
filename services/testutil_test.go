package services

import (
	"fmt"
	"testing"

	"stallpos/entity"
	"stallpos/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Named in-memory database so every pooled connection sees the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(
		&entity.Staff{}, &entity.MenuItem{}, &entity.Order{}, &entity.OrderLine{},
	))
	return db
}

func ptr(v int64) *int64 { return &v }

func seedStandardItem(t *testing.T, db *gorm.DB, name string, price int64) entity.MenuItem {
	t.Helper()
	item := entity.MenuItem{Name: name, Price: price}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func seedMultiPlateItem(t *testing.T, db *gorm.DB, name string, full int64, half *int64) entity.MenuItem {
	t.Helper()
	item := entity.MenuItem{Name: name, IsMultiPlate: true, FullPlatePrice: ptr(full), HalfPlatePrice: half}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func newCartService(t *testing.T, db *gorm.DB) *CartService {
	t.Helper()
	return NewCartService(repository.NewMenuRepository(db))
}

func newOrderService(t *testing.T, db *gorm.DB, carts *CartService) *OrderService {
	t.Helper()
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewMenuRepository(db),
		carts,
		nil,
		StallInfo{Name: "STREET FOOD & CAFE", Tagline: "Fresh & Tasty"},
	)
}
