package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"restaurant_backend/model"
	"restaurant_backend/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func newOrder() *model.Order {
	return &model.Order{
		OrderNumber:     "ORD-1A2B3C4D",
		CustomerName:    "Ana",
		CustomerEmail:   "ana@example.com",
		CustomerPhone:   "123",
		DeliveryStreet:  "Calle",
		DeliveryNumber:  "1",
		DeliveryCity:    "Santiago",
		DeliveryRegion:  "RM",
		DeliveryAddress: "Calle 1, Santiago, RM",
		Status:          model.OrderStatusPending,
		TotalAmount:     decimal.Zero,
	}
}

func TestOrderWithTx_RollsBackOnInsertFailure(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewOrderRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnError(errors.New("unique violation"))
	mock.ExpectRollback()

	err := repo.WithTx(context.Background(), func(_ repository.PricingCatalog, tx repository.OrderRepo) error {
		return tx.Create(context.Background(), newOrder())
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderWithTx_RollsBackWhenCallbackFails(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewOrderRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectRollback()

	boom := errors.New("pricing failed")
	err := repo.WithTx(context.Background(), func(_ repository.PricingCatalog, tx repository.OrderRepo) error {
		if err := tx.Create(context.Background(), newOrder()); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderWithTx_Commits(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewOrderRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectCommit()

	o := newOrder()
	err := repo.WithTx(context.Background(), func(_ repository.PricingCatalog, tx repository.OrderRepo) error {
		return tx.Create(context.Background(), o)
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), o.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderUpdateStatus(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewOrderRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders" SET "status"=$1,"updated_at"=$2 WHERE id = $3`)).
		WithArgs("confirmed", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), 5, model.OrderStatusConfirmed)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderGetByNumber_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewOrderRepo(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders" WHERE order_number = $1`)).
		WithArgs("ORD-00000000", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	o, err := repo.GetByNumber(context.Background(), "ORD-00000000")
	assert.NoError(t, err)
	assert.Nil(t, o)
}

func TestOrderCountPendingBefore(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewOrderRepo(gormDB)

	before := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "orders" WHERE status = $1 AND created_at < $2`)).
		WithArgs("pending", before).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.CountPendingBefore(context.Background(), before)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestGetProduct_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewProductRepo(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE "products"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	p, err := repo.GetProduct(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestGetPricingRules_PreloadsIngredients(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewProductRepo(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "product_ingredients" WHERE product_id = $1 AND is_active = $2 ORDER BY ingredient_id ASC`)).
		WithArgs(1, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "ingredient_id", "default_included", "extra_cost", "is_active"}).
			AddRow(1, 1, 10, false, "1.50", true).
			AddRow(2, 1, 12, true, "0.00", true))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "ingredients" WHERE "ingredients"."id" IN ($1,$2)`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_active"}).
			AddRow(10, "Queso extra", true).
			AddRow(12, "Cebolla", true))

	rules, err := repo.GetPricingRules(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "Queso extra", rules[0].Ingredient.Name)
	assert.Equal(t, "1.50", rules[0].ExtraCost.StringFixed(2))
	assert.True(t, rules[1].DefaultIncluded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentActive_NoneActive(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewContentRepo[model.HeroSection](gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "hero_sections" WHERE is_active = $1 ORDER BY id ASC`)).
		WithArgs(true, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	hero, err := repo.Active(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, hero)
}

func TestAccountGetByUsername(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewAccountRepo(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE username = $1`)).
		WithArgs("admin", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "active", "role"}).
			AddRow(1, "admin", "hash", true, "ADMIN"))

	acc, err := repo.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	require.NotNil(t, acc)
	assert.Equal(t, "ADMIN", acc.Role)
}

func TestOrderList_CountsAndPagesWithSameFilter(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewOrderRepo(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "orders" WHERE status = $1`)).
		WithArgs("ready").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders" WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`)).
		WithArgs("ready", 10, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	status := model.OrderStatusReady
	list, total, err := repo.List(context.Background(), repository.OrderListFilter{Status: &status, Limit: 10, Offset: 20})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.EqualValues(t, 0, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
