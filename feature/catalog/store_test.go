package catalog

import (
	"context"
	"regexp"
	"testing"

	"catalog-sync/feature/catalog/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func productColumns() []string {
	return []string{"id", "title", "price", "description", "category", "image"}
}

func TestStore_ProductByID(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `products` WHERE id = ?")).
		WithArgs("el-1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(productColumns()).
			AddRow("el-1", "Monitor", "129.99", "27 inch", "displays", "el-1.png"))

	product, err := store.ProductByID(context.Background(), "el-1")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Monitor", product.Title)
	assert.Equal(t, "129.99", product.Price.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ProductByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `products` WHERE id = ?")).
		WithArgs("missing", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(productColumns()))

	product, err := store.ProductByID(context.Background(), "missing")
	require.NoError(t, err, "absence is not an error")
	assert.Nil(t, product)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CountProducts_PushesFilterDown(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT count(*) FROM `products` WHERE title LIKE BINARY ? AND price >= ? AND price <= ?")).
		WithArgs("%Monitor%", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(7))

	count, err := store.CountProducts(context.Background(), Filter{
		Search:   "Monitor",
		MinPrice: dec("100"),
		MaxPrice: dec("250"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListProducts_OrdersAndPages(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `products` WHERE price >= ? ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(productColumns()).
			AddRow("el-2", "Keyboard", "49.50", "", "input", "").
			AddRow("el-3", "Mouse", "59.00", "", "input", ""))

	items, err := store.ListProducts(context.Background(), Filter{MinPrice: dec("40")}, 10, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "el-2", items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpsertProducts_InsertsNew(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `products` WHERE id = ?")).
		WithArgs("el-1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(productColumns()))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `products`")).
		WithArgs("el-1", "A", sqlmock.AnyArg(), "", "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	count, err := store.UpsertProducts(context.Background(), []models.Product{
		{ID: "el-1", Title: "A", Price: decimal.RequireFromString("10")},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpsertProducts_OverwritesExisting(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `products` WHERE id = ?")).
		WithArgs("el-1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(productColumns()).
			AddRow("el-1", "A", "10", "", "", ""))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `products` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	count, err := store.UpsertProducts(context.Background(), []models.Product{
		{ID: "el-1", Title: "B", Price: decimal.RequireFromString("12")},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpsertProducts_RollsBackTheWholeBatch(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `products` WHERE id = ?")).
		WithArgs("el-1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(productColumns()))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `products`")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `products` WHERE id = ?")).
		WithArgs("el-2", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(productColumns()))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `products`")).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := store.UpsertProducts(context.Background(), []models.Product{
		{ID: "el-1", Title: "A", Price: decimal.RequireFromString("10")},
		{ID: "el-2", Title: "B", Price: decimal.RequireFromString("12")},
	})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "batch must roll back as one unit")
}

func TestStore_UpsertCategories_UpdatesName(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `categories` WHERE id = ?")).
		WithArgs("cat-1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("cat-1", "Old"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `categories` SET `name`=? WHERE id = ?")).
		WithArgs("New", "cat-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	count, err := store.UpsertCategories(context.Background(), []models.Category{
		{ID: "cat-1", Name: "New"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
