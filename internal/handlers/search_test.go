package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestSearchTurfsReturns404OnZeroMatches(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM turf_owners`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	r := gin.New()
	r.GET("/search/turfs", SearchTurfs(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search/turfs?query=nowhere", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "No turfs found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchTurfsReturnsTotalAndRows(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM turf_owners`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT id, turf_name, turf_location AS location`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "turf_name", "location", "price", "ratings"}).
			AddRow(1, "Green Arena", "Kochi", 300.0, 4.5).
			AddRow(2, "Greenfield Turf", "Kochi", 250.0, 4.1))

	r := gin.New()
	r.GET("/search/turfs", SearchTurfs(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search/turfs?query=green&limit=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"total":2`)
	assert.Contains(t, w.Body.String(), "Green Arena")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchTurfsRejectsBadPriceParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, _ := newMockDB(t)

	r := gin.New()
	r.GET("/search/turfs", SearchTurfs(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search/turfs?minPrice=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestSearchRentalsReturns404OnZeroMatches(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sports_amenities`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	r := gin.New()
	r.GET("/search/rentals", SearchRentals(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search/rentals?query=hoverboard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "No matching rentals found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchRentalsFiltersByPriceOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sports_amenities`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT id, name, price_per_hour AS price`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "quantity"}).
			AddRow(4, "Cricket Kit", 120.0, 3))

	r := gin.New()
	r.GET("/search/rentals", SearchRentals(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search/rentals?minPrice=100&maxPrice=200", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "Cricket Kit")
	assert.NoError(t, mock.ExpectationsWereMet())
}
