package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/playpals/playpals-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// Input validation runs before any database work, so a nil DB exercises the
// rejection paths.
func TestBookTurfRejectsMalformedInput(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/bookings/turf", BookTurf(nil))

	// Missing required fields
	w := postJSON(r, "/bookings/turf", `{"turfId": 1}`)
	assert.Equal(t, 400, w.Code)

	// Unknown weekday
	w = postJSON(r, "/bookings/turf", `{"turfId":1,"numberOfSeats":2,"day":"FUNDAY","bookedFrom":"10:00","bookedTo":"11:00"}`)
	assert.Equal(t, 400, w.Code)

	// Bad clock format
	w = postJSON(r, "/bookings/turf", `{"turfId":1,"numberOfSeats":2,"day":"MONDAY","bookedFrom":"10am","bookedTo":"11:00"}`)
	assert.Equal(t, 400, w.Code)

	// Empty window
	w = postJSON(r, "/bookings/turf", `{"turfId":1,"numberOfSeats":2,"day":"MONDAY","bookedFrom":"11:00","bookedTo":"11:00"}`)
	assert.Equal(t, 400, w.Code)
}

func TestBookingErrorStatusMapping(t *testing.T) {
	assert.Equal(t, 404, bookingErrorStatus(errTurfNotFound))
	assert.Equal(t, 400, bookingErrorStatus(models.ErrDayNotAvailable))
	assert.Equal(t, 400, bookingErrorStatus(models.ErrSlotNotFound))
	assert.Equal(t, 400, bookingErrorStatus(models.ErrInsufficientSeats))
	assert.Equal(t, 400, bookingErrorStatus(models.ErrInvalidTimeWindow))
	assert.Equal(t, 500, bookingErrorStatus(assert.AnError))
}

func TestBookTurfReportsMissingTurfAs404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "turf_owners"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	r := gin.New()
	r.POST("/bookings/turf", BookTurf(db))

	w := postJSON(r, "/bookings/turf",
		`{"turfId":99,"numberOfSeats":2,"day":"MONDAY","bookedFrom":"10:00","bookedTo":"11:00"}`)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "turf not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookTurfReportsDatabaseFailureAs500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "turf_owners"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	r := gin.New()
	r.POST("/bookings/turf", BookTurf(db))

	w := postJSON(r, "/bookings/turf",
		`{"turfId":1,"numberOfSeats":2,"day":"MONDAY","bookedFrom":"10:00","bookedTo":"11:00"}`)

	assert.Equal(t, 500, w.Code)
	assert.NotContains(t, w.Body.String(), "turf not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
