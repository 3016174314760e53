package repository

import (
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var (
	created = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	slotDay = time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	experienceCols = []string{"id", "title", "description", "location", "price", "image_url",
		"category", "rating", "duration", "created_at", "updated_at"}
	slotCols = []string{"id", "experience_id", "date", "start_time", "end_time",
		"capacity", "booked_count", "created_at", "updated_at"}
	bookingCols = []string{"id", "user_id", "experience_id", "slot_id", "total_price",
		"promo_code", "status", "created_at", "updated_at"}
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func cols(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func experienceVals(id, title, price string) []driver.Value {
	return []driver.Value{id, title, "desc", "Kyoto, Japan", price, "https://img/x.jpg", "Cultural", 4.9, 180, created, created}
}

func slotVals(id, expID string, capacity, booked int) []driver.Value {
	return []driver.Value{id, expID, slotDay, "09:00", "12:00", capacity, booked, created, created}
}

func row(groups ...[]driver.Value) []driver.Value {
	var out []driver.Value
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
