package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentdb/rentdb"
	"github.com/rentdb/rentdb/model"
)

func newTestDB(t *testing.T) *rentdb.DB {
	t.Helper()
	db, err := rentdb.Open(rentdb.WithDirPath(t.TempDir()))
	require.Nil(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Cars.Add(&model.Car{ID: 1, Model: "Toyota Camry", Plate: "ABC123", DailyRate: 1200.00})
	require.Nil(t, err)
	_, err = db.Cars.Add(&model.Car{ID: 2, Model: "Honda Civic", Plate: "XYZ789", DailyRate: 900.00})
	require.Nil(t, err)
	_, err = db.Cars.Add(&model.Car{ID: 3, Model: "Toyota Vios", Plate: "DEF456", DailyRate: 700.00})
	require.Nil(t, err)
	_, err = db.Customers.Add(&model.Customer{ID: 1, Name: "Somchai", Phone: "0811111111"})
	require.Nil(t, err)

	_, err = db.CreateRental(1, 1, 1, model.Date(1012025), model.Date(3012025))
	require.Nil(t, err)
	require.Nil(t, db.Cars.Delete(3))
	return db
}

func generate(t *testing.T, fn func(*rentdb.DB, string) error, db *rentdb.DB) string {
	t.Helper()
	out := filepath.Join(t.TempDir(), "report.txt")
	require.Nil(t, fn(db, out))
	data, err := os.ReadFile(out)
	require.Nil(t, err)
	return string(data)
}

func TestMaster(t *testing.T) {
	db := newTestDB(t)
	text := generate(t, Master, db)

	assert.Contains(t, text, "MASTER RENTAL SYSTEM REPORT")
	assert.Contains(t, text, "Total Active Cars: 2")
	assert.Contains(t, text, "Toyota Camry")
	assert.Contains(t, text, "Honda Civic")
	assert.NotContains(t, text, "Toyota Vios")
	assert.Contains(t, text, "Total Active Customers: 1")
	assert.Contains(t, text, "Somchai")
	assert.Contains(t, text, "Total Active Rentals: 1")
	assert.Contains(t, text, "3600.00")
	assert.Contains(t, text, "01-01-2025")
}

func TestDetailed(t *testing.T) {
	db := newTestDB(t)
	text := generate(t, Detailed, db)

	assert.Contains(t, text, "DETAILED RENTAL SUMMARY REPORT")
	// deleted cars still appear, with their status
	assert.Contains(t, text, "Toyota Vios")
	assert.Contains(t, text, "Deleted")
	assert.Contains(t, text, "Rented")
	assert.Contains(t, text, "Available")
	assert.Contains(t, text, "Somchai")
	assert.Contains(t, text, "Total Car Records : 3")
	assert.Contains(t, text, "Active Cars       : 2")
	assert.Contains(t, text, "Currently Rented  : 1")
	assert.Contains(t, text, "Available Now     : 1")
	assert.Contains(t, text, "Honda")
}

func TestDetailed_DanglingCustomer(t *testing.T) {
	db := newTestDB(t)
	require.Nil(t, db.Customers.Delete(1))

	text := generate(t, Detailed, db)
	assert.Contains(t, text, "customer 1 (deleted)")
}

func TestMaster_Empty(t *testing.T) {
	db, err := rentdb.Open(rentdb.WithDirPath(t.TempDir()))
	require.Nil(t, err)
	t.Cleanup(func() { _ = db.Close() })

	text := generate(t, Master, db)
	assert.Contains(t, text, "No active cars found.")
	assert.Contains(t, text, "No active customers found.")
	assert.Contains(t, text, "No active rental agreements found.")
}
