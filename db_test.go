package rentdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentdb/rentdb/model"
)

func openTestDB(t *testing.T, dir string) *DB {
	t.Helper()
	db, err := Open(WithDirPath(dir))
	require.Nil(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedFleet(t *testing.T, db *DB) {
	t.Helper()
	_, err := db.Cars.Add(&model.Car{ID: 1, Model: "Toyota Camry", Plate: "ABC123", DailyRate: 1200.00})
	require.Nil(t, err)
	_, err = db.Customers.Add(&model.Customer{ID: 1, Name: "Somchai", Phone: "0811111111"})
	require.Nil(t, err)
}

func TestDB_EndToEnd(t *testing.T) {
	db := openTestDB(t, t.TempDir())
	seedFleet(t, db)

	start, err := model.ParseDate("01012025")
	require.Nil(t, err)
	end, err := model.ParseDate("03012025")
	require.Nil(t, err)

	rental, err := db.CreateRental(1, 1, 1, start, end)
	require.Nil(t, err)
	// 3 inclusive days at 1200.00
	assert.Equal(t, 3600.00, rental.TotalPrice)

	rentals, err := db.Rentals.All()
	require.Nil(t, err)
	require.Len(t, rentals, 1)
	assert.Equal(t, 3600.00, rentals[0].TotalPrice)

	car, _, err := db.Cars.Get(1)
	require.Nil(t, err)
	assert.True(t, car.Rented)
}

func TestDB_CreateRental_BadReferences(t *testing.T) {
	db := openTestDB(t, t.TempDir())
	seedFleet(t, db)

	_, err := db.CreateRental(1, 99, 1, model.Date(1012025), model.Date(3012025))
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = db.CreateRental(1, 1, 99, model.Date(1012025), model.Date(3012025))
	assert.ErrorIs(t, err, ErrCarNotFound)

	// no rental record was written
	rentals, err := db.Rentals.All()
	require.Nil(t, err)
	assert.Len(t, rentals, 0)
}

func TestDB_CreateRental_CarAlreadyRented(t *testing.T) {
	db := openTestDB(t, t.TempDir())
	seedFleet(t, db)

	_, err := db.CreateRental(1, 1, 1, model.Date(1012025), model.Date(3012025))
	require.Nil(t, err)

	_, err = db.CreateRental(2, 1, 1, model.Date(5012025), model.Date(6012025))
	assert.ErrorIs(t, err, ErrCarRented)
}

func TestDB_CreateRental_EndBeforeStart(t *testing.T) {
	db := openTestDB(t, t.TempDir())
	seedFleet(t, db)

	_, err := db.CreateRental(1, 1, 1, model.Date(3012025), model.Date(1012025))
	assert.ErrorIs(t, err, ErrDateRange)

	rentals, err := db.Rentals.All()
	require.Nil(t, err)
	assert.Len(t, rentals, 0)
}

func TestDB_CreateRental_UnparsableDatesPriceOneDay(t *testing.T) {
	db := openTestDB(t, t.TempDir())
	seedFleet(t, db)

	// raw ints that never went through ParseDate: fall back to one day
	// of rate instead of failing the rental
	rental, err := db.CreateRental(1, 1, 1, model.Date(1012025), model.Date(99999999))
	require.Nil(t, err)
	assert.Equal(t, 1200.00, rental.TotalPrice)
}

func TestDB_MalformedDateRejectedBeforeWrite(t *testing.T) {
	db := openTestDB(t, t.TempDir())
	seedFleet(t, db)

	// 7 digits never reaches the store
	_, err := model.ParseDate("3101225")
	require.ErrorIs(t, err, model.ErrBadDate)

	rentals, err := db.Rentals.All()
	require.Nil(t, err)
	assert.Len(t, rentals, 0)
}

func TestDB_CloseRental(t *testing.T) {
	db := openTestDB(t, t.TempDir())
	seedFleet(t, db)

	_, err := db.CreateRental(1, 1, 1, model.Date(1012025), model.Date(3012025))
	require.Nil(t, err)

	require.Nil(t, db.CloseRental(1))

	_, _, err = db.Rentals.Get(1)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	car, _, err := db.Cars.Get(1)
	require.Nil(t, err)
	assert.False(t, car.Rented)

	assert.ErrorIs(t, db.CloseRental(1), ErrRentalNotFound)
}

func TestDB_PriceSnapshot(t *testing.T) {
	db := openTestDB(t, t.TempDir())
	seedFleet(t, db)

	_, err := db.CreateRental(1, 1, 1, model.Date(1012025), model.Date(3012025))
	require.Nil(t, err)

	// a later rate change never recomputes an existing rental
	err = db.Cars.Update(1, func(c *model.Car) { c.DailyRate = 9999 })
	require.Nil(t, err)

	rental, _, err := db.Rentals.Get(1)
	require.Nil(t, err)
	assert.Equal(t, 3600.00, rental.TotalPrice)
}

func TestDB_DanglingReferenceTolerated(t *testing.T) {
	db := openTestDB(t, t.TempDir())
	seedFleet(t, db)

	_, err := db.CreateRental(1, 1, 1, model.Date(1012025), model.Date(3012025))
	require.Nil(t, err)

	// deleting the customer afterwards leaves the rental readable
	require.Nil(t, db.Customers.Delete(1))

	rentals, err := db.Rentals.All()
	require.Nil(t, err)
	require.Len(t, rentals, 1)
	assert.Equal(t, int32(1), rentals[0].CustomerID)
}

func TestDB_DirLock(t *testing.T) {
	dir := t.TempDir()
	db := openTestDB(t, dir)

	_, err := Open(WithDirPath(dir))
	assert.ErrorIs(t, err, ErrDirIsUsing)

	require.Nil(t, db.Close())

	db2, err := Open(WithDirPath(dir))
	require.Nil(t, err)
	assert.Nil(t, db2.Close())
}

func TestDB_Persistence(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(WithDirPath(dir))
	require.Nil(t, err)
	seedFleet(t, db)
	_, err = db.CreateRental(1, 1, 1, model.Date(1012025), model.Date(3012025))
	require.Nil(t, err)
	require.Nil(t, db.Close())

	db = openTestDB(t, dir)
	car, _, err := db.Cars.Get(1)
	require.Nil(t, err)
	assert.Equal(t, "Toyota Camry", car.Model)
	assert.True(t, car.Rented)

	cust, _, err := db.Customers.Get(1)
	require.Nil(t, err)
	assert.Equal(t, "Somchai", cust.Name)

	rental, _, err := db.Rentals.Get(1)
	require.Nil(t, err)
	assert.Equal(t, 3600.00, rental.TotalPrice)
}

func TestDB_CloseTwice(t *testing.T) {
	db, err := Open(WithDirPath(t.TempDir()))
	require.Nil(t, err)

	require.Nil(t, db.Close())
	// deterministic: every store reports it is already closed
	assert.ErrorIs(t, db.Close(), ErrStoreClosed)
}
