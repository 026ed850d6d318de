package rentdb

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/rentdb/rentdb/codec"
	"github.com/rentdb/rentdb/fio"
	"github.com/rentdb/rentdb/model"
)

const (
	carFileName      = "cars.bin"
	customerFileName = "customers.bin"
	rentalFileName   = "rentals.bin"
)

// DB owns the three entity stores and the data directory lock. One
// process has the directory exclusively for the lifetime of the DB; a
// second opener fails fast with ErrDirIsUsing instead of silently
// corrupting the files.
type DB struct {
	Cars      *Store[*model.Car]
	Customers *Store[*model.Customer]
	Rentals   *Store[*model.Rental]

	fileLock *flock.Flock
	logger   *slog.Logger
}

// Open creates the data directory when absent, takes its file lock and
// opens the three entity stores, rebuilding their keydirs from disk.
func Open(opts ...Option) (*DB, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if err := os.MkdirAll(o.dirPath, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	fileLock := fio.NewFlock(o.dirPath)
	ok, err := fileLock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock data dir: %w", err)
	}
	if !ok {
		return nil, ErrDirIsUsing
	}

	db := &DB{fileLock: fileLock, logger: o.logger}

	db.Cars, err = openStore[*model.Car](filepath.Join(o.dirPath, carFileName), codec.NewCarCodec(), o)
	if err != nil {
		_ = fileLock.Unlock()
		return nil, err
	}
	db.Customers, err = openStore[*model.Customer](filepath.Join(o.dirPath, customerFileName), codec.NewCustomerCodec(), o)
	if err != nil {
		_ = db.Cars.Close()
		_ = fileLock.Unlock()
		return nil, err
	}
	db.Rentals, err = openStore[*model.Rental](filepath.Join(o.dirPath, rentalFileName), codec.NewRentalCodec(), o)
	if err != nil {
		_ = db.Customers.Close()
		_ = db.Cars.Close()
		_ = fileLock.Unlock()
		return nil, err
	}
	return db, nil
}

// Close closes every store and releases the directory lock. Errors are
// joined so a failure on one store does not leak the others. Calling
// Close twice reports ErrStoreClosed from each store.
func (db *DB) Close() error {
	err := errors.Join(
		db.Cars.Close(),
		db.Customers.Close(),
		db.Rentals.Close(),
	)
	if unlockErr := db.fileLock.Unlock(); unlockErr != nil {
		err = errors.Join(err, unlockErr)
	}
	return err
}

// CreateRental validates both references, prices the rental and appends
// it, then marks the car rented. The price is the car's daily rate times
// the day span inclusive of both endpoints, snapshotted here; later rate
// changes never touch an existing rental.
func (db *DB) CreateRental(id, customerID, carID int32, start, end model.Date) (*model.Rental, error) {
	if _, _, err := db.Customers.Get(customerID); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrCustomerNotFound, customerID)
		}
		return nil, err
	}
	car, _, err := db.Cars.Get(carID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrCarNotFound, carID)
		}
		return nil, err
	}
	if car.Rented {
		return nil, fmt.Errorf("%w: id %d", ErrCarRented, carID)
	}

	days, err := model.DaysBetween(start, end)
	if err != nil {
		// unparsable dates price as a single day instead of failing the rental
		db.logger.Warn("bad rental dates, pricing a single day",
			"rental", id, "start", int32(start), "end", int32(end))
		days = 1
	} else if days < 1 {
		return nil, fmt.Errorf("%w: %s before %s", ErrDateRange, end, start)
	}

	rental := &model.Rental{
		ID:         id,
		CustomerID: customerID,
		CarID:      carID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: car.DailyRate * float64(days),
	}
	if _, err := db.Rentals.Add(rental); err != nil {
		return nil, err
	}

	if err := db.Cars.Update(carID, func(c *model.Car) { c.Rented = true }); err != nil {
		// the rental is already durable; a failed flag flip is an
		// inconsistency for readers to resolve, not a reason to undo it
		db.logger.Warn("rental created but car not marked rented", "car", carID, "err", err)
	}
	return rental, nil
}

// CloseRental tombstones the rental and clears the car's rented flag.
// The flag clear is best-effort; the rental stays closed either way.
func (db *DB) CloseRental(id int32) error {
	rental, _, err := db.Rentals.Get(id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return fmt.Errorf("%w: id %d", ErrRentalNotFound, id)
		}
		return err
	}
	if err := db.Rentals.Delete(id); err != nil {
		return err
	}
	if err := db.Cars.Update(rental.CarID, func(c *model.Car) { c.Rented = false }); err != nil {
		db.logger.Warn("rental closed but car not released", "car", rental.CarID, "err", err)
	}
	return nil
}

// Sync flushes all three stores.
func (db *DB) Sync() error {
	return errors.Join(
		db.Cars.Sync(),
		db.Customers.Sync(),
		db.Rentals.Sync(),
	)
}
