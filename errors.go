package rentdb

import (
	"fmt"
)

var (
	ErrRecordNotFound = addPrefix("record not found")
	ErrDuplicateID    = addPrefix("id is already in use")
	ErrStoreClosed    = addPrefix("store is closed")
	ErrDirIsUsing     = addPrefix("data direction is using")

	ErrCustomerNotFound = addPrefix("customer not found or inactive")
	ErrCarNotFound      = addPrefix("car not found or inactive")
	ErrCarRented        = addPrefix("car is already rented")
	ErrRentalNotFound   = addPrefix("rental not found or already closed")
	ErrDateRange        = addPrefix("end date is before start date")
)

func addPrefix(errStr string) error {
	return fmt.Errorf("rentdb err: %s", errStr)
}
