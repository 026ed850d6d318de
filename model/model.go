package model

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Wire widths of the text fields, in bytes. They are part of the on-disk
// slot layout and must not change for the lifetime of a data file.
const (
	ModelWidth = 30
	PlateWidth = 10
	NameWidth  = 30
	PhoneWidth = 15
)

var ErrOversizedField = errors.New("model: field exceeds its wire width")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Record is what a fixed-slot store persists: an entity with a signed
// 32-bit id that is unique among the active records of its file.
type Record interface {
	RecordID() int32
	SetRecordID(int32)
	// Validate rejects a record before any bytes are written.
	Validate() error
}

type Car struct {
	ID        int32  `validate:"required"`
	Model     string `validate:"required"`
	Plate     string `validate:"required"`
	DailyRate float64
	Rented    bool
}

func (c *Car) RecordID() int32      { return c.ID }
func (c *Car) SetRecordID(id int32) { c.ID = id }

func (c *Car) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid car: %w", err)
	}
	if err := checkWidth("model", c.Model, ModelWidth); err != nil {
		return err
	}
	return checkWidth("plate", c.Plate, PlateWidth)
}

type Customer struct {
	ID    int32  `validate:"required"`
	Name  string `validate:"required"`
	Phone string `validate:"required"`
}

func (c *Customer) RecordID() int32      { return c.ID }
func (c *Customer) SetRecordID(id int32) { c.ID = id }

func (c *Customer) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid customer: %w", err)
	}
	if err := checkWidth("name", c.Name, NameWidth); err != nil {
		return err
	}
	return checkWidth("phone", c.Phone, PhoneWidth)
}

// Rental references one customer and one car by id. The references are
// checked against active records at creation time only; readers resolve
// later deletions defensively.
type Rental struct {
	ID         int32 `validate:"required"`
	CustomerID int32 `validate:"required"`
	CarID      int32 `validate:"required"`
	StartDate  Date
	EndDate    Date
	TotalPrice float64
}

func (r *Rental) RecordID() int32      { return r.ID }
func (r *Rental) SetRecordID(id int32) { r.ID = id }

// Validate checks the references, not the dates: date validity is an
// input-boundary concern, and a rental priced through the defensive
// one-day fallback still gets persisted with its raw date ints.
func (r *Rental) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid rental: %w", err)
	}
	return nil
}

func checkWidth(field, s string, max int) error {
	if len(s) > max {
		return fmt.Errorf("%w: %s is %d bytes, max %d", ErrOversizedField, field, len(s), max)
	}
	return nil
}

// Clip truncates s to at most max bytes without splitting a UTF-8
// sequence. Input boundaries clip free text before it reaches a store.
func Clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
