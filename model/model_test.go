package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCar_Validate(t *testing.T) {
	car := &Car{ID: 1, Model: "Toyota Camry", Plate: "ABC123", DailyRate: 1200}
	assert.Nil(t, car.Validate())
}

func TestCar_Validate_MissingField(t *testing.T) {
	car := &Car{ID: 1, Plate: "ABC123"}
	assert.NotNil(t, car.Validate())

	car = &Car{Model: "Toyota Camry", Plate: "ABC123"}
	assert.NotNil(t, car.Validate())
}

func TestCar_Validate_Oversized(t *testing.T) {
	car := &Car{ID: 1, Model: strings.Repeat("x", ModelWidth+1), Plate: "ABC123"}
	assert.ErrorIs(t, car.Validate(), ErrOversizedField)
}

func TestCustomer_Validate(t *testing.T) {
	cust := &Customer{ID: 1, Name: "Somchai", Phone: "0811111111"}
	assert.Nil(t, cust.Validate())

	cust = &Customer{ID: 1, Name: "Somchai"}
	assert.NotNil(t, cust.Validate())

	cust = &Customer{ID: 1, Name: "Somchai", Phone: strings.Repeat("9", PhoneWidth+1)}
	assert.ErrorIs(t, cust.Validate(), ErrOversizedField)
}

func TestRental_Validate(t *testing.T) {
	rent := &Rental{ID: 1, CustomerID: 1, CarID: 1, StartDate: 1012025, EndDate: 3012025}
	assert.Nil(t, rent.Validate())

	// missing customer reference
	rent = &Rental{ID: 1, CarID: 1, StartDate: 1012025, EndDate: 3012025}
	assert.NotNil(t, rent.Validate())

	// raw unparsable dates are still storable; date validity is checked
	// at the input boundary, not here
	rent = &Rental{ID: 1, CustomerID: 1, CarID: 1, StartDate: 0, EndDate: 99999999}
	assert.Nil(t, rent.Validate())
}

func TestClip(t *testing.T) {
	assert.Equal(t, "abc", Clip("abc", 10))
	assert.Equal(t, "abc", Clip("abcdef", 3))
	// never splits a multi-byte rune
	assert.Equal(t, "ab", Clip("abé", 3))
}
