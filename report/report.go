// Package report renders plain-text tabular summaries of a rentdb
// database. Reports consume only the stores' list and lookup operations;
// a rental whose customer or car was deleted after creation degrades to
// placeholder text instead of failing the report.
package report

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rentdb/rentdb"
	"github.com/rentdb/rentdb/model"
)

const lineWidth = 70

// Master writes the master report: every active car, customer and rental
// with per-section counts.
func Master(db *rentdb.DB, filename string) error {
	cars, err := db.Cars.All()
	if err != nil {
		return err
	}
	customers, err := db.Customers.All()
	if err != nil {
		return err
	}
	rentals, err := db.Rentals.All()
	if err != nil {
		return err
	}

	var b strings.Builder
	title(&b, "MASTER RENTAL SYSTEM REPORT")
	fmt.Fprintf(&b, "Generated On: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	b.WriteString(strings.Repeat("-", lineWidth) + "\n")

	b.WriteString("\n--- ACTIVE CAR INVENTORY ---\n")
	fmt.Fprintf(&b, "Total Active Cars: %d\n", len(cars))
	fmt.Fprintf(&b, "%-5s | %-30s | %-15s | %-12s | %-6s\n", "ID", "Model", "LicensePlate", "DailyRate", "Rented")
	b.WriteString(strings.Repeat("-", 80) + "\n")
	if len(cars) == 0 {
		b.WriteString("No active cars found.\n")
	}
	for _, car := range cars {
		fmt.Fprintf(&b, "%-5d | %-30s | %-15s | %-12.2f | %-6v\n",
			car.ID, car.Model, car.Plate, car.DailyRate, car.Rented)
	}

	b.WriteString("\n--- ACTIVE CUSTOMER DIRECTORY ---\n")
	fmt.Fprintf(&b, "Total Active Customers: %d\n", len(customers))
	fmt.Fprintf(&b, "%-5s | %-30s | %-15s\n", "ID", "Name", "Phone")
	b.WriteString(strings.Repeat("-", 58) + "\n")
	if len(customers) == 0 {
		b.WriteString("No active customers found.\n")
	}
	for _, cust := range customers {
		fmt.Fprintf(&b, "%-5d | %-30s | %-15s\n", cust.ID, cust.Name, cust.Phone)
	}

	b.WriteString("\n--- ACTIVE RENTAL AGREEMENTS ---\n")
	fmt.Fprintf(&b, "Total Active Rentals: %d\n", len(rentals))
	fmt.Fprintf(&b, "%-5s | %-10s | %-7s | %-10s | %-10s | %-5s | %-12s\n",
		"ID", "CustomerID", "CarID", "StartDate", "EndDate", "Days", "TotalPrice")
	b.WriteString(strings.Repeat("-", 80) + "\n")
	if len(rentals) == 0 {
		b.WriteString("No active rental agreements found.\n")
	}
	for _, rent := range rentals {
		fmt.Fprintf(&b, "%-5d | %-10d | %-7d | %-10s | %-10s | %-5s | %-12.2f\n",
			rent.ID, rent.CustomerID, rent.CarID,
			rent.StartDate, rent.EndDate, daySpan(rent), rent.TotalPrice)
	}

	b.WriteString("\n" + strings.Repeat("=", lineWidth) + "\n")
	return os.WriteFile(filename, []byte(b.String()), 0644)
}

// Detailed writes the detailed summary report: every car slot, deleted
// ones included, joined with its active rental and customer, followed by
// fleet statistics.
func Detailed(db *rentdb.DB, filename string) error {
	carSlots, err := db.Cars.Slots()
	if err != nil {
		return err
	}
	rentals, err := db.Rentals.All()
	if err != nil {
		return err
	}

	rentalByCar := make(map[int32]*model.Rental, len(rentals))
	for _, rent := range rentals {
		rentalByCar[rent.CarID] = rent
	}

	var b strings.Builder
	title(&b, "DETAILED RENTAL SUMMARY REPORT")
	fmt.Fprintf(&b, "Generated On: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	b.WriteString("Endianness  : Little-Endian\n")
	b.WriteString(strings.Repeat("-", lineWidth) + "\n\n")

	fmt.Fprintf(&b, "%-5s | %-30s | %-10s | %-9s | %-30s | %-10s | %-12s\n",
		"ID", "Model", "Status", "RentalID", "RentedBy", "Until", "TotalPrice")
	b.WriteString(strings.Repeat("-", 120) + "\n")
	for _, slot := range carSlots {
		car := slot.Record
		status := "Available"
		switch {
		case !slot.Active:
			status = "Deleted"
		case car.Rented:
			status = "Rented"
		}

		rentalID, rentedBy, until, total := "-", "-", "-", "-"
		if rent, ok := rentalByCar[car.ID]; ok && slot.Active {
			rentalID = fmt.Sprintf("%d", rent.ID)
			rentedBy = customerName(db, rent.CustomerID)
			until = rent.EndDate.String()
			total = fmt.Sprintf("%.2f", rent.TotalPrice)
		}
		fmt.Fprintf(&b, "%-5d | %-30s | %-10s | %-9s | %-30s | %-10s | %-12s\n",
			car.ID, car.Model, status, rentalID, rentedBy, until, total)
	}

	writeStatistics(&b, carSlots, rentals)
	return os.WriteFile(filename, []byte(b.String()), 0644)
}

func writeStatistics(b *strings.Builder, carSlots []rentdb.Slot[*model.Car], rentals []*model.Rental) {
	rentedIDs := make(map[int32]bool, len(rentals))
	for _, rent := range rentals {
		rentedIDs[rent.CarID] = true
	}

	var active []*model.Car
	for _, slot := range carSlots {
		if slot.Active {
			active = append(active, slot.Record)
		}
	}

	total := len(carSlots)
	deleted := total - len(active)
	rented := 0
	byBrand := map[string]int{}
	minRate, maxRate, sumRate := 0.0, 0.0, 0.0
	for i, car := range active {
		if rentedIDs[car.ID] {
			rented++
		} else {
			brand, _, _ := strings.Cut(car.Model, " ")
			byBrand[brand]++
		}
		if i == 0 || car.DailyRate < minRate {
			minRate = car.DailyRate
		}
		if car.DailyRate > maxRate {
			maxRate = car.DailyRate
		}
		sumRate += car.DailyRate
	}
	avgRate := 0.0
	if len(active) > 0 {
		avgRate = sumRate / float64(len(active))
	}

	b.WriteString("\n--- FLEET STATISTICS ---\n")
	fmt.Fprintf(b, "Total Car Records : %d\n", total)
	fmt.Fprintf(b, "Active Cars       : %d\n", len(active))
	fmt.Fprintf(b, "Deleted Cars      : %d\n", deleted)
	fmt.Fprintf(b, "Currently Rented  : %d\n", rented)
	fmt.Fprintf(b, "Available Now     : %d\n", len(active)-rented)
	fmt.Fprintf(b, "Daily Rate        : min %.2f / max %.2f / avg %.2f\n", minRate, maxRate, avgRate)

	b.WriteString("\nAvailable Cars by Brand:\n")
	brands := make([]string, 0, len(byBrand))
	for brand := range byBrand {
		brands = append(brands, brand)
	}
	sort.Strings(brands)
	if len(brands) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, brand := range brands {
		fmt.Fprintf(b, "  %-20s %d\n", brand, byBrand[brand])
	}
	b.WriteString("\n" + strings.Repeat("=", lineWidth) + "\n")
}

func customerName(db *rentdb.DB, id int32) string {
	cust, _, err := db.Customers.Get(id)
	if err != nil {
		if errors.Is(err, rentdb.ErrRecordNotFound) {
			// dangling reference, the customer was deleted after the
			// rental was created
			return fmt.Sprintf("customer %d (deleted)", id)
		}
		return fmt.Sprintf("customer %d (unreadable)", id)
	}
	return cust.Name
}

func daySpan(rent *model.Rental) string {
	days, err := model.DaysBetween(rent.StartDate, rent.EndDate)
	if err != nil {
		return "?"
	}
	return fmt.Sprintf("%d", days)
}

func title(b *strings.Builder, text string) {
	b.WriteString(strings.Repeat("=", lineWidth) + "\n")
	pad := (lineWidth - len(text)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad) + text + "\n")
	b.WriteString(strings.Repeat("=", lineWidth) + "\n")
}
