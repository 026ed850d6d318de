package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentdb/rentdb/model"
)

var rentalCmd = &cobra.Command{
	Use:   "rental",
	Short: "Manage rental agreements",
}

var rentalCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a rental agreement",
	Long: `Create a rental agreement referencing an active customer and an
available car. Dates are DDMMYYYY, e.g. 25102025, and are validated as
real calendar dates before any record is written. The total price is the
car's daily rate times the inclusive day span.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt32("id")
		customerID, _ := cmd.Flags().GetInt32("customer")
		carID, _ := cmd.Flags().GetInt32("car")
		startStr, _ := cmd.Flags().GetString("start")
		endStr, _ := cmd.Flags().GetString("end")

		start, err := model.ParseDate(startStr)
		if err != nil {
			return err
		}
		end, err := model.ParseDate(endStr)
		if err != nil {
			return err
		}

		db, done, err := openDB()
		if err != nil {
			return err
		}
		defer done()

		rental, err := db.CreateRental(id, customerID, carID, start, end)
		if err != nil {
			return err
		}
		fmt.Printf("Created rental %d: %s to %s, total %.2f\n",
			rental.ID, rental.StartDate, rental.EndDate, rental.TotalPrice)
		return nil
	},
}

var rentalCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "Close a rental and release the car",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt32("id")

		db, done, err := openDB()
		if err != nil {
			return err
		}
		defer done()

		if err := db.CloseRental(id); err != nil {
			return err
		}
		fmt.Printf("Closed rental %d\n", id)
		return nil
	},
}

var rentalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active rental agreements",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, done, err := openDB()
		if err != nil {
			return err
		}
		defer done()

		rentals, err := db.Rentals.All()
		if err != nil {
			return err
		}
		if len(rentals) == 0 {
			fmt.Println("No active rental agreements.")
			return nil
		}
		for _, rent := range rentals {
			fmt.Printf("ID: %d | CustID: %d | CarID: %d | Start: %s | End: %s | Total: %.2f\n",
				rent.ID, rent.CustomerID, rent.CarID, rent.StartDate, rent.EndDate, rent.TotalPrice)
		}
		return nil
	},
}

var rentalGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Look up a rental by id",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt32("id")

		db, done, err := openDB()
		if err != nil {
			return err
		}
		defer done()

		rent, offset, err := db.Rentals.Get(id)
		if err != nil {
			return err
		}
		fmt.Printf("ID: %d | CustID: %d | CarID: %d | Start: %s | End: %s | Total: %.2f (offset %d)\n",
			rent.ID, rent.CustomerID, rent.CarID, rent.StartDate, rent.EndDate, rent.TotalPrice, offset)
		return nil
	},
}

func init() {
	rentalCreateCmd.Flags().Int32("id", 0, "rental id")
	rentalCreateCmd.Flags().Int32("customer", 0, "customer id")
	rentalCreateCmd.Flags().Int32("car", 0, "car id")
	rentalCreateCmd.Flags().String("start", "", "start date, DDMMYYYY")
	rentalCreateCmd.Flags().String("end", "", "end date, DDMMYYYY")

	rentalCloseCmd.Flags().Int32("id", 0, "rental id")
	rentalGetCmd.Flags().Int32("id", 0, "rental id")

	rentalCmd.AddCommand(rentalCreateCmd, rentalCloseCmd, rentalListCmd, rentalGetCmd)
	rootCmd.AddCommand(rentalCmd)
}
