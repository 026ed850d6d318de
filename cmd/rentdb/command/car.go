package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentdb/rentdb/model"
)

var carCmd = &cobra.Command{
	Use:   "car",
	Short: "Manage the car inventory",
}

var carAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a car",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt32("id")
		carModel, _ := cmd.Flags().GetString("model")
		plate, _ := cmd.Flags().GetString("plate")
		rate, _ := cmd.Flags().GetFloat64("rate")

		db, done, err := openDB()
		if err != nil {
			return err
		}
		defer done()

		car := &model.Car{
			ID:        id,
			Model:     model.Clip(carModel, model.ModelWidth),
			Plate:     model.Clip(plate, model.PlateWidth),
			DailyRate: rate,
		}
		offset, err := db.Cars.Add(car)
		if err != nil {
			return err
		}
		fmt.Printf("Added car %d at offset %d\n", id, offset)
		return nil
	},
}

var carUpdateRateCmd = &cobra.Command{
	Use:   "update-rate",
	Short: "Change a car's daily rate",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt32("id")
		rate, _ := cmd.Flags().GetFloat64("rate")

		db, done, err := openDB()
		if err != nil {
			return err
		}
		defer done()

		if err := db.Cars.Update(id, func(c *model.Car) { c.DailyRate = rate }); err != nil {
			return err
		}
		fmt.Printf("Updated car %d\n", id)
		return nil
	},
}

var carDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Soft delete a car",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt32("id")

		db, done, err := openDB()
		if err != nil {
			return err
		}
		defer done()

		if err := db.Cars.Delete(id); err != nil {
			return err
		}
		fmt.Printf("Deleted car %d\n", id)
		return nil
	},
}

var carListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active cars",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, done, err := openDB()
		if err != nil {
			return err
		}
		defer done()

		cars, err := db.Cars.All()
		if err != nil {
			return err
		}
		if len(cars) == 0 {
			fmt.Println("No active cars.")
			return nil
		}
		for _, car := range cars {
			fmt.Printf("ID: %d | Model: %-30s | Plate: %-10s | Rate: %.2f | Rented: %v\n",
				car.ID, car.Model, car.Plate, car.DailyRate, car.Rented)
		}
		return nil
	},
}

var carGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Look up a car by id",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt32("id")

		db, done, err := openDB()
		if err != nil {
			return err
		}
		defer done()

		car, offset, err := db.Cars.Get(id)
		if err != nil {
			return err
		}
		fmt.Printf("ID: %d | Model: %s | Plate: %s | Rate: %.2f | Rented: %v (offset %d)\n",
			car.ID, car.Model, car.Plate, car.DailyRate, car.Rented, offset)
		return nil
	},
}

func init() {
	carAddCmd.Flags().Int32("id", 0, "car id")
	carAddCmd.Flags().String("model", "", "car model, clipped to 30 bytes")
	carAddCmd.Flags().String("plate", "", "license plate, clipped to 10 bytes")
	carAddCmd.Flags().Float64("rate", 0, "daily rate")

	carUpdateRateCmd.Flags().Int32("id", 0, "car id")
	carUpdateRateCmd.Flags().Float64("rate", 0, "new daily rate")

	carDeleteCmd.Flags().Int32("id", 0, "car id")
	carGetCmd.Flags().Int32("id", 0, "car id")

	carCmd.AddCommand(carAddCmd, carUpdateRateCmd, carDeleteCmd, carListCmd, carGetCmd)
	rootCmd.AddCommand(carCmd)
}
