package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentdb/rentdb/model"
)

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage the customer directory",
}

var customerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt32("id")
		name, _ := cmd.Flags().GetString("name")
		phone, _ := cmd.Flags().GetString("phone")

		db, done, err := openDB()
		if err != nil {
			return err
		}
		defer done()

		cust := &model.Customer{
			ID:    id,
			Name:  model.Clip(name, model.NameWidth),
			Phone: model.Clip(phone, model.PhoneWidth),
		}
		offset, err := db.Customers.Add(cust)
		if err != nil {
			return err
		}
		fmt.Printf("Added customer %d at offset %d\n", id, offset)
		return nil
	},
}

var customerUpdatePhoneCmd = &cobra.Command{
	Use:   "update-phone",
	Short: "Change a customer's phone number",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt32("id")
		phone, _ := cmd.Flags().GetString("phone")

		db, done, err := openDB()
		if err != nil {
			return err
		}
		defer done()

		clipped := model.Clip(phone, model.PhoneWidth)
		if err := db.Customers.Update(id, func(c *model.Customer) { c.Phone = clipped }); err != nil {
			return err
		}
		fmt.Printf("Updated customer %d\n", id)
		return nil
	},
}

var customerDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Soft delete a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt32("id")

		db, done, err := openDB()
		if err != nil {
			return err
		}
		defer done()

		if err := db.Customers.Delete(id); err != nil {
			return err
		}
		fmt.Printf("Deleted customer %d\n", id)
		return nil
	},
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, done, err := openDB()
		if err != nil {
			return err
		}
		defer done()

		customers, err := db.Customers.All()
		if err != nil {
			return err
		}
		if len(customers) == 0 {
			fmt.Println("No active customers.")
			return nil
		}
		for _, cust := range customers {
			fmt.Printf("ID: %d | Name: %-30s | Phone: %s\n", cust.ID, cust.Name, cust.Phone)
		}
		return nil
	},
}

var customerGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Look up a customer by id",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt32("id")

		db, done, err := openDB()
		if err != nil {
			return err
		}
		defer done()

		cust, offset, err := db.Customers.Get(id)
		if err != nil {
			return err
		}
		fmt.Printf("ID: %d | Name: %s | Phone: %s (offset %d)\n", cust.ID, cust.Name, cust.Phone, offset)
		return nil
	},
}

func init() {
	customerAddCmd.Flags().Int32("id", 0, "customer id")
	customerAddCmd.Flags().String("name", "", "full name, clipped to 30 bytes")
	customerAddCmd.Flags().String("phone", "", "phone number, clipped to 15 bytes")

	customerUpdatePhoneCmd.Flags().Int32("id", 0, "customer id")
	customerUpdatePhoneCmd.Flags().String("phone", "", "new phone number")

	customerDeleteCmd.Flags().Int32("id", 0, "customer id")
	customerGetCmd.Flags().Int32("id", 0, "customer id")

	customerCmd.AddCommand(customerAddCmd, customerUpdatePhoneCmd, customerDeleteCmd, customerListCmd, customerGetCmd)
	rootCmd.AddCommand(customerCmd)
}
