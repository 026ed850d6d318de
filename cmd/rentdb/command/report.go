package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentdb/rentdb/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate plain-text reports",
}

var reportMasterCmd = &cobra.Command{
	Use:   "master",
	Short: "Write the master report of all active records",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = cfg.Reports.MasterFile
		}

		db, done, err := openDB()
		if err != nil {
			return err
		}
		defer done()

		if err := report.Master(db, out); err != nil {
			return err
		}
		fmt.Printf("Master report written to %s\n", out)
		return nil
	},
}

var reportDetailedCmd = &cobra.Command{
	Use:   "detailed",
	Short: "Write the detailed summary report, deleted cars included",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = cfg.Reports.DetailedFile
		}

		db, done, err := openDB()
		if err != nil {
			return err
		}
		defer done()

		if err := report.Detailed(db, out); err != nil {
			return err
		}
		fmt.Printf("Detailed report written to %s\n", out)
		return nil
	},
}

func init() {
	reportMasterCmd.Flags().String("out", "", "output file (default from config)")
	reportDetailedCmd.Flags().String("out", "", "output file (default from config)")

	reportCmd.AddCommand(reportMasterCmd, reportDetailedCmd)
	rootCmd.AddCommand(reportCmd)
}
