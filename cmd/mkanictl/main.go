// Command mkanictl runs billing jobs and database maintenance by hand.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mkani/billing/pkg/scheduler"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:          "mkanictl",
		Short:        "Mkani billing administration",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		migrateCmd(),
		jobCmd(scheduler.GenerateMonthlyInvoices, "generate-invoices", "Generate the monthly invoices of every recurring package"),
		jobCmd(scheduler.GeneratePackageInvoices, "generate-package", "Generate invoices for one package"),
		jobCmd(scheduler.ExpireRentals, "expire-rentals", "Deactivate tenants whose rental period has ended"),
		jobCmd(scheduler.MarkOverdue, "mark-overdue", "Flag unpaid invoices past their due date"),
		jobCmd(scheduler.CleanupRejected, "cleanup-rejected", "Delete rejected resident profiles past retention"),
		profileCmd("approve", "Approve a pending resident profile", approveProfile),
		profileCmd("reject", "Reject a pending resident profile", rejectProfile),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
