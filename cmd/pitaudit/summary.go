package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/laws2020/nigeriaPITaudit/internal/store"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [store-dir]",
	Short: "Compare stored assessment runs across periods",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		summaries, err := store.NewStore(args[0]).Summaries()
		if err != nil {
			log.Fatal(err)
		}
		if len(summaries) == 0 {
			fmt.Println("No stored assessment runs found.")
			return
		}

		fmt.Println("CROSS-PERIOD ASSESSMENT SUMMARY")
		fmt.Println(strings.Repeat("=", 91))
		fmt.Printf("%-12s %10s %16s %16s %16s %16s\n",
			"Period", "Employees", "Gross Earnings", "Total Relief", "Taxable Income", "Tax Due")
		fmt.Println(strings.Repeat("-", 91))
		for _, sum := range summaries {
			fmt.Printf("%-12s %10d %16s %16s %16s %16s\n",
				sum.Period, sum.Employees,
				sum.GrossEarnings.StringFixed(2),
				sum.TotalRelief.StringFixed(2),
				sum.TaxableIncome.StringFixed(2),
				sum.TaxDue.StringFixed(2))
		}
		fmt.Println(strings.Repeat("-", 91))
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
