package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/laws2020/nigeriaPITaudit/internal/calculation"
	"github.com/laws2020/nigeriaPITaudit/internal/domain"
	"github.com/laws2020/nigeriaPITaudit/internal/output"
)

var withholdingCmd = &cobra.Command{
	Use:   "withholding",
	Short: "Compute withholding tax deducted at source on a transaction",
	Long: `Compute the deduction-at-source tax on a one-off transaction such as
dividends, rent or consultancy fees. Rates depend on the transaction
category and the payee class.

Examples:
  pitaudit withholding --amount 250000 --category dividends --payee individual
  pitaudit withholding --amount 1000000 --category consultancy --payee corporate
`,
	Run: func(cmd *cobra.Command, args []string) {
		amount := decimalFlag(cmd, "amount")

		category, _ := cmd.Flags().GetString("category")
		if category == "" {
			log.Fatal("--category flag is required")
		}

		payeeStr, _ := cmd.Flags().GetString("payee")
		payee, err := domain.ParseEmployerClass(payeeStr)
		if err != nil {
			log.Fatal(err)
		}

		wc := calculation.NewWithholdingCalculator()
		deduction, err := wc.Deduct(amount, category, payee)
		if err != nil {
			if errors.Is(err, domain.ErrUnknownTransactionType) {
				log.Fatalf("%v (known categories: %s)", err, strings.Join(wc.Categories(), ", "))
			}
			log.Fatal(err)
		}

		fmt.Printf("Transaction amount: %s\n", output.FormatCurrency(amount))
		fmt.Printf("Withholding tax:    %s\n", output.FormatCurrency(deduction))
		fmt.Printf("Net payable:        %s\n", output.FormatCurrency(amount.Sub(deduction)))
	},
}

func init() {
	withholdingCmd.Flags().String("amount", "", "Transaction amount (required)")
	withholdingCmd.Flags().String("category", "", "Transaction category, e.g. dividends, rent, consultancy (required)")
	withholdingCmd.Flags().String("payee", "corporate", "Payee class (individual, corporate)")

	rootCmd.AddCommand(withholdingCmd)
}
