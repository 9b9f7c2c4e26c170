package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/laws2020/nigeriaPITaudit/internal/calculation"
	"github.com/laws2020/nigeriaPITaudit/internal/domain"
	"github.com/laws2020/nigeriaPITaudit/internal/output"
)

var remittanceCmd = &cobra.Command{
	Use:   "remittance",
	Short: "Compute penalty and interest on a late tax remittance",
	Long: `Compute the liability accrued on tax remitted after its statutory due date:
simple interest per day overdue plus the selected penalty policy.

Examples:
  pitaudit remittance --unpaid 500000 --due 2024-01-31 --paid 2024-03-02 --class corporate --policy fixed
  pitaudit remittance --unpaid 500000 --due 2024-01-31 --paid 2024-03-02 --policy proportional
`,
	Run: func(cmd *cobra.Command, args []string) {
		unpaid := decimalFlag(cmd, "unpaid")
		due := dateFlag(cmd, "due")
		paid := dateFlag(cmd, "paid")

		classStr, _ := cmd.Flags().GetString("class")
		class, err := domain.ParseEmployerClass(classStr)
		if err != nil {
			log.Fatal(err)
		}

		policyName, _ := cmd.Flags().GetString("policy")
		if policyName == "" {
			log.Fatal("--policy flag is required (fixed or proportional)")
		}
		policy, err := calculation.PenaltyPolicyByName(policyName, domain.DefaultStatutory())
		if err != nil {
			log.Fatal(err)
		}

		rc := calculation.NewRemittanceCalculator()
		result, err := rc.PenaltyAndInterest(domain.RemittanceCase{
			UnpaidTax:     unpaid,
			DueDate:       due,
			PaymentDate:   paid,
			EmployerClass: class,
		}, policy)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Print(output.FormatRemittanceResult(result))
	},
}

var outstandingCmd = &cobra.Command{
	Use:   "outstanding",
	Short: "Reconcile a tax liability against a payment already made",
	Run: func(cmd *cobra.Command, args []string) {
		liability := decimalFlag(cmd, "liability")
		paid := decimalFlag(cmd, "paid")

		remaining, err := calculation.OutstandingLiability(liability, paid)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Actual liability:      %s\n", output.FormatCurrency(liability))
		fmt.Printf("Payment made:          %s\n", output.FormatCurrency(paid))
		fmt.Printf("Outstanding liability: %s\n", output.FormatCurrency(remaining))
	},
}

func init() {
	remittanceCmd.Flags().String("unpaid", "", "Unpaid tax amount (required)")
	remittanceCmd.Flags().String("due", "", "Statutory due date, YYYY-MM-DD (required)")
	remittanceCmd.Flags().String("paid", "", "Actual payment date, YYYY-MM-DD (required)")
	remittanceCmd.Flags().String("class", "corporate", "Employer class (individual, corporate)")
	remittanceCmd.Flags().String("policy", "", "Penalty policy (fixed, proportional) (required)")

	outstandingCmd.Flags().String("liability", "", "Actual liability amount (required)")
	outstandingCmd.Flags().String("paid", "", "Payment already made (required)")

	rootCmd.AddCommand(remittanceCmd)
	rootCmd.AddCommand(outstandingCmd)
}
