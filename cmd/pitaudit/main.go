package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/laws2020/nigeriaPITaudit/internal/calculation"
	"github.com/laws2020/nigeriaPITaudit/internal/config"
	"github.com/laws2020/nigeriaPITaudit/internal/domain"
	"github.com/laws2020/nigeriaPITaudit/internal/ingest"
	"github.com/laws2020/nigeriaPITaudit/internal/output"
	"github.com/laws2020/nigeriaPITaudit/internal/store"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "pitaudit %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// decimalFlag reads a required string flag as a money amount. Thousands
// separators are accepted.
func decimalFlag(cmd *cobra.Command, name string) decimal.Decimal {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		log.Fatalf("--%s flag is required", name)
	}
	v, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		log.Fatalf("--%s: %q is not a valid amount", name, raw)
	}
	return v
}

// dateFlag reads a required string flag as a calendar date.
func dateFlag(cmd *cobra.Command, name string) time.Time {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		log.Fatalf("--%s flag is required", name)
	}
	t, err := time.Parse(ingest.DateLayout, raw)
	if err != nil {
		log.Fatalf("--%s: %q is not a valid date (want YYYY-MM-DD)", name, raw)
	}
	return t
}

var rootCmd = &cobra.Command{
	Use:   "pitaudit",
	Short: "Nigerian Personal Income Tax audit CLI",
	Long:  "Audit engine for Nigerian Personal Income Tax: payroll assessment, late-remittance penalties and deduction at source",
}

var assessCmd = &cobra.Command{
	Use:   "assess [payroll-csv]",
	Short: "Assess personal income tax for a payroll table",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		payrollFile := args[0]

		statutoryFile, _ := cmd.Flags().GetString("statutory")
		parser := config.NewStatutoryParser()
		statutory, err := parser.LoadOrDefault(statutoryFile)
		if err != nil {
			log.Fatal(err)
		}

		periodStr, _ := cmd.Flags().GetString("period")
		period, err := domain.ParsePeriod(periodStr)
		if err != nil {
			log.Fatal(err)
		}

		regimeStr, _ := cmd.Flags().GetString("regime")
		regime, err := domain.ParseReliefRegime(regimeStr)
		if err != nil {
			log.Fatal(err)
		}

		loader := ingest.NewLoader()
		rows, err := loader.LoadFile(payrollFile)
		if err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewAuditEngineWithConfig(statutory)
		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			engine.SetLogger(simpleCLILogger{})
		}

		report, err := engine.AssessTable(ingest.EmployeeRecords(rows), calculation.AssessmentOptions{
			Period: period,
			Regime: regime,
		})
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(outputFormat)
		if f == nil {
			log.Fatalf("unknown output format: %s (valid: %s)", outputFormat, strings.Join(output.FormatterNames(), ", "))
		}

		outFile, _ := cmd.Flags().GetString("out")
		if outFile == "" && f.Name() == "pdf" {
			log.Fatal("--out is required for pdf output")
		}

		data, err := f.Format(report)
		if err != nil {
			log.Fatal(err)
		}

		if outFile != "" {
			if err := os.WriteFile(outFile, data, 0644); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Report written to %s\n", outFile)
		} else {
			fmt.Print(string(data))
		}

		saveDir, _ := cmd.Flags().GetString("save")
		if saveDir != "" {
			label, _ := cmd.Flags().GetString("label")
			if label == "" {
				label = strings.TrimSuffix(filepath.Base(payrollFile), filepath.Ext(payrollFile))
			}
			container, err := store.NewStore(saveDir).SavePeriod(label, report, statutory)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Stored period %s (run %s) in %s\n", container.Period, container.RunID, saveDir)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [statutory-yaml]",
	Short: "Validate a statutory rates file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewStatutoryParser()
		if _, err := parser.LoadFromFile(inputFile); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Statutory rates file %s is valid\n", inputFile)
	},
}

func init() {
	assessCmd.Flags().StringP("period", "p", "yearly", "Assessment period (yearly, monthly)")
	assessCmd.Flags().StringP("regime", "r", "consolidated", "Relief regime (consolidated, rent)")
	assessCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json, pdf)")
	assessCmd.Flags().StringP("out", "o", "", "Write the report to a file instead of stdout")
	assessCmd.Flags().String("save", "", "Directory to store the assessment run in as a dated period container")
	assessCmd.Flags().String("label", "", "Period label for the stored container (default: payroll file name)")
	assessCmd.Flags().String("statutory", "", "Path to a statutory rates file (default: built-in tables)")
	assessCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
