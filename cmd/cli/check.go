package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gamedrive/sales-service/internal/database"
	"github.com/gamedrive/sales-service/internal/scheduling"
)

// checkConflict records an invalid verdict so main can exit non-zero
// after cleanup.
var checkConflict bool

var (
	checkProduct  string
	checkPlatform string
	checkStart    string
	checkEnd      string
	checkType     string
	checkExclude  string
	checkOutput   string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a proposed sale against the existing schedule",
	Long: `Check whether a proposed sale placement would conflict with existing sales
for the same product and platform, including the platform's cooldown window.
The check runs the same validation the API performs on sale creation.`,
	Example: `  sales-service check --product 8f1c... --platform 2ab0... --start 2026-06-01 --end 2026-06-07
  sales-service check --product 8f1c... --platform 2ab0... --start 2026-06-01 --end 2026-06-07 --type special
  sales-service check --product 8f1c... --platform 2ab0... --start 2026-06-01 --end 2026-06-07 --output json`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkProduct, "product", "", "Product ID (required)")
	checkCmd.Flags().StringVar(&checkPlatform, "platform", "", "Platform ID (required)")
	checkCmd.Flags().StringVar(&checkStart, "start", "", "Sale start date, format YYYY-MM-DD (required)")
	checkCmd.Flags().StringVar(&checkEnd, "end", "", "Sale end date, format YYYY-MM-DD (required)")
	checkCmd.Flags().StringVar(&checkType, "type", "regular", "Sale type: regular, seasonal or special")
	checkCmd.Flags().StringVar(&checkExclude, "exclude", "", "Sale ID to ignore (when re-checking an existing sale)")
	checkCmd.Flags().StringVar(&checkOutput, "output", "text", "Output format: text or json")

	checkCmd.MarkFlagRequired("product")
	checkCmd.MarkFlagRequired("platform")
	checkCmd.MarkFlagRequired("start")
	checkCmd.MarkFlagRequired("end")
}

func runCheck(cmd *cobra.Command, args []string) error {
	start, err := scheduling.ParseDate(checkStart)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	end, err := scheduling.ParseDate(checkEnd)
	if err != nil {
		return fmt.Errorf("invalid --end: %w", err)
	}

	proposal := scheduling.Proposal{
		ProductID:     checkProduct,
		PlatformID:    checkPlatform,
		Start:         start,
		End:           end,
		Type:          scheduling.SaleType(strings.ToLower(checkType)),
		ExcludeSaleID: checkExclude,
	}
	if err := proposal.Validate(); err != nil {
		return err
	}

	detector := scheduling.NewDetector()
	verdict, platform, err := database.ValidateProposal(context.Background(), detector, proposal)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	result := scheduling.FormatVerdict(*verdict, platform.Policy())

	// A conflicting placement exits non-zero, after main has released the
	// pool; os.Exit here would skip that cleanup.
	checkConflict = !result.Valid

	switch strings.ToLower(checkOutput) {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "text":
		printCheckResult(os.Stdout, result)
	default:
		return fmt.Errorf("invalid output format: %s (use 'text' or 'json')", checkOutput)
	}
	return nil
}

func printCheckResult(w io.Writer, result scheduling.ValidationResult) {
	if result.Valid {
		fmt.Fprintf(w, "VALID: %s to %s on %s\n", checkStart, checkEnd, result.Platform)
		fmt.Fprintf(w, "Cooldown after this sale ends: %s (%d days)\n", result.CooldownEnd, result.CooldownDays)
		return
	}

	fmt.Fprintf(w, "INVALID: %s\n", result.Message)
	if len(result.Conflicts.Direct) > 0 {
		fmt.Fprintln(w, "\nDirect conflicts:")
		for _, c := range result.Conflicts.Direct {
			fmt.Fprintf(w, "  %s  %s to %s\n", c.ID, c.StartDate, c.EndDate)
		}
	}
	if len(result.Conflicts.Cooldown) > 0 {
		fmt.Fprintln(w, "\nCooldown conflicts:")
		for _, c := range result.Conflicts.Cooldown {
			fmt.Fprintf(w, "  %s  %s to %s\n", c.ID, c.StartDate, c.EndDate)
		}
	}
}
