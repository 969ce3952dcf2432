package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gamedrive/sales-service/internal/database"
)

var platformsOutput string

// platformsCmd represents the platforms command
var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List platforms and their cooldown rules",
	Long: `List all distribution platforms together with the cooldown rules the
validation engine applies to them.`,
	Example: `  sales-service platforms
  sales-service platforms --output json`,
	RunE: runPlatforms,
}

func init() {
	rootCmd.AddCommand(platformsCmd)

	platformsCmd.Flags().StringVar(&platformsOutput, "output", "table", "Output format: table or json")
}

func runPlatforms(cmd *cobra.Command, args []string) error {
	platforms, err := database.ListPlatforms(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list platforms: %w", err)
	}

	switch strings.ToLower(platformsOutput) {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(platforms)
	case "table":
		outputPlatformsTable(platforms)
	default:
		return fmt.Errorf("invalid output format: %s (use 'table' or 'json')", platformsOutput)
	}
	return nil
}

func outputPlatformsTable(platforms []database.Platform) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOOLDOWN DAYS\tSPECIAL SALES EXEMPT")
	for _, p := range platforms {
		fmt.Fprintf(w, "%s\t%s\t%d\t%t\n", p.ID, p.Name, p.CooldownDays, p.SpecialSalesExemptFromCooldown)
	}
	w.Flush()
	fmt.Printf("\n%d platforms\n", len(platforms))
}
