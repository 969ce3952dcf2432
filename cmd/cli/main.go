package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gamedrive/sales-service/config"
	"github.com/gamedrive/sales-service/internal/database"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sales-service",
	Short: "Sales Service CLI - Sale scheduling and conflict checking tool",
	Long: `A CLI tool for inspecting platform cooldown rules and checking proposed
sale placements against the existing schedule, using the same validation
engine as the API.`,
	PersistentPreRunE: persistentPreRun,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml or ./config.yaml)")
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}
}

// persistentPreRun runs before each command and initializes dependencies
func persistentPreRun(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" || cmd.Name() == "completion" {
		return nil
	}

	logger = initLogger()

	dbURL := config.GetDatabaseURL()
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL not set")
	}

	poolCfg := database.PoolConfig{MaxConns: 5, MinConns: 1}
	if cfg != nil {
		poolCfg = database.PoolConfig{
			MaxConns:        cfg.Database.MaxConnections,
			MinConns:        cfg.Database.MinConnections,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		}
	}

	if err := database.Connect(context.Background(), dbURL, poolCfg); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	return nil
}

func initLogger() *zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stderr}
	l := zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	return &l
}

func main() {
	err := Execute()
	database.Close()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if checkConflict {
		os.Exit(1)
	}
}
