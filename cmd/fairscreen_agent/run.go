package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/fairscreen/internal/analysis"
	"github.com/jonathan/fairscreen/internal/config"
	"github.com/jonathan/fairscreen/internal/db"
	"github.com/jonathan/fairscreen/internal/ingestion"
	"github.com/jonathan/fairscreen/internal/logger"
	"github.com/jonathan/fairscreen/internal/observability"
	"github.com/jonathan/fairscreen/internal/similarity"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run one fairness analysis over a candidate batch",
	Long: `Runs the full analysis: keyword screening -> semantic rescue -> bias detection -> alert synthesis.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalysisCmd,
}

var (
	runConfigPath string
	runBatch      string
	runCriteria   string
	runWorkers    int
	runAPIKey     string
	runOffline    bool
	runVerbose    bool
	runJSONLog    bool
	runDebug      bool
	runOutput     string
	runDBURL      string
	runTimeout    int
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runBatch, "batch", "b", "", "Path to candidate batch JSON file")
	runCommand.Flags().StringVarP(&runCriteria, "criteria", "c", "", "Path to job criteria JSON file")
	runCommand.Flags().IntVar(&runWorkers, "workers", 0, "Screening worker pool size (default 8)")
	runCommand.Flags().BoolVar(&runOffline, "offline", false, "Skip the semantic provider; rescue scores are 0")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print summary, rescue, and alert digests")
	runCommand.Flags().BoolVar(&runJSONLog, "json-log", false, "Emit JSON logs instead of console output")
	runCommand.Flags().BoolVar(&runDebug, "debug", false, "Log at debug level")
	runCommand.Flags().StringVarP(&runOutput, "output", "o", "", "Write the result JSON to this path instead of stdout")
	runCommand.Flags().IntVar(&runTimeout, "timeout", 0, "Whole-run timeout in seconds (0 = none)")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for artifact persistence
	runCommand.Flags().StringVar(&runDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runAnalysisCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Batch == "" {
		return fmt.Errorf("--batch is required (or 'batch' in the config file)")
	}
	if cfg.Criteria == "" {
		return fmt.Errorf("--criteria is required (or 'criteria' in the config file)")
	}

	log, err := logger.New(cfg.JSONLog, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.Timeout)*time.Second)
		defer cancel()
	}

	candidates, err := ingestion.LoadCandidateBatch(cfg.Batch)
	if err != nil {
		return err
	}
	criteria, err := ingestion.LoadJobCriteria(cfg.Criteria)
	if err != nil {
		return err
	}

	provider, err := buildProvider(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = provider.Close() }()

	// Database persistence is optional; a connection failure degrades to a
	// warning rather than failing the analysis.
	var database *db.DB
	if cfg.DBURL != "" {
		database, err = db.Connect(ctx, cfg.DBURL)
		if err != nil {
			log.Warn("failed to connect to database, continuing without persistence", zap.Error(err))
		} else {
			defer database.Close()
		}
	}

	result, err := analysis.Run(ctx, candidates, *criteria, analysis.Options{
		Provider: provider,
		Workers:  cfg.Workers,
		Logger:   log,
	})
	if err != nil {
		return fmt.Errorf("analysis could not run: %w", err)
	}

	if database != nil {
		if err := database.CreateRun(ctx, result.RunID, result.JobTitle, result.Summary.TotalAnalyzed); err != nil {
			log.Warn("failed to create run record", zap.Error(err))
		} else if err := database.SaveResult(ctx, result, criteria); err != nil {
			log.Warn("failed to persist result", zap.Error(err))
		}
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintSummary(result)
		printer.PrintRescues(result.Outcomes)
		printer.PrintAlerts(result.Alerts)
	}

	return writeResult(result, cfg.Output)
}

// mergedConfig loads the optional config file and applies explicit CLI flags
// on top of it.
func mergedConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg config.Config
	if runConfigPath != "" {
		loaded, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("batch") {
		cfg.Batch = runBatch
	}
	if cmd.Flags().Changed("criteria") {
		cfg.Criteria = runCriteria
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = runWorkers
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("offline") {
		cfg.Offline = runOffline
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}
	if cmd.Flags().Changed("json-log") {
		cfg.JSONLog = runJSONLog
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = runDebug
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = runOutput
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DBURL = runDBURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = runTimeout
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DBURL == "" {
		cfg.DBURL = os.Getenv("DATABASE_URL")
	}
	return &cfg, nil
}

func buildProvider(ctx context.Context, cfg *config.Config) (similarity.Provider, error) {
	if cfg.Offline {
		return similarity.NewStatic(), nil
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("an API key is required unless --offline is set (flag --api-key or env GEMINI_API_KEY)")
	}
	return similarity.NewProvider(ctx, similarity.DefaultConfig(), cfg.APIKey)
}

func writeResult(result any, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write result to %s: %w", path, err)
	}
	return nil
}
