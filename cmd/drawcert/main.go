// Command drawcert is the draw certification CLI.
//
// Usage:
//
//	drawcert validate --clubs clubs.json --draw draw.json
//	drawcert validate --clubs clubs.json --draw draw.json --format format.json
//	drawcert rules --severity soft
//	drawcert stats --clubs clubs.json --draw draw.json
//	drawcert batch --clubs clubs.json --dir draws/ --workers 4
//	drawcert record --clubs clubs.json --draw draw.json
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/drawcert/internal/batch"
	"github.com/albapepper/drawcert/internal/config"
	"github.com/albapepper/drawcert/internal/db"
	"github.com/albapepper/drawcert/internal/draw"
	"github.com/albapepper/drawcert/internal/loader"
	"github.com/albapepper/drawcert/internal/rules"
	"github.com/albapepper/drawcert/internal/store"
	"github.com/albapepper/drawcert/internal/tournament"
	"github.com/albapepper/drawcert/internal/validate"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "drawcert",
		Short: "League-phase draw certification CLI",
	}

	root.AddCommand(validateCmd())
	root.AddCommand(rulesCmd())
	root.AddCommand(statsCmd())
	root.AddCommand(batchCmd())
	root.AddCommand(recordCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// validate command
// --------------------------------------------------------------------------

func validateCmd() *cobra.Command {
	var clubsPath, drawPath, formatPath string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Certify a single draw file against the rulebook",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, v, err := loadInputs(clubsPath, drawPath, formatPath)
			if err != nil {
				return err
			}
			start := time.Now()
			report := v.Validate(d)
			logger.Info("Validation finished",
				"season", d.Season(), "clubs", len(d.Clubs()), "matches", d.MatchCount(),
				"duration", time.Since(start).Round(time.Millisecond),
				"summary", report.Summary())
			logReport(report)
			if !report.Valid {
				return fmt.Errorf("draw is invalid: %d error(s)", len(report.Errors))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&clubsPath, "clubs", "", "Clubs JSON file")
	cmd.Flags().StringVar(&drawPath, "draw", "", "Draw JSON file")
	cmd.Flags().StringVar(&formatPath, "format", "", "Tournament format JSON file (default: built-in league phase)")
	return cmd
}

// --------------------------------------------------------------------------
// rules command
// --------------------------------------------------------------------------

func rulesCmd() *cobra.Command {
	var severity string
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rule catalog in evaluation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			set := rules.NewSet(tournament.Default())
			var selected []rules.Rule
			switch severity {
			case "":
				selected = set.Rules()
			case string(rules.SeverityHard), string(rules.SeveritySoft):
				selected = set.BySeverity(rules.Severity(severity))
			default:
				return fmt.Errorf("severity must be %q or %q", rules.SeverityHard, rules.SeveritySoft)
			}
			for _, info := range rules.Describe(selected) {
				fmt.Printf("%-34s %-7s %-5s %s\n", info.Name, info.Kind, info.Severity, info.Description)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&severity, "severity", "", "Filter by severity (hard, soft)")
	return cmd
}

// --------------------------------------------------------------------------
// stats command
// --------------------------------------------------------------------------

func statsCmd() *cobra.Command {
	var clubsPath, drawPath, formatPath string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print draw statistics as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := loadInputs(clubsPath, drawPath, formatPath)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(d.Statistics(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode statistics: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&clubsPath, "clubs", "", "Clubs JSON file")
	cmd.Flags().StringVar(&drawPath, "draw", "", "Draw JSON file")
	cmd.Flags().StringVar(&formatPath, "format", "", "Tournament format JSON file (default: built-in league phase)")
	return cmd
}

// --------------------------------------------------------------------------
// batch command
// --------------------------------------------------------------------------

func batchCmd() *cobra.Command {
	var (
		clubsPath  string
		dir        string
		formatPath string
		workers    int
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Validate every draw file in a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				return fmt.Errorf("--dir is required")
			}
			clubs, format, err := loadClubsAndFormat(clubsPath, formatPath)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			result, err := batch.Run(ctx, dir, clubs, format, workers, logger)
			if err != nil {
				return err
			}
			for _, it := range result.Items {
				switch {
				case it.LoadErr != "":
					logger.Error("draw load failed", "file", it.File, "error", it.LoadErr)
				case !it.Valid:
					logger.Error("draw invalid", "summary", it.Summary())
				default:
					logger.Info("draw valid", "summary", it.Summary())
				}
			}
			if !result.OK() {
				return fmt.Errorf("batch failed: %s", result.Summary())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&clubsPath, "clubs", "", "Clubs JSON file")
	cmd.Flags().StringVar(&dir, "dir", "", "Directory of draw JSON files")
	cmd.Flags().StringVar(&formatPath, "format", "", "Tournament format JSON file (default: built-in league phase)")
	cmd.Flags().IntVar(&workers, "workers", 4, "Concurrent worker count")
	return cmd
}

// --------------------------------------------------------------------------
// record command
// --------------------------------------------------------------------------

func recordCmd() *cobra.Command {
	var clubsPath, drawPath, formatPath string
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Validate a draw and persist the outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, v, err := loadInputs(clubsPath, drawPath, formatPath)
			if err != nil {
				return err
			}
			return runStore(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				start := time.Now()
				report := v.Validate(d)
				run := &store.Run{
					ID:         uuid.New(),
					Season:     d.Season(),
					Clubs:      len(d.Clubs()),
					Matches:    d.MatchCount(),
					Valid:      report.Valid,
					Errors:     report.Errors,
					Warnings:   report.Warnings,
					DurationMS: time.Since(start).Milliseconds(),
				}
				if err := store.InsertRun(ctx, pool, run); err != nil {
					return err
				}
				logger.Info("Validation run recorded",
					"run_id", run.ID, "season", run.Season, "valid", run.Valid,
					"summary", report.Summary())
				logReport(report)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&clubsPath, "clubs", "", "Clubs JSON file")
	cmd.Flags().StringVar(&drawPath, "draw", "", "Draw JSON file")
	cmd.Flags().StringVar(&formatPath, "format", "", "Tournament format JSON file (default: built-in league phase)")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// loadInputs resolves the clubs, optional format, and draw files into a
// ready-to-judge draw plus the validator bound to the same format.
func loadInputs(clubsPath, drawPath, formatPath string) (*draw.Draw, *validate.Validator, error) {
	if drawPath == "" {
		return nil, nil, fmt.Errorf("--draw is required")
	}
	clubs, format, err := loadClubsAndFormat(clubsPath, formatPath)
	if err != nil {
		return nil, nil, err
	}
	d, err := loader.Draw(drawPath, clubs, format)
	if err != nil {
		return nil, nil, err
	}
	return d, validate.New(format), nil
}

func loadClubsAndFormat(clubsPath, formatPath string) ([]*draw.Club, tournament.Format, error) {
	if clubsPath == "" {
		return nil, tournament.Format{}, fmt.Errorf("--clubs is required")
	}
	clubs, err := loader.Clubs(clubsPath)
	if err != nil {
		return nil, tournament.Format{}, err
	}
	format := tournament.Default()
	if formatPath != "" {
		format, err = loader.Format(formatPath)
		if err != nil {
			return nil, tournament.Format{}, err
		}
	}
	return clubs, format, nil
}

func logReport(report validate.Report) {
	for _, e := range report.Errors {
		logger.Error("draw error", "error", e)
	}
	for _, w := range report.Warnings {
		logger.Warn("draw warning", "warning", w)
	}
}

// runStore handles config loading, DB connection, and context cancellation.
func runStore(fn func(ctx context.Context, cfg *config.Config, pool *db.Pool) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, cfg, pool)
}
