package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"content-analytics/pkg/cache"
	"content-analytics/pkg/config"
	"content-analytics/pkg/database"
	"content-analytics/pkg/logger"
	"content-analytics/pkg/seed"

	"github.com/spf13/cobra"
)

type options struct {
	profilePath string
	seed        uint64
	now         string
	jsonOutput  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Rebuild the analytics dataset",
		Long: `Drop and recreate the analytics schema, then fill it with a freshly
generated dataset of authors, users, posts, post metadata and engagements.

The rebuild runs in a single transaction: on failure the previous dataset
stays in place. Cached report results are invalidated afterwards.

Examples:
  seed                                   # Default profile, random seed
  seed --seed 42 --now 2024-06-15T12:00:00Z
  seed --config profile.yaml --json      # Custom profile, print summary`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.profilePath, "config", "c", "", "Path to a YAML generation profile")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Random seed (0 derives one from the reference time)")
	cmd.Flags().StringVar(&opts.now, "now", "", "Reference time in RFC3339 (default: current time)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the rebuild summary as JSON")

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *options, out io.Writer) error {
	profile, err := loadProfile(opts.profilePath)
	if err != nil {
		return fmt.Errorf("invalid generation profile: %w", err)
	}

	now, err := parseNow(opts.now, time.Now)
	if err != nil {
		return fmt.Errorf("invalid --now: %w", err)
	}
	seedVal := resolveSeed(opts.seed, now)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return err
	}
	defer database.Close(db)

	log.Info("Seeding with seed=%d now=%s", seedVal, now.Format(time.RFC3339Nano))
	summary, err := seed.Rebuild(ctx, db, seed.NewSeededGenerator(seedVal, now, profile), log)
	if err != nil {
		log.Error("Failed to seed database: %v", err)
		return err
	}

	invalidateReports(ctx, cfg, log)

	log.Info("Database seeded successfully! run=%s authors=%d users=%d posts=%d engagements=%d",
		summary.RunID, summary.Authors, summary.Users, summary.Posts, summary.Engagements)

	if opts.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	return nil
}

func loadProfile(path string) (seed.Profile, error) {
	if path == "" {
		return seed.DefaultProfile(), nil
	}
	return seed.LoadProfile(path)
}

func parseNow(value string, clock func() time.Time) (time.Time, error) {
	if value == "" {
		return clock().UTC(), nil
	}
	now, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %w", value, err)
	}
	return now.UTC(), nil
}

func resolveSeed(value uint64, now time.Time) uint64 {
	if value != 0 {
		return value
	}
	return uint64(now.UnixNano())
}

// invalidateReports drops cached report results so the service recomputes
// them from the new dataset. Redis being unreachable is not an error here.
func invalidateReports(ctx context.Context, cfg *config.Config, log *logger.Logger) {
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Skipping cache invalidation: %v", err)
		return
	}
	defer redisClient.Close()

	deleted, err := cache.DeleteByPattern(ctx, redisClient, cache.AnalyticsKeyPrefix+"*")
	if err != nil {
		log.Warn("Failed to invalidate cached reports: %v", err)
		return
	}
	log.Info("Invalidated %d cached reports.", deleted)
}
