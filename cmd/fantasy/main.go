// Command fantasy is the snapshot pipeline CLI.
//
// Usage:
//
//	fantasy snapshot                  # prefetch today's snapshots, all feeds
//	fantasy snapshot rider weekend    # prefetch a subset
//	fantasy show riders stats         # render a view as a table
//	fantasy show weekends events --limit 20
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fantasymotogp/fantasy-data/internal/config"
	"github.com/fantasymotogp/fantasy-data/internal/dataset"
	"github.com/fantasymotogp/fantasy-data/internal/snapshot"
	"github.com/fantasymotogp/fantasy-data/internal/table"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "fantasy",
		Short: "Fantasy MotoGP snapshot pipeline CLI",
	}

	root.AddCommand(snapshotCmd())
	root.AddCommand(showCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// snapshot command
// --------------------------------------------------------------------------

func snapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot [dataset...]",
		Short: "Fetch today's snapshots for the given datasets (default: all)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			datasets := args
			if len(datasets) == 0 {
				datasets = config.Datasets
			}

			client := snapshot.NewClient(cfg.FetchRequestsPerMinute, logger)
			store := snapshot.New(cfg.SnapshotDir, client, logger)

			ctx := cmd.Context()
			start := time.Now()
			for _, ds := range datasets {
				endpoint, err := cfg.EndpointFor(ds)
				if err != nil {
					return err
				}
				if _, err := store.Get(ctx, endpoint, ds); err != nil {
					return fmt.Errorf("snapshot %s: %w", ds, err)
				}
			}
			logger.Info("Snapshots ready",
				"datasets", len(datasets),
				"duration", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}

// --------------------------------------------------------------------------
// show command
// --------------------------------------------------------------------------

func showCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "show <dataset> <view>",
		Short: "Render one dataset view as a table",
		Long: "Render one dataset view (info, basic, stats, history, events, all)\n" +
			"for riders, constructors, teams or weekends. 'riders full' renders\n" +
			"the cross-referenced full-data view.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client := snapshot.NewClient(cfg.FetchRequestsPerMinute, logger)
			store := snapshot.New(cfg.SnapshotDir, client, logger)
			svc := dataset.NewService(cfg, store, logger)

			t, err := resolveView(cmd.Context(), svc, args[0], args[1])
			if err != nil {
				return err
			}
			renderTable(t, limit)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum rows to render (0 = all)")
	return cmd
}

func resolveView(ctx context.Context, svc *dataset.Service, ds, view string) (*table.Table, error) {
	if ds == "riders" && view == "full" {
		return svc.RiderFullData(ctx)
	}
	return svc.ViewFor(ctx, ds, view)
}
