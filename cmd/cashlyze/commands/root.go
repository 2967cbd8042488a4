package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cashlyze/cashlyze/internal/config"
	"github.com/cashlyze/cashlyze/internal/database"
	"github.com/cashlyze/cashlyze/internal/database/repository"
	"github.com/cashlyze/cashlyze/internal/logging"
	"github.com/cashlyze/cashlyze/internal/platform"
	"github.com/cashlyze/cashlyze/internal/tui"
)

var (
	configPath  string
	noAltScreen bool
)

func Execute() error {
	root := &cobra.Command{
		Use:           "cashlyze",
		Short:         "Expense dashboard for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				return os.Setenv("CASHLYZE_CONFIG", configPath)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/cashlyze/config.toml)")
	root.Flags().BoolVar(&noAltScreen, "no-alt-screen", false, "render inline instead of in the alternate screen")

	root.AddCommand(versionCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, closer, err := logging.OpenFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warn: logging disabled: %v\n", err)
	}
	defer closer.Close()
	logging.SetDefault(log)
	appLog := log.WithComponent(logging.ComponentApp)

	// shown while the store is prepared; erased right before the renderer starts
	overlay := platform.NewTerminalOverlay(os.Stderr)
	if err := overlay.Show("Cashlyze is starting…"); err != nil {
		appLog.Debug("show overlay failed", "error", err)
	}

	db, err := database.Open(ctx, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.Database.DSN); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := database.SeedMockData(ctx, db); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	app := tui.New(ctx, cfg, tui.Deps{
		Repos: tui.Repos{
			Dashboard:    repository.NewDashboardRepo(db),
			Categories:   repository.NewCategoryRepo(db),
			Transactions: repository.NewTransactionRepo(db),
		},
		Lifecycle: platform.NewLifecycle(log),
		Overlay:   overlay,
		Logger:    log,
	})
	defer app.Close()

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithReportFocus()}
	if !noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	appLog.Info("starting", "dsn", cfg.Database.DSN)
	if err := overlay.Handoff(); err != nil {
		appLog.Debug("overlay handoff failed", "error", err)
	}
	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
