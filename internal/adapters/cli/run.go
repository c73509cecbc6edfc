package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/jappenzeller/colonybot/internal/adapters/metrics"
	"github.com/jappenzeller/colonybot/internal/adapters/persistence"
	"github.com/jappenzeller/colonybot/internal/adapters/telemetry"
	appeconomy "github.com/jappenzeller/colonybot/internal/application/economy"
	"github.com/jappenzeller/colonybot/internal/application/production"
	"github.com/jappenzeller/colonybot/internal/infrastructure/config"
	"github.com/jappenzeller/colonybot/internal/infrastructure/database"
	"github.com/jappenzeller/colonybot/internal/infrastructure/pidfile"
	"github.com/jappenzeller/colonybot/internal/simulation"
)

// NewRunCommand creates the run command that starts the colony daemon
func NewRunCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the colony daemon",
		Long: `Run the colony daemon.

The daemon drives one decision loop per configured colony at the
configured tick rate, persisting strategic state to the database and
exposing Prometheus metrics when enabled. Only one daemon may run at a
time; use --force to replace an existing instance.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustLoadConfig(configPath)

			pf := pidfile.New(cfg.Daemon.PIDFile)
			if err := pf.Acquire(); err != nil {
				if !force {
					return fmt.Errorf("%w\nUse --force to kill the existing daemon", err)
				}
				log.Println("force mode: killing existing daemon")
				if killErr := pf.KillExisting(); killErr != nil {
					return fmt.Errorf("failed to kill existing daemon: %w", killErr)
				}
				if err := pf.Acquire(); err != nil {
					return fmt.Errorf("failed to acquire PID file after kill: %w", err)
				}
			}
			defer func() {
				if err := pf.Release(); err != nil {
					log.Printf("warning: failed to release PID file: %v", err)
				}
			}()

			return runDaemon(cmd.Context(), cfg)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false,
		"Kill any existing daemon and start a new one")

	return cmd
}

// colonyLoop is one colony's decision pipeline bound to its world.
type colonyLoop struct {
	world       *simulation.World
	scheduler   *production.Scheduler
	coordinator *appeconomy.Coordinator
}

func runDaemon(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("connecting to %s database", cfg.Database.Type)
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("warning: failed to close database: %v", err)
		}
	}()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	store := persistence.NewGormStrategyStore(db)
	tracker := telemetry.NewIncomeTracker(cfg.Economy.TelemetryWindow)

	var recorder production.MetricsRecorder
	var metricsSrv *http.Server
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		recorder = metrics.NewProductionMetricsCollector(registry)

		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		metricsSrv = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Metrics.Host, cfg.Metrics.Port),
			Handler: mux,
		}
		go func() {
			log.Printf("metrics listening on http://%s%s", metricsSrv.Addr, cfg.Metrics.Path)
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("metrics server error: %v", err)
			}
		}()
	}

	loops := make([]*colonyLoop, 0, len(cfg.Daemon.Colonies))
	for _, name := range cfg.Daemon.Colonies {
		world := simulation.NewWorld(name, 2)
		loops = append(loops, &colonyLoop{
			world:       world,
			scheduler:   production.NewScheduler(cfg.Scheduler, cfg.Governor, store, world, recorder),
			coordinator: appeconomy.NewCoordinator(cfg.Economy, cfg.Scheduler, cfg.Governor, store, tracker),
		})
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.Daemon.TickRate), 1)
	log.Printf("daemon started: %d colonies at %.1f ticks/s", len(loops), cfg.Daemon.TickRate)

	for {
		if err := limiter.Wait(ctx); err != nil {
			break
		}
		for _, cl := range loops {
			snapshot := cl.world.Snapshot()
			tracker.Record(snapshot.Name, snapshot.EnergyIncome)

			if cl.coordinator.Due(snapshot.Tick) {
				strategic, err := cl.coordinator.Refresh(ctx, snapshot)
				if err != nil {
					log.Printf("[%s] strategic refresh failed: %v", snapshot.Name, err)
				} else if verbose {
					log.Printf("[%s] tick %d phase=%s units=%d energy=%d",
						snapshot.Name, snapshot.Tick, strategic.Phase,
						snapshot.TotalUnits(), snapshot.EnergyAvailable)
				}
			}

			if _, err := cl.scheduler.RunTick(ctx, snapshot); err != nil {
				log.Printf("[%s] scheduling pass failed: %v", snapshot.Name, err)
			}
			cl.world.Step()
		}
	}

	log.Println("shutting down")
	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Daemon.ShutdownTimeout)
		defer cancel()
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			log.Printf("warning: metrics server shutdown: %v", err)
		}
	}
	log.Println("daemon stopped")
	return nil
}
