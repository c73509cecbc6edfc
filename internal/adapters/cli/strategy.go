package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jappenzeller/colonybot/internal/adapters/persistence"
	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/domain/economy"
	"github.com/jappenzeller/colonybot/internal/infrastructure/config"
	"github.com/jappenzeller/colonybot/internal/infrastructure/database"
)

// NewStrategyCommand creates the strategy command with subcommands
func NewStrategyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strategy",
		Short: "Inspect persisted strategic state",
	}

	cmd.AddCommand(newStrategyShowCommand())

	return cmd
}

func newStrategyShowCommand() *cobra.Command {
	var colonyName string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored strategic state for a colony",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustLoadConfig(configPath)

			db, err := database.NewConnection(&cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close(db)

			store := persistence.NewGormStrategyStore(db)
			state, err := store.Load(cmd.Context(), colonyName)
			if err != nil {
				if errors.Is(err, economy.ErrStateNotFound) {
					return fmt.Errorf("no strategic state stored for colony %s", colonyName)
				}
				return err
			}

			printStrategicState(state)
			return nil
		},
	}

	cmd.Flags().StringVar(&colonyName, "colony", "W1N1", "Colony name")

	return cmd
}

func printStrategicState(state *economy.StrategicState) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "Colony:\t%s\n", state.Colony)
	fmt.Fprintf(w, "Updated:\ttick %s\n", humanize.Comma(state.UpdatedTick))
	fmt.Fprintf(w, "Phase:\t%s\n", state.Phase)
	if state.Bottleneck != economy.BottleneckNone {
		fmt.Fprintf(w, "Bottleneck:\t%s\n", state.Bottleneck)
	}
	fmt.Fprintf(w, "Income:\t%s / %s per tick\n",
		humanize.FtoaWithDigits(state.Budget.IncomePerTick, 1),
		humanize.FtoaWithDigits(state.Budget.MaxIncomePerTick, 1))

	a := state.Budget.Allocations
	fmt.Fprintf(w, "Allocations:\tspawn %d%%, upgrade %d%%, build %d%%, repair %d%%, reserve %d%%\n",
		a.Spawn, a.Upgrade, a.Build, a.Repair, a.Reserve)

	if state.Transition.InTransition {
		fmt.Fprintf(w, "Capacity transition:\t%d -> %d (eta %s ticks)\n",
			state.Transition.CurrentCapacity, state.Transition.FutureCapacity,
			humanize.FtoaWithDigits(state.Transition.EtaTicks, 0))
	}

	fmt.Fprintln(w, "Workforce targets:")
	for _, role := range colony.AllRoles() {
		target := state.Workforce.Targets[role]
		if target == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s:\t%d (gap %+d)\n", role, target, state.Workforce.Gap(role))
	}

	for _, rec := range state.Recommendations {
		fmt.Fprintf(w, "Note:\t%s\n", rec)
	}
	w.Flush()
}
