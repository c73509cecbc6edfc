package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jappenzeller/colonybot/internal/domain/colony"
	"github.com/jappenzeller/colonybot/internal/infrastructure/config"
	"github.com/jappenzeller/colonybot/internal/simulation"
)

// NewSimulateCommand creates the simulate command
func NewSimulateCommand() *cobra.Command {
	var (
		ticks   int
		sources int
		threat  float64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the decision pipeline against a simulated colony",
		Long: `Run the full scheduler and coordinator against a deterministic
simulated colony for many ticks and report how the workforce developed.

Useful for checking that a configuration bootstraps from an empty colony
without stalling.

Examples:
  colonybot simulate --ticks 2000
  colonybot simulate --ticks 5000 --sources 3 --threat 150`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfigOrDefault(configPath)

			world := simulation.NewWorld("SIM", sources)
			if threat > 0 {
				world.SetHomeThreat(threat)
			}

			harness := simulation.NewHarness(cfg, world)
			report, err := harness.Run(cmd.Context(), ticks)
			if err != nil {
				return err
			}

			printReport(report)
			return nil
		},
	}

	cmd.Flags().IntVar(&ticks, "ticks", 2000, "Number of ticks to simulate")
	cmd.Flags().IntVar(&sources, "sources", 2, "Energy sources in the colony")
	cmd.Flags().Float64Var(&threat, "threat", 0, "Constant hostile DPS at home")

	return cmd
}

func printReport(report *simulation.RunReport) {
	final := report.FinalState

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "Ticks simulated:\t%s\n", humanize.Comma(int64(report.Ticks)))
	fmt.Fprintf(w, "Units spawned:\t%d\n", report.Spawns)
	fmt.Fprintf(w, "Longest dead streak:\t%d ticks\n", report.MaxDeadStreak)
	if final != nil {
		fmt.Fprintf(w, "Final level:\t%d\n", final.Level)
		fmt.Fprintf(w, "Final energy:\t%s / %s\n",
			humanize.Comma(int64(final.EnergyAvailable)),
			humanize.Comma(int64(final.EnergyCapacity)))
		fmt.Fprintf(w, "Income:\t%s per tick\n", humanize.FtoaWithDigits(final.EnergyIncome, 1))
		for _, role := range colony.AllRoles() {
			if n := final.Count(role); n > 0 {
				fmt.Fprintf(w, "  %s:\t%d\n", role, n)
			}
		}
	}
	w.Flush()
}
