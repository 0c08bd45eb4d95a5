package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/valveplan/internal/logging"
	"github.com/katalvlaran/valveplan/reward"
	"github.com/katalvlaran/valveplan/search"
)

func newSingleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "single",
		Short: "Best plan of one agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.planner(cmd)
			if err != nil {
				return err
			}
			r, err := p.Single(cmd.Context(), a.cfg.Start, budget(cmd, a.cfg.Budget))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "start %s, budget %d: best %d\n", r.Start, r.Budget, r.Best)

			return writePlan(out, r.Plan)
		},
	}
	cmd.Flags().Int("budget", 0, "time budget in minutes (default from config, 30)")

	return cmd
}

func newDualCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dual",
		Short: "Best combined reward of two agents with disjoint activations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.planner(cmd)
			if err != nil {
				return err
			}
			r, err := p.Dual(cmd.Context(), a.cfg.Start, budget(cmd, a.cfg.DualBudget))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "start %s, budget %d each: best %d\n", r.Start, r.Budget, r.Best)
			fmt.Fprintf(out, "agent 1: %d [%s]\n", r.FirstReward, strings.Join(r.First, " "))
			fmt.Fprintf(out, "agent 2: %d [%s]\n", r.SecondReward, strings.Join(r.Second, " "))

			return nil
		},
	}
	cmd.Flags().Int("budget", 0, "time budget of each agent in minutes (default from config, 26)")

	return cmd
}

func newStartsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "starts [LOCATION...]",
		Short: "Single-agent best from several start locations, in parallel",
		Long:  "Runs an independent single-agent search from each given location, or from every location when none is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.planner(cmd)
			if err != nil {
				return err
			}
			starts := args
			if len(starts) == 0 {
				starts = p.Index().IDs
			}
			workers := a.cfg.Workers
			if cmd.Flags().Changed("workers") {
				workers, _ = cmd.Flags().GetInt("workers")
			}

			reports, err := p.EachStart(cmd.Context(), starts, budget(cmd, a.cfg.Budget), workers)
			if err != nil {
				return err
			}
			a.log.Info("multi-start done", logging.Int("starts", len(reports)), logging.Int("workers", workers))

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header([]string{"Start", "Best", "States", "Masks"})
			for _, r := range reports {
				if err = table.Append([]string{
					r.Start,
					strconv.Itoa(r.Best),
					strconv.FormatInt(r.States, 10),
					strconv.Itoa(r.Table.Len()),
				}); err != nil {
					return err
				}
			}

			return table.Render()
		},
	}
	cmd.Flags().Int("budget", 0, "time budget in minutes (default from config, 30)")
	cmd.Flags().Int("workers", 0, "parallel searches (default from config, GOMAXPROCS)")

	return cmd
}

func newTableCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Dump the best reward of every reachable activation set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.planner(cmd)
			if err != nil {
				return err
			}
			r, err := p.Single(cmd.Context(), a.cfg.Start, budget(cmd, a.cfg.DualBudget))
			if err != nil {
				return err
			}

			return writeTable(cmd, p.Index(), r.Table, top)
		},
	}
	cmd.Flags().Int("budget", 0, "time budget in minutes (default from config, 26)")
	cmd.Flags().IntVar(&top, "top", 0, "print only the N most rewarding sets (0 prints all)")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "valveplan %s (commit: %s)\n", Version, Commit)
			return err
		},
	}
}

func writePlan(out io.Writer, plan []search.Step) error {
	if len(plan) == 0 {
		return nil
	}
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Location", "Minute", "Gain"})
	for _, s := range plan {
		if err := table.Append([]string{s.ID, strconv.Itoa(s.Minute), strconv.Itoa(s.Gain)}); err != nil {
			return err
		}
	}

	return table.Render()
}

// writeTable prints masks by reward descending, mask ascending on ties.
func writeTable(cmd *cobra.Command, idx *reward.Index, t search.StateTable, top int) error {
	masks := t.Masks()
	sort.SliceStable(masks, func(i, j int) bool {
		ri, _ := t.Get(masks[i])
		rj, _ := t.Get(masks[j])
		return ri > rj
	})
	if top > 0 && top < len(masks) {
		masks = masks[:top]
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d activation sets\n", t.Len())
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header([]string{"Mask", "Locations", "Reward"})
	for _, m := range masks {
		r, _ := t.Get(m)
		if err := table.Append([]string{m.String(), strings.Join(idx.Names(m), " "), strconv.Itoa(r)}); err != nil {
			return err
		}
	}

	return table.Render()
}
