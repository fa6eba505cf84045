package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/courseplan/internal/app"
	"github.com/alexanderramin/courseplan/internal/cli/formatter"
)

func newHistoryCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved plans",
	}
	cmd.AddCommand(newHistoryListCmd(a), newHistoryShowCmd(a))
	return cmd
}

func newHistoryListCmd(a *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved plans, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := a.History.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanHistory(plans, a.now()))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of plans to list")
	return cmd
}

func newHistoryShowCmd(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <plan-id>",
		Short: "Show a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			saved, err := a.History.Get(ctx, args[0])
			if err != nil {
				return err
			}
			req, resp, err := app.DecodeSavedPlan(saved)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), struct {
					Request  *app.PlanRequest  `json:"request"`
					Response *app.PlanResponse `json:"response"`
				}{req, resp})
			}
			courses, err := a.Catalog.List(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(resp, courses))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the stored request and response as JSON")
	return cmd
}
