package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/courseplan/internal/app"
	"github.com/alexanderramin/courseplan/internal/cli/formatter"
)

func newPlanCmd(a *App) *cobra.Command {
	var (
		wish        []string
		completed   []string
		minCredits  int
		maxCredits  int
		save        bool
		asJSON      bool
		interactive bool
		scoring     scoringFlags
	)

	cmd := &cobra.Command{
		Use:   "plan [COURSE...]",
		Short: "Generate the best conflict-free schedule for a wishlist",
		Example: `  courseplan plan --wish CS101,CS201 --completed CS100 --min 12 --max 16
  courseplan plan CS101 CS201 --weight-days 8 --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()

			req := buildPlanRequest(splitCodes(append(wish, args...)...), splitCodes(completed...))
			if flags.Changed("min") || flags.Changed("max") {
				req.Constraints = &app.ConstraintsInput{}
				if flags.Changed("min") {
					req.Constraints.MinCredits = intPtr(minCredits)
				}
				if flags.Changed("max") {
					req.Constraints.MaxCredits = intPtr(maxCredits)
				}
			}
			req.Scoring = scoring.options(flags)
			req.Save = save

			if interactive {
				if !a.interactive() {
					return fmt.Errorf("--interactive needs a terminal")
				}
				if err := runPlanForm(ctx, a, &req, cmd.ErrOrStderr()); err != nil {
					return err
				}
			}
			if len(req.Wishlist) == 0 {
				return fmt.Errorf("no courses requested; pass --wish or course codes")
			}

			stop := func() {}
			if a.interactive() && !asJSON {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Searching schedules...")
			}
			resp, err := a.Plans.Generate(ctx, req)
			stop()
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			courses, err := a.Catalog.List(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(resp, courses))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&wish, "wish", "w", nil, "Wishlist course codes, in priority order")
	f.StringSliceVarP(&completed, "completed", "c", nil, "Completed course codes")
	f.IntVar(&minCredits, "min", 0, "Minimum credits (default from config)")
	f.IntVar(&maxCredits, "max", 0, "Maximum credits (default from config)")
	f.BoolVar(&save, "save", false, "Store the plan in history")
	f.BoolVar(&asJSON, "json", false, "Print the plan as JSON")
	f.BoolVarP(&interactive, "interactive", "i", false, "Pick courses and credits in a form")
	scoring.register(f)

	return cmd
}

func buildPlanRequest(wishlist, completed []string) app.PlanRequest {
	if completed == nil {
		completed = []string{}
	}
	return app.NewPlanRequest(wishlist, completed)
}

// runPlanForm lets the user edit req in a huh form, starting from whatever
// the flags already set.
func runPlanForm(ctx context.Context, a *App, req *app.PlanRequest, out io.Writer) error {
	courses, err := a.Catalog.List(ctx)
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		return fmt.Errorf("catalog is empty; import one with: courseplan catalog import <file>")
	}

	planner := a.config().Planner
	v := planFormValues{
		Wishlist:  req.Wishlist,
		Completed: req.Completed,
		MinText:   strconv.Itoa(planner.MinCredits),
		MaxText:   strconv.Itoa(planner.MaxCredits),
		Save:      req.Save,
	}
	if req.Constraints != nil && req.Constraints.MinCredits != nil {
		v.MinText = strconv.Itoa(*req.Constraints.MinCredits)
	}
	if req.Constraints != nil && req.Constraints.MaxCredits != nil {
		v.MaxText = strconv.Itoa(*req.Constraints.MaxCredits)
	}

	if err := newPlanForm(courses, &v, out).RunWithContext(ctx); err != nil {
		return err
	}

	minCredits, _ := strconv.Atoi(v.MinText)
	maxCredits, _ := strconv.Atoi(v.MaxText)
	req.Wishlist = v.Wishlist
	req.Completed = v.Completed
	if req.Completed == nil {
		req.Completed = []string{}
	}
	req.Constraints = &app.ConstraintsInput{MinCredits: intPtr(minCredits), MaxCredits: intPtr(maxCredits)}
	req.Save = v.Save
	return nil
}
