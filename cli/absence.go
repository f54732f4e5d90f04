package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/api"
	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/models"
	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/workflow"

	"github.com/spf13/cobra"
)

func newAbsenceCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "absence",
		Short: "Time-off requests",
	}

	var start, end, reason string

	submit := &cobra.Command{
		Use:     "submit",
		Short:   "File a time-off request",
		PreRunE: app.guard("/absence", models.RoleTechnician),
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := app.API.SubmitAbsenceRequest(cmd.Context(), models.AbsenceInput{
				StartDate: start,
				EndDate:   end,
				Reason:    reason,
			})
			if err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			app.Toasts.Success("Request submitted for review.", app.ToastDuration)
			fmt.Fprintln(app.Out, req.ID)
			return nil
		},
	}
	submit.Flags().StringVar(&start, "start", "", "first day off YYYY-MM-DD")
	submit.Flags().StringVar(&end, "end", "", "last day off YYYY-MM-DD")
	submit.Flags().StringVar(&reason, "reason", "", "optional reason")

	list := &cobra.Command{
		Use:     "list",
		Short:   "List time-off requests",
		PreRunE: app.guard("/absence", models.RoleTechnician, models.RoleAdmin),
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap := app.Session.Snapshot()

			var requests []models.AbsenceRequest
			var err error
			if snap.Role == models.RoleAdmin {
				requests, err = app.API.ListAbsenceRequests(cmd.Context())
			} else {
				requests, err = app.API.ListMyAbsenceRequests(cmd.Context())
			}
			if err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}

			tw := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTECHNICIAN\tFROM\tTO\tSTATUS")
			for _, r := range requests {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.TechnicianID, r.StartDate, r.EndDate, r.Status)
			}
			return tw.Flush()
		},
	}

	review := func(use, short string, act func(context.Context, *workflow.AbsenceReview, string) error) *cobra.Command {
		return &cobra.Command{
			Use:     use,
			Short:   short,
			Args:    cobra.ExactArgs(1),
			PreRunE: app.guard("/admin/absence", models.RoleAdmin),
			RunE: func(cmd *cobra.Command, args []string) error {
				rev := workflow.NewAbsenceReview(app.API, app.Logger)
				if err := rev.Load(cmd.Context()); err != nil {
					app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
					return err
				}
				if err := act(cmd.Context(), rev, args[0]); err != nil {
					app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
					return err
				}
				app.Toasts.Success("Request updated.", app.ToastDuration)
				return nil
			},
		}
	}

	approve := review("approve <id>", "Approve a request", func(ctx context.Context, rev *workflow.AbsenceReview, id string) error {
		return rev.Approve(ctx, id)
	})
	reject := review("reject <id>", "Reject a request", func(ctx context.Context, rev *workflow.AbsenceReview, id string) error {
		return rev.Reject(ctx, id)
	})

	cmd.AddCommand(submit, list, approve, reject)
	return cmd
}
