package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/api"
	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/booking"
	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/models"

	"github.com/spf13/cobra"
)

func newBookCommand(app *App) *cobra.Command {
	var serviceID, date, slot, technicianID string
	var autoAssign, confirm bool

	cmd := &cobra.Command{
		Use:     "book",
		Short:   "Walk the booking flow: date, slot, technician, confirm",
		PreRunE: app.guard("/book", models.RoleCustomer, models.RoleAdmin),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if serviceID == "" {
				services, err := app.API.ListServices(cmd.Context())
				if err != nil {
					app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
					return err
				}
				tw := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tMINUTES\tPRICE")
				for _, s := range services {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f\n", s.ID, s.Name, s.DurationMinutes, s.Price)
				}
				tw.Flush()
				fmt.Fprintln(app.Out, "Pick one with --service.")
				return nil
			}

			w := booking.NewWizard(app.API, app.Logger)
			if err := w.SelectService(models.Service{ID: serviceID}); err != nil {
				return err
			}

			if date == "" {
				fmt.Fprintln(app.Out, "Pick a date with --date YYYY-MM-DD.")
				return nil
			}
			if err := w.SelectDate(cmd.Context(), date); err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			if slot == "" {
				for _, s := range w.Draft().AvailableSlots {
					fmt.Fprintln(app.Out, s)
				}
				fmt.Fprintln(app.Out, "Pick a slot with --slot HH:MM.")
				return nil
			}
			if err := w.SelectSlot(cmd.Context(), slot); err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}

			switch {
			case technicianID != "":
				if err := w.SelectTechnician(technicianID); err != nil {
					return err
				}
			case autoAssign:
				if err := w.AutoAssign(); err != nil {
					return err
				}
			default:
				for _, t := range w.Draft().AvailableTechnicians {
					fmt.Fprintf(app.Out, "%s\t%s\n", t.ID, t.FullName)
				}
				fmt.Fprintln(app.Out, "Pick one with --technician, or pass --auto.")
				return nil
			}

			if !confirm {
				fmt.Fprintln(app.Out, "Re-run with --confirm to submit.")
				return nil
			}

			appt, err := w.Confirm(cmd.Context())
			if err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			app.Toasts.Success("Appointment booked.", app.ToastDuration)
			fmt.Fprintf(app.Out, "Booked %s starting %s\n", appt.ID, appt.StartTime)
			return nil
		},
	}

	cmd.Flags().StringVar(&serviceID, "service", "", "service id")
	cmd.Flags().StringVar(&date, "date", "", "calendar date YYYY-MM-DD")
	cmd.Flags().StringVar(&slot, "slot", "", "time of day HH:MM")
	cmd.Flags().StringVar(&technicianID, "technician", "", "technician id")
	cmd.Flags().BoolVar(&autoAssign, "auto", false, "let the backend pick a technician")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "submit the booking")
	return cmd
}

func newAppointmentsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointments",
		Short:   "Manage your appointments",
		PreRunE: app.guard("/appointments"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			appts, err := app.API.ListMyAppointments(cmd.Context())
			if err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			tw := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSERVICE\tSTART\tSTATUS")
			for _, a := range appts {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.ID, a.ServiceID, a.StartTime.Format("2006-01-02 15:04"), a.Status)
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(newCancelAppointmentCommand(app), newRescheduleCommand(app))
	return cmd
}

func newCancelAppointmentCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "cancel <appointment-id>",
		Short:   "Cancel an appointment",
		Args:    cobra.ExactArgs(1),
		PreRunE: app.guard("/appointments"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.API.CancelBooking(cmd.Context(), args[0]); err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			app.Toasts.Success("Appointment cancelled.", app.ToastDuration)
			return nil
		},
	}
}

func newRescheduleCommand(app *App) *cobra.Command {
	var date, slot string
	var confirm bool

	cmd := &cobra.Command{
		Use:     "reschedule <appointment-id>",
		Short:   "Move an appointment to a new time",
		Args:    cobra.ExactArgs(1),
		PreRunE: app.guard("/appointments"),
		RunE: func(cmd *cobra.Command, args []string) error {
			appts, err := app.API.ListMyAppointments(cmd.Context())
			if err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			var current *models.Appointment
			for i := range appts {
				if appts[i].ID == args[0] {
					current = &appts[i]
					break
				}
			}
			if current == nil {
				return fmt.Errorf("appointment %s not found", args[0])
			}

			w := booking.NewRescheduleWizard(app.API, app.Logger, *current)
			if date == "" {
				fmt.Fprintln(app.Out, "Pick a date with --date YYYY-MM-DD.")
				return nil
			}
			if err := w.SelectDate(cmd.Context(), date); err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			if slot == "" {
				for _, s := range w.Draft().AvailableSlots {
					fmt.Fprintln(app.Out, s)
				}
				fmt.Fprintln(app.Out, "Pick a slot with --slot HH:MM.")
				return nil
			}
			if err := w.SelectSlot(cmd.Context(), slot); err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			if err := w.AutoAssign(); err != nil {
				return err
			}
			if !confirm {
				fmt.Fprintln(app.Out, "Re-run with --confirm to submit.")
				return nil
			}

			appt, err := w.Confirm(cmd.Context())
			if errors.Is(err, booking.ErrNoChange) {
				app.Toasts.Info("That is already the appointment's time; nothing to change.", app.ToastDuration)
				return nil
			}
			if err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			app.Toasts.Success("Appointment rescheduled.", app.ToastDuration)
			fmt.Fprintf(app.Out, "Now starting %s\n", appt.StartTime)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "calendar date YYYY-MM-DD")
	cmd.Flags().StringVar(&slot, "slot", "", "time of day HH:MM")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "submit the change")
	return cmd
}
