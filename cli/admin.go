package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/api"
	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/models"

	"github.com/spf13/cobra"
)

func newServicesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "services",
		Short:   "List services",
		PreRunE: app.guard("/services"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, err := app.API.ListServices(cmd.Context())
			if err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			tw := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tMINUTES\tPRICE\tACTIVE")
			for _, s := range services {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f\t%t\n", s.ID, s.Name, s.DurationMinutes, s.Price, s.Active)
			}
			return tw.Flush()
		},
	}

	var name string
	var minutes int
	var price float64

	create := &cobra.Command{
		Use:     "create",
		Short:   "Create a service",
		PreRunE: app.guard("/admin/services", models.RoleAdmin),
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.API.CreateService(cmd.Context(), models.Service{
				Name:            name,
				DurationMinutes: minutes,
				Price:           price,
				Active:          true,
			})
			if err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			app.Toasts.Success("Service created.", app.ToastDuration)
			fmt.Fprintln(app.Out, svc.ID)
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "service name")
	create.Flags().IntVar(&minutes, "minutes", 60, "duration in minutes")
	create.Flags().Float64Var(&price, "price", 0, "price")

	del := &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a service",
		Args:    cobra.ExactArgs(1),
		PreRunE: app.guard("/admin/services", models.RoleAdmin),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.API.DeleteService(cmd.Context(), args[0]); err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			app.Toasts.Success("Service deleted.", app.ToastDuration)
			return nil
		},
	}

	cmd.AddCommand(create, del)
	return cmd
}

func newTechniciansCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "technicians",
		Short:   "List technicians",
		PreRunE: app.guard("/technicians"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			technicians, err := app.API.ListTechnicians(cmd.Context())
			if err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			tw := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSPECIALTIES\tACTIVE")
			for _, t := range technicians {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", t.ID, t.FullName, strings.Join(t.Specialties, ","), t.Active)
			}
			return tw.Flush()
		},
	}

	var name, email string

	create := &cobra.Command{
		Use:     "create",
		Short:   "Add a technician",
		PreRunE: app.guard("/admin/technicians", models.RoleAdmin),
		RunE: func(cmd *cobra.Command, _ []string) error {
			tech, err := app.API.CreateTechnician(cmd.Context(), models.Technician{
				FullName: name,
				Email:    email,
				Active:   true,
			})
			if err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			app.Toasts.Success("Technician added.", app.ToastDuration)
			fmt.Fprintln(app.Out, tech.ID)
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "full name")
	create.Flags().StringVar(&email, "email", "", "email")

	del := &cobra.Command{
		Use:     "delete <id>",
		Short:   "Remove a technician",
		Args:    cobra.ExactArgs(1),
		PreRunE: app.guard("/admin/technicians", models.RoleAdmin),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.API.DeleteTechnician(cmd.Context(), args[0]); err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			app.Toasts.Success("Technician removed.", app.ToastDuration)
			return nil
		},
	}

	cmd.AddCommand(create, del)
	return cmd
}

func newResourcesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "resources",
		Short:   "List rooms and equipment",
		PreRunE: app.guard("/admin/resources", models.RoleAdmin),
		RunE: func(cmd *cobra.Command, _ []string) error {
			resources, err := app.API.ListResources(cmd.Context())
			if err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			tw := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tTYPE\tCAPACITY")
			for _, r := range resources {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", r.ID, r.Name, r.Type, r.Capacity)
			}
			return tw.Flush()
		},
	}

	var name, resourceType string
	var capacity int

	create := &cobra.Command{
		Use:     "create",
		Short:   "Add a resource",
		PreRunE: app.guard("/admin/resources", models.RoleAdmin),
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := app.API.CreateResource(cmd.Context(), models.Resource{
				Name:     name,
				Type:     resourceType,
				Capacity: capacity,
			})
			if err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			app.Toasts.Success("Resource added.", app.ToastDuration)
			fmt.Fprintln(app.Out, res.ID)
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "resource name")
	create.Flags().StringVar(&resourceType, "type", "room", "resource type")
	create.Flags().IntVar(&capacity, "capacity", 1, "capacity")

	del := &cobra.Command{
		Use:     "delete <id>",
		Short:   "Remove a resource",
		Args:    cobra.ExactArgs(1),
		PreRunE: app.guard("/admin/resources", models.RoleAdmin),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.API.DeleteResource(cmd.Context(), args[0]); err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			app.Toasts.Success("Resource removed.", app.ToastDuration)
			return nil
		},
	}

	cmd.AddCommand(create, del)
	return cmd
}

func newCustomersCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Short:   "List customers",
		PreRunE: app.guard("/admin/customers", models.RoleAdmin),
		RunE: func(cmd *cobra.Command, _ []string) error {
			customers, err := app.API.ListCustomers(cmd.Context())
			if err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			tw := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE")
			for _, c := range customers {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.FullName, c.Email, c.Phone)
			}
			return tw.Flush()
		},
	}

	del := &cobra.Command{
		Use:     "delete <id>",
		Short:   "Remove a customer",
		Args:    cobra.ExactArgs(1),
		PreRunE: app.guard("/admin/customers", models.RoleAdmin),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.API.DeleteCustomer(cmd.Context(), args[0]); err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			app.Toasts.Success("Customer removed.", app.ToastDuration)
			return nil
		},
	}

	cmd.AddCommand(del)
	return cmd
}
