package cli

import (
	"fmt"

	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/api"
	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/models"
	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/validate"

	"github.com/spf13/cobra"
)

func newLoginCommand(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.Session.Hydrate()

			if errs := validate.LoginForm(email, password); !errs.Valid() {
				for field, msg := range errs {
					fmt.Fprintf(app.Out, "%s: %s\n", field, msg)
				}
				return fmt.Errorf("fix the highlighted fields and retry")
			}

			token, err := app.API.Authenticate(cmd.Context(), models.Credentials{
				Email:    email,
				Password: password,
			})
			if err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}

			if err := app.Session.Login(token); err != nil {
				app.Toasts.Error("The received session token is not usable.", app.ToastDuration)
				return err
			}

			snap := app.Session.Snapshot()
			dest := app.Nav.PostLoginDestination(snap.Role)
			app.Toasts.Success("Signed in as "+snap.Identity.Email, app.ToastDuration)
			fmt.Fprintf(app.Out, "Signed in as %s (%s) -> %s\n", snap.Identity.Email, snap.Role, dest)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and drop the stored token",
		RunE: func(_ *cobra.Command, _ []string) error {
			app.Session.Logout()
			fmt.Fprintln(app.Out, "Signed out.")
			return nil
		},
	}
}

func newRegisterCommand(app *App) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if errs := validate.SignupForm(name, email, password); !errs.Valid() {
				for field, msg := range errs {
					fmt.Fprintf(app.Out, "%s: %s\n", field, msg)
				}
				return fmt.Errorf("fix the highlighted fields and retry")
			}

			err := app.API.Register(cmd.Context(), models.Registration{
				FullName: name,
				Email:    email,
				Password: password,
			})
			if err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			app.Toasts.Info("Account created. Check your inbox for the verification email.", app.ToastDuration)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newVerifyEmailCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "verify-email <token>",
		Short: "Confirm a signup with the mailed token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.API.VerifyEmail(cmd.Context(), args[0]); err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			app.Toasts.Success("Email verified. You can sign in now.", app.ToastDuration)
			return nil
		},
	}
}

func newForgotPasswordCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "forgot-password <email>",
		Short: "Request a password reset email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validate.Email(args[0]) {
				return fmt.Errorf("enter a valid email address")
			}
			if err := app.API.RequestPasswordReset(cmd.Context(), args[0]); err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			app.Toasts.Info("If that account exists, a reset email is on its way.", app.ToastDuration)
			return nil
		},
	}
}

func newResetPasswordCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password <token> <new-password>",
		Short: "Complete a password reset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validate.Password(args[1]) {
				return fmt.Errorf("password must be at least 8 characters")
			}
			if err := app.API.ResetPassword(cmd.Context(), args[0], args[1]); err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			app.Toasts.Success("Password updated. Sign in with the new one.", app.ToastDuration)
			return nil
		},
	}
}

func newWhoamiCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(_ *cobra.Command, _ []string) error {
			app.Session.Hydrate()
			snap := app.Session.Snapshot()
			if !snap.Authenticated {
				fmt.Fprintln(app.Out, "Signed out.")
				return nil
			}
			fmt.Fprintf(app.Out, "%s (%s)\n", snap.Identity.Email, snap.Role)
			return nil
		},
	}
}

func newProfileCommand(app *App) *cobra.Command {
	var newName string

	cmd := &cobra.Command{
		Use:     "profile",
		Short:   "Show or update your profile",
		PreRunE: app.guard("/profile"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if newName != "" {
				profile, err := app.API.UpdateCurrentUserProfile(cmd.Context(), newName)
				if err != nil {
					app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
					return err
				}
				app.Toasts.Success("Profile updated.", app.ToastDuration)
				fmt.Fprintf(app.Out, "%s <%s>\n", profile.FullName, profile.Email)
				return nil
			}

			profile, err := app.API.FetchCurrentUserProfile(cmd.Context())
			if err != nil {
				app.Toasts.Error(api.UserMessage(err), app.ToastDuration)
				return err
			}
			fmt.Fprintf(app.Out, "%s <%s> role=%s\n", profile.FullName, profile.Email, profile.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&newName, "name", "", "set a new display name")
	return cmd
}
