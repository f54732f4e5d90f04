// Package cli is the terminal surface of the client: each command plays the
// part of a page, with the same guard decisions a routed page would make.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/api"
	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/auth"
	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/models"
	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/toast"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App bundles the shared client state every command works against.
type App struct {
	Session       *auth.Session
	Nav           *auth.Navigator
	API           *api.Client
	Toasts        *toast.Channel
	Logger        *zap.Logger
	Out           io.Writer
	ToastDuration time.Duration
}

// NewRootCommand assembles the full command tree.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "auractl",
		Short:         "AuraControl spa booking client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCommand(app),
		newLogoutCommand(app),
		newRegisterCommand(app),
		newVerifyEmailCommand(app),
		newForgotPasswordCommand(app),
		newResetPasswordCommand(app),
		newWhoamiCommand(app),
		newProfileCommand(app),
		newBookCommand(app),
		newAppointmentsCommand(app),
		newServicesCommand(app),
		newTechniciansCommand(app),
		newResourcesCommand(app),
		newCustomersCommand(app),
		newAbsenceCommand(app),
	)
	return root
}

// guard adapts the route guards to command pre-runs. The requested path is
// the page this command stands in for; a login redirect records it so the
// next login can land there.
func (a *App) guard(requestedPath string, roles ...models.Role) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		a.Session.Hydrate()
		snap := a.Session.Snapshot()

		var res auth.GuardResult
		if len(roles) == 0 {
			res = auth.RequireAuth(snap, requestedPath)
		} else {
			res = auth.RequireRole(snap, requestedPath, roles...)
		}

		switch res.Decision {
		case auth.DecisionAllow:
			return nil
		case auth.DecisionRedirectLogin:
			a.Nav.Record(res)
			return fmt.Errorf("you are signed out; run 'auractl login' first")
		case auth.DecisionRedirectForbidden:
			return fmt.Errorf("your role does not have access to %s", requestedPath)
		default:
			return fmt.Errorf("session is still loading, try again")
		}
	}
}

// RenderToasts prints every new notification once. Returns the unsubscribe.
func (a *App) RenderToasts() func() {
	printed := make(map[string]bool)
	return a.Toasts.Subscribe(func(active []toast.Toast) {
		for _, t := range active {
			if printed[t.ID] {
				continue
			}
			printed[t.ID] = true
			fmt.Fprintf(a.Out, "[%s] %s\n", t.Level, t.Message)
		}
	})
}
