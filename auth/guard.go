package auth

import (
	"sync"

	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/models"
)

// Client-side route destinations.
const (
	LoginPath     = "/login"
	ForbiddenPath = "/forbidden"

	CustomerHomePath   = "/dashboard"
	TechnicianHomePath = "/technician"
	AdminHomePath      = "/admin"
)

// Decision is a route guard's verdict for a requested path.
type Decision int

const (
	// DecisionDefer means hydration has not finished; render a neutral
	// waiting state and do not redirect yet.
	DecisionDefer Decision = iota
	DecisionAllow
	DecisionRedirectLogin
	DecisionRedirectForbidden
)

// GuardResult carries the decision plus where to go when it is a redirect.
// ReturnPath is the originally requested path, preserved so a later login can
// resume it.
type GuardResult struct {
	Decision   Decision
	RedirectTo string
	ReturnPath string
}

// RequireAuth gates a path on having a signed-in session. While the session
// is still loading the guard defers, which prevents a flash-redirect to login
// during hydration.
func RequireAuth(s Snapshot, requestedPath string) GuardResult {
	if s.Loading {
		return GuardResult{Decision: DecisionDefer}
	}
	if !s.Authenticated {
		return GuardResult{
			Decision:   DecisionRedirectLogin,
			RedirectTo: LoginPath,
			ReturnPath: requestedPath,
		}
	}
	return GuardResult{Decision: DecisionAllow}
}

// RequireRole gates a path on both authentication and role membership. The
// authentication check always runs first; an authenticated but
// under-privileged session goes to the forbidden destination, never to login.
func RequireRole(s Snapshot, requestedPath string, allowed ...models.Role) GuardResult {
	if res := RequireAuth(s, requestedPath); res.Decision != DecisionAllow {
		return res
	}
	for _, role := range allowed {
		if s.Role == role {
			return GuardResult{Decision: DecisionAllow}
		}
	}
	return GuardResult{
		Decision:   DecisionRedirectForbidden,
		RedirectTo: ForbiddenPath,
	}
}

// DefaultLanding is where a role lands after login when no return path is
// pending.
func DefaultLanding(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return AdminHomePath
	case models.RoleTechnician:
		return TechnicianHomePath
	default:
		return CustomerHomePath
	}
}

// Navigator remembers the path a guard bounced the user away from, so that a
// successful login can return there instead of the role's default landing.
type Navigator struct {
	mu            sync.Mutex
	pendingReturn string
}

func NewNavigator() *Navigator {
	return &Navigator{}
}

// Record stores a guard's redirect-to-login result; other decisions are
// ignored.
func (n *Navigator) Record(res GuardResult) {
	if res.Decision != DecisionRedirectLogin || res.ReturnPath == "" {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pendingReturn = res.ReturnPath
}

// PostLoginDestination resolves where to go after a successful login and
// clears the pending return path.
func (n *Navigator) PostLoginDestination(role models.Role) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.pendingReturn != "" {
		dest := n.pendingReturn
		n.pendingReturn = ""
		return dest
	}
	return DefaultLanding(role)
}
