// Package guard decides whether a view may render for the current session.
package guard

import (
	"fmt"
	"spectrumconnect-service/internal/pkg/constvars"
	"strings"
)

type State struct {
	IsAuthenticated bool
	Role            string
	RequiredRole    string
	RedirectToLogin bool
	Path            string
}

type Notice struct {
	Title       string
	Description string
}

// Decision is either Render, or a Redirect with the notice to show.
type Decision struct {
	Render     bool
	RedirectTo string
	Notice     *Notice
}

// Evaluate applies the rules in order:
//   - signed out with RedirectToLogin: go to login.
//   - signed out on a public page (no required role, path without "dashboard"): render.
//   - required role differs from the session role: go to the session role's dashboard.
//   - otherwise render.
//
// A signed out visitor on a role or dashboard page without RedirectToLogin gets
// neither, the view stays blank.
func Evaluate(state State) Decision {
	if !state.IsAuthenticated {
		if state.RedirectToLogin {
			return Decision{
				RedirectTo: constvars.PathLogin,
				Notice: &Notice{
					Title:       constvars.NoticeTitleAuthenticationNeeded,
					Description: constvars.NoticeDescAuthenticationNeeded,
				},
			}
		}
		if state.RequiredRole == "" && !strings.Contains(state.Path, constvars.PathDashboardMarker) {
			return Decision{Render: true}
		}
		return Decision{}
	}

	if state.RequiredRole != "" && state.Role != state.RequiredRole {
		return Decision{
			RedirectTo: DashboardPath(state.Role),
			Notice: &Notice{
				Title:       constvars.NoticeTitleAccessDenied,
				Description: fmt.Sprintf(constvars.NoticeDescAccessDeniedFormat, state.RequiredRole),
			},
		}
	}

	return Decision{Render: true}
}

// DashboardPath is the landing view of a role.
func DashboardPath(role string) string {
	if role == constvars.RoleTherapist {
		return constvars.PathTherapistDashboard
	}
	return constvars.PathUserDashboard
}

func (d Decision) IsRedirect() bool {
	return d.RedirectTo != ""
}
