package guard

import (
	"spectrumconnect-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name         string
		state        State
		render       bool
		redirectTo   string
		noticeTitle  string
		noticeDetail string
	}{
		{
			name:         "signed out with redirect goes to login",
			state:        State{RequiredRole: constvars.RoleUser, RedirectToLogin: true, Path: "/appointments"},
			redirectTo:   constvars.PathLogin,
			noticeTitle:  constvars.NoticeTitleAuthenticationNeeded,
			noticeDetail: constvars.NoticeDescAuthenticationNeeded,
		},
		{
			name:   "signed out on a public page renders",
			state:  State{Path: "/resources"},
			render: true,
		},
		{
			name:  "signed out on a dashboard path stays blank",
			state: State{Path: "/user-dashboard"},
		},
		{
			name:  "signed out on a role page without redirect stays blank",
			state: State{RequiredRole: constvars.RoleTherapist, Path: "/therapists/profile"},
		},
		{
			name:         "therapist on a user page goes to the therapist dashboard",
			state:        State{IsAuthenticated: true, Role: constvars.RoleTherapist, RequiredRole: constvars.RoleUser},
			redirectTo:   constvars.PathTherapistDashboard,
			noticeTitle:  constvars.NoticeTitleAccessDenied,
			noticeDetail: "This page is only accessible to users",
		},
		{
			name:         "user on a therapist page goes to the user dashboard",
			state:        State{IsAuthenticated: true, Role: constvars.RoleUser, RequiredRole: constvars.RoleTherapist},
			redirectTo:   constvars.PathUserDashboard,
			noticeTitle:  constvars.NoticeTitleAccessDenied,
			noticeDetail: "This page is only accessible to therapists",
		},
		{
			name:   "matching role renders",
			state:  State{IsAuthenticated: true, Role: constvars.RoleUser, RequiredRole: constvars.RoleUser},
			render: true,
		},
		{
			name:   "signed in without required role renders",
			state:  State{IsAuthenticated: true, Role: constvars.RoleTherapist, Path: "/user-dashboard"},
			render: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Evaluate(tt.state)
			assert.Equal(t, tt.render, decision.Render)
			assert.Equal(t, tt.redirectTo, decision.RedirectTo)
			assert.Equal(t, tt.redirectTo != "", decision.IsRedirect())
			if tt.noticeTitle == "" {
				assert.Nil(t, decision.Notice)
				return
			}
			require.NotNil(t, decision.Notice)
			assert.Equal(t, tt.noticeTitle, decision.Notice.Title)
			assert.Equal(t, tt.noticeDetail, decision.Notice.Description)
		})
	}
}

func TestDashboardPath(t *testing.T) {
	assert.Equal(t, constvars.PathTherapistDashboard, DashboardPath(constvars.RoleTherapist))
	assert.Equal(t, constvars.PathUserDashboard, DashboardPath(constvars.RoleUser))
	assert.Equal(t, constvars.PathUserDashboard, DashboardPath(""))
}
