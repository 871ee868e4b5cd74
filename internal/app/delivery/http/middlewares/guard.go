package middlewares

import (
	"context"
	"net/http"
	"spectrumconnect-service/internal/app/services/core/guard"
	"spectrumconnect-service/internal/app/services/core/session"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/exceptions"
	"spectrumconnect-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// GuardOptions are the per-route guard settings.
type GuardOptions struct {
	RequiredRole    string
	RedirectToLogin bool
}

// Guard lets the view render only when the session passes the guard. A redirect
// answers 303 with its notice. A view that neither renders nor redirects
// answers 204 with no body.
func (m *Middlewares) Guard(opts GuardOptions) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constvars.CONTEXT_GUARD_OPTIONS_KEY, opts)
			r = r.WithContext(ctx)

			decision := evaluateGuard(r, opts)
			if decision.Render {
				next.ServeHTTP(w, r)
				return
			}

			requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			m.Log.Info("Middlewares.Guard blocked view",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRedirectKey, decision.RedirectTo),
			)
			writeBlocked(w, decision)
		})
	}
}

// HandleError answers a failed guarded view. When the failure was a backend 401
// the token is already gone, so the guard runs again and its redirect wins.
func HandleError(log *zap.Logger, w http.ResponseWriter, r *http.Request, err error) {
	HandleErrorWithTitle(log, w, r, constvars.NoticeTitleError, err)
}

func HandleErrorWithTitle(log *zap.Logger, w http.ResponseWriter, r *http.Request, title string, err error) {
	opts, guarded := r.Context().Value(constvars.CONTEXT_GUARD_OPTIONS_KEY).(GuardOptions)
	if guarded && exceptions.IsBackendStatus(err, constvars.StatusUnauthorized) {
		decision := evaluateGuard(r, opts)
		if !decision.Render {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			log.Info("HandleError session invalidated mid-view",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedirectKey, decision.RedirectTo),
			)
			writeBlocked(w, decision)
			return
		}
	}
	utils.BuildErrorResponseWithTitle(log, w, title, err)
}

func evaluateGuard(r *http.Request, opts GuardOptions) guard.Decision {
	state := session.FromContext(r.Context()).Snapshot()
	return guard.Evaluate(guard.State{
		IsAuthenticated: state.IsAuthenticated,
		Role:            state.Role,
		RequiredRole:    opts.RequiredRole,
		RedirectToLogin: opts.RedirectToLogin,
		Path:            r.URL.Path,
	})
}

func writeBlocked(w http.ResponseWriter, decision guard.Decision) {
	if !decision.IsRedirect() {
		w.WriteHeader(constvars.StatusNoContent)
		return
	}
	var title, description string
	if decision.Notice != nil {
		title, description = decision.Notice.Title, decision.Notice.Description
	}
	utils.BuildRedirectResponse(w, decision.RedirectTo, utils.NewDestructiveNotice(title, description))
}
