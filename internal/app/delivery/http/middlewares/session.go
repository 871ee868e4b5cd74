package middlewares

import (
	"context"
	"net/http"
	"spectrumconnect-service/internal/app/services/core/session"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Session resolves the browser session, attaches its store to the context and
// loads the persisted state. A missing or unreadable session token starts a
// fresh session and hands its token back as a cookie and a response header.
func (m *Middlewares) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		sessionID := ""
		token := sessionToken(r)
		if token != "" {
			parsedID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
			if err != nil {
				m.Log.Warn("Middlewares.Session discarding unreadable session token",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
			}
			sessionID = parsedID
		}

		if sessionID == "" {
			sessionID = utils.GenerateSessionID()
			newToken, err := utils.GenerateSessionJWT(sessionID, m.InternalConfig.JWT.Secret, m.InternalConfig.JWT.ExpTimeInHour)
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}
			m.issueSessionToken(w, newToken)
			m.Log.Info("Middlewares.Session started new session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
			)
		}

		store := session.NewStore(m.SessionStorageFactory(sessionID), m.UserBackendClient, m.Log)

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		ctx = session.WithStore(ctx, store)

		err := store.Load(ctx)
		if err != nil {
			m.Log.Error("Middlewares.Session error loading session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) issueSessionToken(w http.ResponseWriter, token string) {
	maxAge := time.Duration(m.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.InternalConfig.App.SessionCookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set(constvars.SessionTokenHeaderName, token)
}

// sessionToken reads the cookie first, then the session header, then a bearer token.
func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(constvars.SessionCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if token := r.Header.Get(constvars.SessionTokenHeaderName); token != "" {
		return token
	}
	authorization := r.Header.Get(constvars.HeaderAuthorization)
	prefix := constvars.DefaultTokenType + " "
	if len(authorization) > len(prefix) && strings.EqualFold(authorization[:len(prefix)], prefix) {
		return strings.TrimSpace(authorization[len(prefix):])
	}
	return ""
}
