package middlewares

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"spectrumconnect-service/internal/app/config"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/app/services/core/session"
	"spectrumconnect-service/internal/app/services/shared/storage"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/dto/requests"
	"spectrumconnect-service/internal/pkg/dto/responses"
	"spectrumconnect-service/internal/pkg/exceptions"
	"spectrumconnect-service/internal/pkg/utils"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

type MockUserBackendClient struct {
	mock.Mock
}

func (m *MockUserBackendClient) Login(ctx context.Context, request *requests.Login) (*models.TokenData, error) {
	args := m.Called(ctx, request)
	token, _ := args.Get(0).(*models.TokenData)
	return token, args.Error(1)
}

func (m *MockUserBackendClient) Signup(ctx context.Context, request *requests.Signup) (*models.UserProfile, error) {
	args := m.Called(ctx, request)
	profile, _ := args.Get(0).(*models.UserProfile)
	return profile, args.Error(1)
}

func (m *MockUserBackendClient) FindMe(ctx context.Context) (*models.UserProfile, error) {
	args := m.Called(ctx)
	profile, _ := args.Get(0).(*models.UserProfile)
	return profile, args.Error(1)
}

func (m *MockUserBackendClient) UploadProfileImage(ctx context.Context, fileName string, file io.Reader) (*responses.ProfileImage, error) {
	args := m.Called(ctx, fileName, file)
	image, _ := args.Get(0).(*responses.ProfileImage)
	return image, args.Error(1)
}

func newTestMiddlewares(factory contracts.SessionStorageFactory) *Middlewares {
	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = testSecret
	internalConfig.JWT.ExpTimeInHour = 24
	return NewMiddlewares(zap.NewNop(), internalConfig, factory, new(MockUserBackendClient))
}

// signedIn seeds a session and returns the token the browser would send.
func signedIn(t *testing.T, factory contracts.SessionStorageFactory, sessionID, role string) string {
	t.Helper()
	ctx := context.Background()
	sessionStorage := factory(sessionID)
	require.NoError(t, sessionStorage.Set(ctx, constvars.StorageKeyAccessToken, "backend-token"))
	require.NoError(t, sessionStorage.Set(ctx, constvars.StorageKeyUserType, role))

	token, err := utils.GenerateSessionJWT(sessionID, testSecret, 1)
	require.NoError(t, err)
	return token
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) responses.ResponseDTO {
	t.Helper()
	var body responses.ResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSession_StartsNewSession(t *testing.T) {
	m := newTestMiddlewares(storage.NewMemorySessionStorageFactory())

	var snapshot models.Session
	handler := m.Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot = session.FromContext(r.Context()).Snapshot()
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, snapshot.IsAuthenticated)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, constvars.SessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, cookies[0].Value, rec.Header().Get(constvars.SessionTokenHeaderName))

	sessionID, err := utils.ParseSessionJWT(cookies[0].Value, testSecret)
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)
}

func TestSession_ReusesExistingSession(t *testing.T) {
	factory := storage.NewMemorySessionStorageFactory()
	m := newTestMiddlewares(factory)
	token := signedIn(t, factory, "existing", constvars.RoleUser)

	sources := map[string]func(r *http.Request){
		"cookie": func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: token})
		},
		"header": func(r *http.Request) { r.Header.Set(constvars.SessionTokenHeaderName, token) },
		"bearer": func(r *http.Request) { r.Header.Set(constvars.HeaderAuthorization, "Bearer "+token) },
	}

	for name, attach := range sources {
		t.Run(name, func(t *testing.T) {
			var snapshot models.Session
			var sessionID string
			handler := m.Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				snapshot = session.FromContext(r.Context()).Snapshot()
				sessionID, _ = r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
			attach(req)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, "existing", sessionID)
			assert.True(t, snapshot.IsAuthenticated)
			assert.Equal(t, constvars.RoleUser, snapshot.Role)
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestSession_ForgedTokenStartsOver(t *testing.T) {
	factory := storage.NewMemorySessionStorageFactory()
	m := newTestMiddlewares(factory)
	signedIn(t, factory, "victim", constvars.RoleUser)
	forged, err := utils.GenerateSessionJWT("victim", "not-the-secret", 1)
	require.NoError(t, err)

	var sessionID string
	handler := m.Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, _ = r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req.Header.Set(constvars.SessionTokenHeaderName, forged)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEqual(t, "victim", sessionID)
	assert.Len(t, rec.Result().Cookies(), 1)
}

func serveGuarded(m *Middlewares, opts GuardOptions, path, token string, view http.HandlerFunc) *httptest.ResponseRecorder {
	handler := m.Session(m.Guard(opts)(view))
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(constvars.SessionTokenHeaderName, token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func okView(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, http.StatusOK, "ok", nil)
}

func TestGuard(t *testing.T) {
	factory := storage.NewMemorySessionStorageFactory()
	m := newTestMiddlewares(factory)
	userToken := signedIn(t, factory, "user-session", constvars.RoleUser)
	therapistToken := signedIn(t, factory, "therapist-session", constvars.RoleTherapist)

	t.Run("signed out is sent to login", func(t *testing.T) {
		rec := serveGuarded(m, GuardOptions{RequiredRole: constvars.RoleUser, RedirectToLogin: true}, "/api/v1/appointments", "", okView)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, constvars.PathLogin, rec.Header().Get(constvars.HeaderLocation))
		body := decode(t, rec)
		assert.Equal(t, constvars.PathLogin, body.RedirectTo)
		require.NotNil(t, body.Notice)
		assert.Equal(t, constvars.NoticeVariantDestructive, body.Notice.Variant)
	})

	t.Run("signed out on a dashboard renders nothing", func(t *testing.T) {
		rec := serveGuarded(m, GuardOptions{}, "/api/v1/user-dashboard", "", okView)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("public page renders for everyone", func(t *testing.T) {
		rec := serveGuarded(m, GuardOptions{}, "/api/v1/resources", "", okView)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("therapist on a user page goes to their dashboard", func(t *testing.T) {
		rec := serveGuarded(m, GuardOptions{RequiredRole: constvars.RoleUser, RedirectToLogin: true}, "/api/v1/user-dashboard", therapistToken, okView)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, constvars.PathTherapistDashboard, decode(t, rec).RedirectTo)
	})

	t.Run("matching role renders", func(t *testing.T) {
		rec := serveGuarded(m, GuardOptions{RequiredRole: constvars.RoleUser, RedirectToLogin: true}, "/api/v1/user-dashboard", userToken, okView)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandleError_UnauthorizedMidView(t *testing.T) {
	factory := storage.NewMemorySessionStorageFactory()
	m := newTestMiddlewares(factory)
	token := signedIn(t, factory, "expiring", constvars.RoleUser)

	view := func(w http.ResponseWriter, r *http.Request) {
		// what the backend client does when the backend answers 401
		require.NoError(t, session.FromContext(r.Context()).InvalidateToken(r.Context()))
		err := exceptions.ErrBackendRejected(&exceptions.BackendError{StatusCode: http.StatusUnauthorized})
		HandleError(m.Log, w, r, err)
	}

	rec := serveGuarded(m, GuardOptions{RequiredRole: constvars.RoleUser, RedirectToLogin: true}, "/api/v1/appointments", token, view)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, constvars.PathLogin, decode(t, rec).RedirectTo)
	_, found, _ := factory("expiring").Get(context.Background(), constvars.StorageKeyAccessToken)
	assert.False(t, found)
}

func TestHandleError_OrdinaryFailure(t *testing.T) {
	factory := storage.NewMemorySessionStorageFactory()
	m := newTestMiddlewares(factory)
	token := signedIn(t, factory, "fine", constvars.RoleUser)

	view := func(w http.ResponseWriter, r *http.Request) {
		HandleErrorWithTitle(m.Log, w, r, constvars.NoticeTitleBookingFailed, errors.New("boom"))
	}

	rec := serveGuarded(m, GuardOptions{RequiredRole: constvars.RoleUser}, "/api/v1/appointments", token, view)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), constvars.NoticeTitleBookingFailed)
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	m := newTestMiddlewares(storage.NewMemorySessionStorageFactory())
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("unexpected")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
