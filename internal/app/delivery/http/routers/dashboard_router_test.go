package routers

import (
	"net/http"
	"net/http/httptest"
	"spectrumconnect-service/internal/app/config"
	"spectrumconnect-service/internal/app/delivery/http/controllers"
	"spectrumconnect-service/internal/app/delivery/http/middlewares"
	"spectrumconnect-service/internal/app/services/shared/storage"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/dto/responses"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDashboardRoutes_SignedOutGoesToLogin(t *testing.T) {
	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = "test-secret"
	internalConfig.JWT.ExpTimeInHour = 24
	m := middlewares.NewMiddlewares(zap.NewNop(), internalConfig, storage.NewMemorySessionStorageFactory(), nil)

	router := chi.NewRouter()
	router.Use(m.Session)
	attachDashboardRoutes(router, m, &controllers.DashboardController{})

	for _, path := range []string{"/user-dashboard", "/therapist-dashboard"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, constvars.PathLogin, rec.Header().Get("Location"))

			var body responses.ResponseDTO
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, constvars.PathLogin, body.RedirectTo)
			require.NotNil(t, body.Notice)
			assert.Equal(t, constvars.NoticeTitleAuthenticationNeeded, body.Notice.Title)
			assert.Equal(t, constvars.NoticeVariantDestructive, body.Notice.Variant)
		})
	}
}
