package session

import (
	"context"
	"errors"
	"io"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/app/services/shared/storage"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/dto/requests"
	"spectrumconnect-service/internal/pkg/dto/responses"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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

// failingSetStorage rejects writes to one key.
type failingSetStorage struct {
	contracts.SessionStorage
	failKey string
}

func (f *failingSetStorage) Set(ctx context.Context, key, value string) error {
	if key == f.failKey {
		return errors.New("redis: connection reset")
	}
	return f.SessionStorage.Set(ctx, key, value)
}

func seed(t *testing.T, sessionStorage contracts.SessionStorage, values map[string]string) {
	t.Helper()
	for key, value := range values {
		require.NoError(t, sessionStorage.Set(context.Background(), key, value))
	}
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("empty storage is signed out", func(t *testing.T) {
		store := NewStore(storage.NewMemorySessionStorage(), new(MockUserBackendClient), zap.NewNop())
		require.NoError(t, store.Load(ctx))
		assert.Equal(t, models.Session{}, store.Snapshot())
	})

	t.Run("token and role load with the cached profile", func(t *testing.T) {
		sessionStorage := storage.NewMemorySessionStorage()
		seed(t, sessionStorage, map[string]string{
			constvars.StorageKeyAccessToken: "abc",
			constvars.StorageKeyTokenType:   "bearer",
			constvars.StorageKeyUserType:    constvars.RoleTherapist,
			constvars.StorageKeyUserProfile: `{"id":3,"name":"Dana"}`,
		})
		store := NewStore(sessionStorage, new(MockUserBackendClient), zap.NewNop())

		require.NoError(t, store.Load(ctx))
		snapshot := store.Snapshot()
		assert.True(t, snapshot.IsAuthenticated)
		assert.Equal(t, constvars.RoleTherapist, snapshot.Role)
		require.NotNil(t, snapshot.Profile)
		assert.Equal(t, "Dana", snapshot.Profile.Name)

		tokenType, token := store.AccessToken(ctx)
		assert.Equal(t, "bearer", tokenType)
		assert.Equal(t, "abc", token)
	})

	t.Run("token without role loads as empty", func(t *testing.T) {
		sessionStorage := storage.NewMemorySessionStorage()
		seed(t, sessionStorage, map[string]string{constvars.StorageKeyAccessToken: "abc"})
		store := NewStore(sessionStorage, new(MockUserBackendClient), zap.NewNop())

		require.NoError(t, store.Load(ctx))
		assert.False(t, store.Snapshot().IsAuthenticated)
		assert.Empty(t, store.Snapshot().Role)
	})

	t.Run("role without token loads as empty", func(t *testing.T) {
		sessionStorage := storage.NewMemorySessionStorage()
		seed(t, sessionStorage, map[string]string{constvars.StorageKeyUserType: constvars.RoleUser})
		store := NewStore(sessionStorage, new(MockUserBackendClient), zap.NewNop())

		require.NoError(t, store.Load(ctx))
		assert.Equal(t, models.Session{}, store.Snapshot())
	})

	t.Run("unreadable cached profile is ignored", func(t *testing.T) {
		sessionStorage := storage.NewMemorySessionStorage()
		seed(t, sessionStorage, map[string]string{
			constvars.StorageKeyAccessToken: "abc",
			constvars.StorageKeyUserType:    constvars.RoleUser,
			constvars.StorageKeyUserProfile: "{not json",
		})
		store := NewStore(sessionStorage, new(MockUserBackendClient), zap.NewNop())

		require.NoError(t, store.Load(ctx))
		assert.True(t, store.Snapshot().IsAuthenticated)
		assert.Nil(t, store.Snapshot().Profile)
	})
}

func TestStore_Login(t *testing.T) {
	ctx := context.Background()
	request := &requests.Login{Email: "alex@example.com", Password: "secret", UserType: constvars.RoleUser}

	t.Run("persists token and role then refreshes", func(t *testing.T) {
		sessionStorage := storage.NewMemorySessionStorage()
		users := new(MockUserBackendClient)
		users.On("Login", ctx, request).Return(&models.TokenData{AccessToken: "tok"}, nil)
		users.On("FindMe", ctx).Return(&models.UserProfile{ID: 1, Name: "Alex"}, nil)
		store := NewStore(sessionStorage, users, zap.NewNop())

		snapshot, err := store.Login(ctx, request)
		require.NoError(t, err)
		assert.True(t, snapshot.IsAuthenticated)
		assert.Equal(t, constvars.RoleUser, snapshot.Role)
		assert.Equal(t, "Alex", snapshot.Profile.Name)

		token, _, _ := sessionStorage.Get(ctx, constvars.StorageKeyAccessToken)
		tokenType, _, _ := sessionStorage.Get(ctx, constvars.StorageKeyTokenType)
		role, _, _ := sessionStorage.Get(ctx, constvars.StorageKeyUserType)
		_, cached, _ := sessionStorage.Get(ctx, constvars.StorageKeyUserProfile)
		assert.Equal(t, "tok", token)
		assert.Equal(t, constvars.DefaultTokenType, tokenType)
		assert.Equal(t, constvars.RoleUser, role)
		assert.True(t, cached)
	})

	t.Run("blank credentials never reach the backend", func(t *testing.T) {
		users := new(MockUserBackendClient)
		store := NewStore(storage.NewMemorySessionStorage(), users, zap.NewNop())

		_, err := store.Login(ctx, &requests.Login{UserType: constvars.RoleUser})
		assert.Error(t, err)
		assert.Empty(t, users.Calls)
	})

	t.Run("backend rejection persists nothing", func(t *testing.T) {
		sessionStorage := storage.NewMemorySessionStorage()
		users := new(MockUserBackendClient)
		users.On("Login", ctx, request).Return(nil, errors.New("invalid credentials"))
		store := NewStore(sessionStorage, users, zap.NewNop())

		_, err := store.Login(ctx, request)
		assert.Error(t, err)
		keys, _ := sessionStorage.Keys(ctx)
		assert.Empty(t, keys)
		assert.False(t, store.Snapshot().IsAuthenticated)
	})

	t.Run("failed role write removes the token", func(t *testing.T) {
		memory := storage.NewMemorySessionStorage()
		sessionStorage := &failingSetStorage{SessionStorage: memory, failKey: constvars.StorageKeyUserType}
		users := new(MockUserBackendClient)
		users.On("Login", ctx, request).Return(&models.TokenData{AccessToken: "tok"}, nil)
		store := NewStore(sessionStorage, users, zap.NewNop())

		_, err := store.Login(ctx, request)
		assert.Error(t, err)
		keys, err := memory.Keys(ctx)
		require.NoError(t, err)
		assert.Empty(t, keys)
		assert.False(t, store.Snapshot().IsAuthenticated)
		users.AssertNotCalled(t, "FindMe", mock.Anything)
	})
}

func TestStore_Refresh(t *testing.T) {
	ctx := context.Background()
	sessionStorage := storage.NewMemorySessionStorage()
	seed(t, sessionStorage, map[string]string{
		constvars.StorageKeyAccessToken: "abc",
		constvars.StorageKeyUserType:    constvars.RoleUser,
		constvars.StorageKeyUserProfile: `{"name":"Stale"}`,
	})
	users := new(MockUserBackendClient)
	users.On("FindMe", ctx).Return(nil, errors.New("backend down"))
	store := NewStore(sessionStorage, users, zap.NewNop())

	require.NoError(t, store.Refresh(ctx))
	snapshot := store.Snapshot()
	assert.True(t, snapshot.IsAuthenticated)
	assert.Nil(t, snapshot.Profile)
}

func TestStore_Logout(t *testing.T) {
	ctx := context.Background()
	sessionStorage := storage.NewMemorySessionStorage()
	seed(t, sessionStorage, map[string]string{
		constvars.StorageKeyAccessToken: "abc",
		constvars.StorageKeyTokenType:   "Bearer",
		constvars.StorageKeyUserType:    constvars.RoleUser,
		constvars.StorageKeyUserProfile: `{"name":"Alex"}`,
	})
	store := NewStore(sessionStorage, new(MockUserBackendClient), zap.NewNop())
	require.NoError(t, store.Load(ctx))

	store.Logout(ctx)

	keys, err := sessionStorage.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
	assert.Equal(t, models.Session{}, store.Snapshot())
}

func TestStore_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	sessionStorage := storage.NewMemorySessionStorage()
	seed(t, sessionStorage, map[string]string{
		constvars.StorageKeyAccessToken: "abc",
		constvars.StorageKeyUserType:    constvars.RoleUser,
		constvars.StorageKeyUserProfile: `{"name":"Alex","email":"alex@example.com"}`,
	})
	store := NewStore(sessionStorage, new(MockUserBackendClient), zap.NewNop())
	require.NoError(t, store.Load(ctx))

	bio := "Parent of two."
	merged := store.UpdateProfile(ctx, models.ProfileUpdate{Bio: &bio})
	assert.Equal(t, "Alex", merged.Name)
	assert.Equal(t, bio, merged.Bio)

	reloaded := NewStore(sessionStorage, new(MockUserBackendClient), zap.NewNop())
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, bio, reloaded.Snapshot().Profile.Bio)
	assert.Equal(t, "alex@example.com", reloaded.Snapshot().Profile.Email)
}

func TestStore_InvalidateToken(t *testing.T) {
	ctx := context.Background()
	sessionStorage := storage.NewMemorySessionStorage()
	seed(t, sessionStorage, map[string]string{
		constvars.StorageKeyAccessToken: "abc",
		constvars.StorageKeyUserType:    constvars.RoleTherapist,
	})
	store := NewStore(sessionStorage, new(MockUserBackendClient), zap.NewNop())
	require.NoError(t, store.Load(ctx))

	require.NoError(t, store.InvalidateToken(ctx))

	_, found, _ := sessionStorage.Get(ctx, constvars.StorageKeyAccessToken)
	role, _, _ := sessionStorage.Get(ctx, constvars.StorageKeyUserType)
	assert.False(t, found)
	assert.Equal(t, constvars.RoleTherapist, role)
	assert.False(t, store.Snapshot().IsAuthenticated)

	_, token := store.AccessToken(ctx)
	assert.Empty(t, token)
}

func TestFromContext(t *testing.T) {
	store := NewStore(storage.NewMemorySessionStorage(), new(MockUserBackendClient), zap.NewNop())
	ctx := WithStore(context.Background(), store)

	assert.Same(t, store, FromContext(ctx))
	assert.Panics(t, func() { FromContext(context.Background()) })
}
