package session

import (
	"context"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/dto/requests"
	"spectrumconnect-service/internal/pkg/exceptions"
	"spectrumconnect-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// persistedKeys are every key the store owns in session storage.
var persistedKeys = []string{
	constvars.StorageKeyAccessToken,
	constvars.StorageKeyTokenType,
	constvars.StorageKeyUserType,
	constvars.StorageKeyUserProfile,
}

// Store is the single owner of one browser session's authentication state.
// Nothing else reads or writes the session storage.
type Store struct {
	mu      sync.RWMutex
	state   models.Session
	Storage contracts.SessionStorage
	Users   contracts.UserBackendClient
	Log     *zap.Logger
}

func NewStore(storage contracts.SessionStorage, users contracts.UserBackendClient, logger *zap.Logger) *Store {
	return &Store{
		Storage: storage,
		Users:   users,
		Log:     logger,
	}
}

// Load restores the state from storage without touching the network.
// A token without a role, or a role without a token, loads as the empty session.
func (s *Store) Load(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	token, _, err := s.Storage.Get(ctx, constvars.StorageKeyAccessToken)
	if err != nil {
		return err
	}
	role, _, err := s.Storage.Get(ctx, constvars.StorageKeyUserType)
	if err != nil {
		return err
	}
	tokenType, _, err := s.Storage.Get(ctx, constvars.StorageKeyTokenType)
	if err != nil {
		return err
	}

	if token == "" || !utils.IsValidRole(role) {
		if token != "" || role != "" {
			s.Log.Warn("Store.Load incomplete persisted session, treating as signed out",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Bool("has_token", token != ""),
				zap.String(constvars.LoggingRoleKey, role),
			)
		}
		s.setState(models.Session{})
		return nil
	}

	state := models.Session{
		IsAuthenticated: true,
		Role:            role,
		Token:           token,
		TokenType:       tokenType,
		Profile:         s.cachedProfile(ctx, requestID),
	}
	s.setState(state)
	return nil
}

// Refresh re-reads the persisted flags and, when signed in, fetches the
// current profile. A failed fetch leaves the profile nil and is only logged.
func (s *Store) Refresh(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("Store.Refresh called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := s.Load(ctx)
	if err != nil {
		return err
	}
	if !s.Snapshot().IsAuthenticated {
		return nil
	}

	profile, err := s.Users.FindMe(ctx)
	if err != nil {
		s.Log.Error("Store.Refresh error fetching user profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		s.mu.Lock()
		s.state.Profile = nil
		s.mu.Unlock()
		return nil
	}

	s.cacheProfile(ctx, requestID, profile)

	s.mu.Lock()
	if s.state.IsAuthenticated {
		s.state.Profile = profile
	}
	s.mu.Unlock()

	s.Log.Info("Store.Refresh succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, s.Snapshot().Role),
	)
	return nil
}

// Login exchanges credentials for a bearer token, persists it with the role and refreshes.
func (s *Store) Login(ctx context.Context, request *requests.Login) (models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("Store.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.UserType),
	)

	if request.Email == "" || request.Password == "" {
		return models.Session{}, exceptions.ErrClientValidation(nil, constvars.ErrClientFillAllFields)
	}
	err := utils.ValidateStruct(request)
	if err != nil {
		return models.Session{}, exceptions.ErrInputValidation(err)
	}

	tokenData, err := s.Users.Login(ctx, request)
	if err != nil {
		s.Log.Error("Store.Login error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return models.Session{}, err
	}

	tokenType := tokenData.TokenType
	if tokenType == "" {
		tokenType = constvars.DefaultTokenType
	}

	persisted := []struct{ key, value string }{
		{constvars.StorageKeyAccessToken, tokenData.AccessToken},
		{constvars.StorageKeyTokenType, tokenType},
		{constvars.StorageKeyUserType, request.UserType},
	}
	written := make([]string, 0, len(persisted))
	for _, entry := range persisted {
		err = s.Storage.Set(ctx, entry.key, entry.value)
		if err != nil {
			s.Log.Error("Store.Login error persisting session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingStorageKey, entry.key),
				zap.Error(err),
			)
			// A token must not outlive a failed login without its role.
			if len(written) > 0 {
				deleteErr := s.Storage.Delete(ctx, written...)
				if deleteErr != nil {
					s.Log.Error("Store.Login error rolling back partial session",
						zap.String(constvars.LoggingRequestIDKey, requestID),
						zap.Strings(constvars.LoggingStorageKey, written),
						zap.Error(deleteErr),
					)
				}
			}
			return models.Session{}, err
		}
		written = append(written, entry.key)
	}

	err = s.Refresh(ctx)
	if err != nil {
		return models.Session{}, err
	}

	s.Log.Info("Store.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.UserType),
	)
	return s.Snapshot(), nil
}

// Signup checks the form in the order the signup view reports problems, then creates the account.
func (s *Store) Signup(ctx context.Context, request *requests.Signup) (*models.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("Store.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.UserType),
	)

	err := ValidateSignup(request)
	if err != nil {
		return nil, err
	}

	profile, err := s.Users.Signup(ctx, request)
	if err != nil {
		s.Log.Error("Store.Signup error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	s.Log.Info("Store.Signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return profile, nil
}

// Logout clears every persisted key and resets the state. Storage failures are logged, never returned.
func (s *Store) Logout(ctx context.Context) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := s.Storage.Delete(ctx, persistedKeys...)
	if err != nil {
		s.Log.Error("Store.Logout error clearing session storage",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	s.setState(models.Session{})
	s.Log.Info("Store.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
}

// UpdateProfile shallow-merges update into the cached profile. Nothing is sent to the backend.
func (s *Store) UpdateProfile(ctx context.Context, update models.ProfileUpdate) *models.UserProfile {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	s.mu.Lock()
	merged := models.MergeProfile(s.state.Profile, update)
	s.state.Profile = merged
	s.mu.Unlock()

	s.cacheProfile(ctx, requestID, merged)
	return merged
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.state
	if s.state.Profile != nil {
		profile := *s.state.Profile
		snapshot.Profile = &profile
	}
	return snapshot
}

func (s *Store) AccessToken(ctx context.Context) (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.TokenType, s.state.Token
}

// InvalidateToken removes only the persisted access token. With the token gone
// the role no longer pairs with anything, so the state drops to the empty session.
func (s *Store) InvalidateToken(ctx context.Context) error {
	err := s.Storage.Delete(ctx, constvars.StorageKeyAccessToken)
	if err != nil {
		return err
	}
	s.setState(models.Session{})
	return nil
}

func (s *Store) setState(state models.Session) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *Store) cachedProfile(ctx context.Context, requestID string) *models.UserProfile {
	raw, found, err := s.Storage.Get(ctx, constvars.StorageKeyUserProfile)
	if err != nil || !found || raw == "" {
		return nil
	}

	profile := new(models.UserProfile)
	err = json.Unmarshal([]byte(raw), profile)
	if err != nil {
		s.Log.Warn("Store.cachedProfile ignoring unreadable cached profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}
	return profile
}

func (s *Store) cacheProfile(ctx context.Context, requestID string, profile *models.UserProfile) {
	raw, err := json.Marshal(profile)
	if err == nil {
		err = s.Storage.Set(ctx, constvars.StorageKeyUserProfile, string(raw))
	}
	if err != nil {
		s.Log.Error("Store.cacheProfile error caching user profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStorageKey, constvars.StorageKeyUserProfile),
			zap.Error(err),
		)
	}
}
