package middlewares

import (
	"spectrumconnect-service/internal/app/config"
	"spectrumconnect-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log                   *zap.Logger
	InternalConfig        *config.InternalConfig
	SessionStorageFactory contracts.SessionStorageFactory
	UserBackendClient     contracts.UserBackendClient
}

func NewMiddlewares(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	sessionStorageFactory contracts.SessionStorageFactory,
	userBackendClient contracts.UserBackendClient,
) *Middlewares {
	return &Middlewares{
		Log:                   logger,
		InternalConfig:        internalConfig,
		SessionStorageFactory: sessionStorageFactory,
		UserBackendClient:     userBackendClient,
	}
}
