package therapists

import (
	"context"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/dto/requests"
	"spectrumconnect-service/internal/pkg/exceptions"
	"spectrumconnect-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type therapistUsecase struct {
	TherapistBackendClient contracts.TherapistBackendClient
	Log                    *zap.Logger
}

func NewTherapistUsecase(therapistBackendClient contracts.TherapistBackendClient, logger *zap.Logger) contracts.TherapistUsecase {
	return &therapistUsecase{
		TherapistBackendClient: therapistBackendClient,
		Log:                    logger,
	}
}

func (uc *therapistUsecase) FindAll(ctx context.Context, searchTerm string) ([]models.Therapist, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("therapistUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchTermKey, searchTerm),
	)

	therapists, err := uc.TherapistBackendClient.FindAll(ctx)
	if err != nil {
		uc.Log.Error("therapistUsecase.FindAll error fetching therapists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := NewDirectory(therapists).Search(searchTerm)

	uc.Log.Info("therapistUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	return result, nil
}

func (uc *therapistUsecase) FindByID(ctx context.Context, therapistID int) (*models.Therapist, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("therapistUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTherapistIDKey, therapistID),
	)

	therapist, err := uc.TherapistBackendClient.FindByID(ctx, therapistID)
	if err != nil {
		uc.Log.Error("therapistUsecase.FindByID error fetching therapist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingTherapistIDKey, therapistID),
			zap.Error(err),
		)
		return nil, err
	}
	return therapist, nil
}

func (uc *therapistUsecase) CreateProfile(ctx context.Context, request *requests.CreateTherapistProfile) (*models.TherapistProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("therapistUsecase.CreateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	profile, err := uc.TherapistBackendClient.Create(ctx, request)
	if err != nil {
		uc.Log.Error("therapistUsecase.CreateProfile error creating profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("therapistUsecase.CreateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTherapistIDKey, profile.ID),
	)
	return profile, nil
}

// ProfileStatus is false on any failure, including a missing profile.
func (uc *therapistUsecase) ProfileStatus(ctx context.Context) bool {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	profile, err := uc.TherapistBackendClient.FindMe(ctx)
	if err != nil {
		uc.Log.Error("therapistUsecase.ProfileStatus error checking therapist profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false
	}
	return profile.IsComplete()
}
