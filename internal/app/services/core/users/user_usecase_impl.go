package users

import (
	"bytes"
	"context"
	"io"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/dto/requests"
	"spectrumconnect-service/internal/pkg/dto/responses"
	"spectrumconnect-service/internal/pkg/exceptions"
	"spectrumconnect-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const sniffLength = 512

type userUsecase struct {
	UserBackendClient    contracts.UserBackendClient
	MaxUploadSizeInMByte int64
	Log                  *zap.Logger
}

func NewUserUsecase(userBackendClient contracts.UserBackendClient, maxUploadSizeInMByte int64, logger *zap.Logger) contracts.UserUsecase {
	return &userUsecase{
		UserBackendClient:    userBackendClient,
		MaxUploadSizeInMByte: maxUploadSizeInMByte,
		Log:                  logger,
	}
}

func (uc *userUsecase) UploadProfileImage(ctx context.Context, request *requests.UploadProfileImage) (*responses.ProfileImage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UploadProfileImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := utils.ValidateImage(request.FileHeader, uc.MaxUploadSizeInMByte)
	if err != nil {
		uc.Log.Error("userUsecase.UploadProfileImage invalid image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrImageValidation(err)
	}

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(request.File, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, exceptions.ErrImageValidation(err)
	}
	head = head[:n]

	err = utils.ValidateImageContent(head)
	if err != nil {
		uc.Log.Error("userUsecase.UploadProfileImage invalid image content",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrImageValidation(err)
	}

	file := io.MultiReader(bytes.NewReader(head), request.File)
	result, err := uc.UserBackendClient.UploadProfileImage(ctx, request.FileHeader.Filename, file)
	if err != nil {
		uc.Log.Error("userUsecase.UploadProfileImage error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.UploadProfileImage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return result, nil
}
