package community

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

var topicCategories = map[string]bool{
	models.TopicCategorySupport:   true,
	models.TopicCategoryResources: true,
	models.TopicCategorySuccess:   true,
	models.TopicCategoryConnect:   true,
}

type communityUsecase struct {
	CommunityBackendClient contracts.CommunityBackendClient
	Log                    *zap.Logger
}

func NewCommunityUsecase(communityBackendClient contracts.CommunityBackendClient, logger *zap.Logger) contracts.CommunityUsecase {
	return &communityUsecase{
		CommunityBackendClient: communityBackendClient,
		Log:                    logger,
	}
}

// FindTopics lists forum topics. An empty category lists every category.
func (uc *communityUsecase) FindTopics(ctx context.Context, category string) ([]models.Topic, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("communityUsecase.FindTopics called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCategoryKey, category),
	)

	if category != "" && !topicCategories[category] {
		return nil, exceptions.ErrClientValidation(nil, "category must be one of [support, resources, success, connect]")
	}
	return uc.CommunityBackendClient.FindTopics(ctx, category)
}

func (uc *communityUsecase) CreateTopic(ctx context.Context, request *requests.CreateTopic) (*models.Topic, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return uc.CommunityBackendClient.CreateTopic(ctx, request)
}

func (uc *communityUsecase) LikeTopic(ctx context.Context, topicID int) error {
	return uc.CommunityBackendClient.LikeTopic(ctx, topicID)
}

func (uc *communityUsecase) FindComments(ctx context.Context, topicID int) ([]models.Comment, error) {
	return uc.CommunityBackendClient.FindComments(ctx, topicID)
}

func (uc *communityUsecase) CreateComment(ctx context.Context, topicID int, request *requests.CreateComment) (*models.Comment, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return uc.CommunityBackendClient.CreateComment(ctx, topicID, request)
}

func (uc *communityUsecase) FindEvents(ctx context.Context) ([]models.Event, error) {
	return uc.CommunityBackendClient.FindEvents(ctx)
}

func (uc *communityUsecase) CreateEvent(ctx context.Context, request *requests.CreateEvent) (*models.Event, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return uc.CommunityBackendClient.CreateEvent(ctx, request)
}

func (uc *communityUsecase) JoinEvent(ctx context.Context, eventID int) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	err := uc.CommunityBackendClient.JoinEvent(ctx, eventID)
	if err != nil {
		uc.Log.Error("communityUsecase.JoinEvent error joining event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
