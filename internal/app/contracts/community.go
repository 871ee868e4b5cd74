package contracts

import (
	"context"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/pkg/dto/requests"
)

type CommunityBackendClient interface {
	FindTopics(ctx context.Context, category string) ([]models.Topic, error)
	CreateTopic(ctx context.Context, request *requests.CreateTopic) (*models.Topic, error)
	LikeTopic(ctx context.Context, topicID int) error
	FindComments(ctx context.Context, topicID int) ([]models.Comment, error)
	CreateComment(ctx context.Context, topicID int, request *requests.CreateComment) (*models.Comment, error)
	FindEvents(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, request *requests.CreateEvent) (*models.Event, error)
	JoinEvent(ctx context.Context, eventID int) error
}

type CommunityUsecase interface {
	FindTopics(ctx context.Context, category string) ([]models.Topic, error)
	CreateTopic(ctx context.Context, request *requests.CreateTopic) (*models.Topic, error)
	LikeTopic(ctx context.Context, topicID int) error
	FindComments(ctx context.Context, topicID int) ([]models.Comment, error)
	CreateComment(ctx context.Context, topicID int, request *requests.CreateComment) (*models.Comment, error)
	FindEvents(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, request *requests.CreateEvent) (*models.Event, error)
	JoinEvent(ctx context.Context, eventID int) error
}
