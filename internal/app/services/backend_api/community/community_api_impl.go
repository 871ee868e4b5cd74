package api_community

import (
	"context"
	"fmt"
	"net/url"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type communityBackendClient struct {
	Client contracts.BackendClient
	Log    *zap.Logger
}

func NewCommunityBackendClient(client contracts.BackendClient, logger *zap.Logger) contracts.CommunityBackendClient {
	return &communityBackendClient{
		Client: client,
		Log:    logger,
	}
}

func (c *communityBackendClient) FindTopics(ctx context.Context, category string) ([]models.Topic, error) {
	var query url.Values
	if category != "" {
		query = url.Values{"category": []string{category}}
	}

	topics := []models.Topic{}
	err := c.Client.Get(ctx, constvars.BackendPathCommunityTopics, query, &topics)
	if err != nil {
		return nil, err
	}
	return topics, nil
}

func (c *communityBackendClient) CreateTopic(ctx context.Context, request *requests.CreateTopic) (*models.Topic, error) {
	topic := new(models.Topic)
	err := c.Client.Post(ctx, constvars.BackendPathCommunityTopics, request, topic)
	if err != nil {
		return nil, err
	}
	return topic, nil
}

func (c *communityBackendClient) LikeTopic(ctx context.Context, topicID int) error {
	return c.Client.Post(ctx, fmt.Sprintf(constvars.BackendPathCommunityTopicLike, topicID), struct{}{}, nil)
}

func (c *communityBackendClient) FindComments(ctx context.Context, topicID int) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := c.Client.Get(ctx, fmt.Sprintf(constvars.BackendPathCommunityComments, topicID), nil, &comments)
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *communityBackendClient) CreateComment(ctx context.Context, topicID int, request *requests.CreateComment) (*models.Comment, error) {
	comment := new(models.Comment)
	err := c.Client.Post(ctx, fmt.Sprintf(constvars.BackendPathCommunityComments, topicID), request, comment)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (c *communityBackendClient) FindEvents(ctx context.Context) ([]models.Event, error) {
	events := []models.Event{}
	err := c.Client.Get(ctx, constvars.BackendPathCommunityEvents, nil, &events)
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (c *communityBackendClient) CreateEvent(ctx context.Context, request *requests.CreateEvent) (*models.Event, error) {
	event := new(models.Event)
	err := c.Client.Post(ctx, constvars.BackendPathCommunityEvents, request, event)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (c *communityBackendClient) JoinEvent(ctx context.Context, eventID int) error {
	return c.Client.Post(ctx, fmt.Sprintf(constvars.BackendPathCommunityEventJoin, eventID), struct{}{}, nil)
}
