package resources

import (
	"context"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/pkg/constvars"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	TabAll      = "all"
	TabFeatured = "featured"
)

type resourceUsecase struct {
	Storage    contracts.Storage
	BucketName string
	Expiry     time.Duration
	Log        *zap.Logger
}

// NewResourceUsecase serves the static catalog. With a nil storage no download links are produced.
func NewResourceUsecase(storage contracts.Storage, bucketName string, expiry time.Duration, logger *zap.Logger) contracts.ResourceUsecase {
	return &resourceUsecase{
		Storage:    storage,
		BucketName: bucketName,
		Expiry:     expiry,
		Log:        logger,
	}
}

func (uc *resourceUsecase) FindAll(ctx context.Context, searchTerm, tab string) ([]models.Resource, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("resourceUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchTermKey, searchTerm),
		zap.String(constvars.LoggingTabKey, tab),
	)

	result := Filter(catalog, searchTerm, tab)
	if uc.Storage == nil {
		return result, nil
	}

	for i := range result {
		url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.BucketName, result[i].ObjectKey, uc.Expiry)
		if err != nil {
			uc.Log.Error("resourceUsecase.FindAll error presigning download",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int("resource_id", result[i].ID),
				zap.Error(err),
			)
			continue
		}
		result[i].DownloadURL = url
	}
	return result, nil
}

// Filter matches the term against title, description and tags, then narrows by tab.
// The result is a fresh slice that can be modified freely.
func Filter(resources []models.Resource, searchTerm, tab string) []models.Resource {
	needle := strings.ToLower(searchTerm)
	result := []models.Resource{}
	for _, resource := range resources {
		if !matchesResource(resource, needle) {
			continue
		}
		switch tab {
		case "", TabAll:
		case TabFeatured:
			if !resource.Featured {
				continue
			}
		default:
			if string(resource.Type) != tab {
				continue
			}
		}
		result = append(result, resource)
	}
	return result
}

func matchesResource(resource models.Resource, needle string) bool {
	if strings.Contains(strings.ToLower(resource.Title), needle) ||
		strings.Contains(strings.ToLower(resource.Description), needle) {
		return true
	}
	for _, tag := range resource.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
