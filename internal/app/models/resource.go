package models

type ResourceType string

const (
	ResourceTypeGuide   ResourceType = "guide"
	ResourceTypeVideo   ResourceType = "video"
	ResourceTypeArticle ResourceType = "article"
)

// Resource is an entry of the static learning catalog.
type Resource struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Type        ResourceType `json:"type"`
	Format      string       `json:"format"`
	Author      string       `json:"author"`
	Description string       `json:"description"`
	Tags        []string     `json:"tags"`
	Featured    bool         `json:"featured"`
	ObjectKey   string       `json:"-"`
	DownloadURL string       `json:"download_url,omitempty"`
}
