package models

// Topic categories offered by the forum.
const (
	TopicCategorySupport   = "support"
	TopicCategoryResources = "resources"
	TopicCategorySuccess   = "success"
	TopicCategoryConnect   = "connect"
)

type CommunityMember struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

type TopicTag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Topic struct {
	ID        int             `json:"id"`
	Title     string          `json:"title"`
	Content   string          `json:"content,omitempty"`
	Category  string          `json:"category"`
	UserID    int             `json:"user_id"`
	CreatedAt Timestamp       `json:"created_at"`
	Likes     int             `json:"likes"`
	User      CommunityMember `json:"user"`
	Comments  []Comment       `json:"comments"`
	Tags      []TopicTag      `json:"tags"`
}

type Comment struct {
	ID        int             `json:"id"`
	Content   string          `json:"content"`
	UserID    int             `json:"user_id"`
	TopicID   int             `json:"topic_id"`
	CreatedAt Timestamp       `json:"created_at"`
	Likes     int             `json:"likes"`
	User      CommunityMember `json:"user"`
}

type Event struct {
	ID          int               `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Location    string            `json:"location"`
	CreatedBy   int               `json:"created_by"`
	Creator     CommunityMember   `json:"creator"`
	Attendees   []CommunityMember `json:"attendees"`
}
