package requests

type CreateTopic struct {
	Title    string   `json:"title" validate:"required,max=200"`
	Content  string   `json:"content,omitempty"`
	Category string   `json:"category" validate:"required,oneof=support resources success connect"`
	Tags     []string `json:"tags,omitempty"`
}

type CreateComment struct {
	Content string `json:"content" validate:"required"`
}

type CreateEvent struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location" validate:"required"`
}
