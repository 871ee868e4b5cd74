package responses

type ResponseDTO struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Notice     *Notice     `json:"notice,omitempty"`
	RedirectTo string      `json:"redirect_to,omitempty"`
}

// Notice is the transient message a view shows after an action.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}
