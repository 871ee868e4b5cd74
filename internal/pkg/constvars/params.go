package constvars

const (
	URLParamID = "id"
)

const (
	URLQueryParamSearch   = "search"
	URLQueryParamTab      = "tab"
	URLQueryParamDate     = "date"
	URLQueryParamCategory = "category"
)
