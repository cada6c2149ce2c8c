package models

// Response is the JSON error/validation envelope of the API.
type Response struct {
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}

// Page is one page of a search result. Pages is ceil(Total/Size); an
// out-of-range page carries an empty Items with Total/Pages intact.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Size  int `json:"size"`
}
