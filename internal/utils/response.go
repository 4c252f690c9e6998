package utils

import "net/http"

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"` // null in JSON when there is nothing to return
}

func NewResponse(status int, message string, data any) Response {
	return Response{
		Status:  status,
		Message: message,
		Data:    data,
	}
}

// NewSuccessResponse creates a 200 Response.
func NewSuccessResponse(message string, data any) Response {
	return NewResponse(http.StatusOK, message, data)
}

// NewErrorResponse creates an error Response with no data.
func NewErrorResponse(status int, message string) Response {
	return NewResponse(status, message, nil)
}
