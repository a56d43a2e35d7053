package httpapi

import (
	"encoding/json"
	"net/http"
)

// Response is the normalized outbound response
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// corsHeaders returns the permissive cross-origin headers attached to every
// response, pre-flight answers included.
func corsHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
		"Access-Control-Allow-Headers": "Origin, Content-Type, Accept, Authorization",
	}
}

// JSON builds a response with the given status and JSON-encoded body
func JSON(statusCode int, v interface{}) *Response {
	body, err := json.Marshal(v)
	if err != nil {
		return &Response{
			StatusCode: http.StatusInternalServerError,
			Headers:    corsHeaders(),
			Body:       []byte(`{"error":"Failed to encode response"}`),
		}
	}
	return &Response{
		StatusCode: statusCode,
		Headers:    corsHeaders(),
		Body:       body,
	}
}

// Error builds an error response with a JSON body carrying an "error" field
func Error(statusCode int, message string) *Response {
	return JSON(statusCode, map[string]string{"error": message})
}
