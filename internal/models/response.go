package models

// MessageResponse is the envelope returned by every write operation.
type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
