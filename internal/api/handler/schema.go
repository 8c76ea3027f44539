package handler

// messageResponse is the standard envelope for confirmations and errors.
type messageResponse struct {
	Message string `json:"message"`
}
