package serverutils

// Response is the success envelope shared by all endpoints.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrResponse is the failure envelope. Error carries a caller-safe message
// only; internal detail stays in the logs.
type ErrResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func SuccessResponse(data interface{}) Response {
	return Response{Success: true, Data: data}
}

func MessageResponse(message string) Response {
	return Response{Success: true, Message: message}
}

func ErrorResponse(message string) ErrResponse {
	return ErrResponse{Success: false, Error: message}
}
