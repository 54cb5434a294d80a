package dto

// Every response carries the success flag; failures add a message and,
// for validation, per-field detail strings.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func OK(data any) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

func OKMessage(message string, data any) SuccessResponse {
	return SuccessResponse{Success: true, Message: message, Data: data}
}

func Error(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

func ValidationError(details []string) ErrorResponse {
	return ErrorResponse{Success: false, Message: "Validation failed", Errors: details}
}
