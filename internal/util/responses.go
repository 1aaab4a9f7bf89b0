package util

import (
	"encoding/json"
	"net/http"
)

// ApiResponse : единый конверт успешного ответа.
// Формат общий для всех ресурсов и не меняется ради совместимости клиентов
type ApiResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// ApiErrorResponse : единый конверт ошибки
type ApiErrorResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
	Errors     []string    `json:"errors"`
}

func SendResponse(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ApiResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Errorf("ошибка кодирования ответа: %v", err)
	}
}

func HandleError(w http.ResponseWriter, message string, statusCode int, errs ...string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ApiErrorResponse{
		StatusCode: statusCode,
		Data:       nil,
		Message:    message,
		Success:    false,
		Errors:     errs,
	}
	if resp.Errors == nil {
		resp.Errors = []string{}
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Errorf("ошибка кодирования ответа: %v", err)
	}
}
