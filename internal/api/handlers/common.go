package handlers

import jsoniter "github.com/json-iterator/go"

// json - drop-in замена encoding/json. Ответы дашборда сериализуются
// на каждый запрос и каждую рассылку, jsoniter заметно дешевле.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorResponse стандартный формат ответа об ошибке для всех API endpoints
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse стандартный формат успешного ответа
type SuccessResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
