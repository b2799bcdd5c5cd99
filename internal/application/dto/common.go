package dto

import "time"

// ServiceResponse sobre uniforme de toda operación de escritura: indicador
// de éxito, mensaje legible, timestamp UTC y payload (cero de T en fallo si
// no hay payload que devolver). Las lecturas no usan el sobre: devuelven el
// dato directamente o su ausencia.
type ServiceResponse[T any] struct {
	IsSuccess bool      `json:"isSuccess"`
	Message   string    `json:"message"`
	Time      time.Time `json:"time"`
	Data      T         `json:"data"`
}

// OK construye un sobre exitoso.
func OK[T any](data T, message string, now time.Time) ServiceResponse[T] {
	return ServiceResponse[T]{IsSuccess: true, Message: message, Time: now, Data: data}
}

// Fail construye un sobre fallido.
func Fail[T any](data T, message string, now time.Time) ServiceResponse[T] {
	return ServiceResponse[T]{IsSuccess: false, Message: message, Time: now, Data: data}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
