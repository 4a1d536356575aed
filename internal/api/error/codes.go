package error

import "net/http"

type ErrorCode string

const (
	UnknownError         ErrorCode = "unknown_error"
	InternalServerError  ErrorCode = "internal_server_error"
	BadRequest           ErrorCode = "bad_request"
	NotFound             ErrorCode = "not_found"
	MethodNotAllowed     ErrorCode = "method_not_allowed"
	RecipeNotFound       ErrorCode = "recipe_not_found"
	ImageHostError       ErrorCode = "image_host_error"
	UnsupportedMediaType ErrorCode = "unsupported_media_type"
	PayloadTooLarge      ErrorCode = "payload_too_large"
)

var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:         0, // No error code - unknown
	InternalServerError:  http.StatusInternalServerError,
	BadRequest:           http.StatusBadRequest,
	NotFound:             http.StatusNotFound,
	MethodNotAllowed:     http.StatusMethodNotAllowed,
	RecipeNotFound:       http.StatusNotFound,
	ImageHostError:       http.StatusBadGateway,
	UnsupportedMediaType: http.StatusUnsupportedMediaType,
	PayloadTooLarge:      http.StatusRequestEntityTooLarge,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}
