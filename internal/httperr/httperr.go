package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextRequestID é a chave do gin.Context onde o middleware guarda o id
// da requisição; o envelope de erro o repete para facilitar o suporte.
const ContextRequestID = "requestID"

type HTTPError struct {
	Code      string `json:"error_code"`
	Field     string `json:"field,omitempty"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// códigos de negócio que não são 400
var statusByCode = map[string]int{
	"forbidden":              http.StatusForbidden,
	"barbershop_cannot_book": http.StatusForbidden,

	"barbershop_not_found":  http.StatusNotFound,
	"reservation_not_found": http.StatusNotFound,
	"comment_not_found":     http.StatusNotFound,
	"service_not_found":     http.StatusNotFound,

	"slot_taken":     http.StatusConflict,
	"invalid_state":  http.StatusConflict,
	"comment_exists": http.StatusConflict,
}

// StatusOf devolve o status HTTP de um código de negócio.
func StatusOf(code string) int {
	if st, ok := statusByCode[code]; ok {
		return st
	}
	return http.StatusBadRequest
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:      code,
		Message:   message,
		RequestID: c.GetString(ContextRequestID),
	})
}

// WriteBusiness escreve um BusinessError preservando o campo ofensor.
func WriteBusiness(c *gin.Context, be BusinessError) {
	c.JSON(StatusOf(be.Code), HTTPError{
		Code:      be.Code,
		Field:     be.Field,
		Message:   be.Message,
		RequestID: c.GetString(ContextRequestID),
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}
