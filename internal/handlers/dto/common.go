package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domerrors "github.com/compartilhaedu/compartilhaedu-backend/internal/domain/errors"
)

// Envelope uniforme de resposta:
//   - sucesso: { "success": true, "data": ... }
//   - erro:    { "success": false, "error": { "code", "message", "details?" } }
type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type ErrorEnvelope struct {
	Success bool    `json:"success"`
	Error   ErroAPI `json:"error"`
}

type ErroAPI struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// PaginatedData é o formato padrão de listagens paginadas
type PaginatedData struct {
	Data  any   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// statusPorCodigo mapeia códigos de erro de domínio para status HTTP
var statusPorCodigo = map[string]int{
	"user_not_found":           http.StatusNotFound,
	"material_not_found":       http.StatusNotFound,
	"comentario_not_found":     http.StatusNotFound,
	"categoria_not_found":      http.StatusNotFound,
	"email_exists":             http.StatusConflict,
	"nickname_exists":          http.StatusConflict,
	"categoria_already_exists": http.StatusConflict,
	"invalid_credentials":      http.StatusUnauthorized,
	"unauthenticated":          http.StatusUnauthorized,
	"unauthorized":             http.StatusForbidden,
	"access_denied":            http.StatusForbidden,
	"admin_required":           http.StatusForbidden,
	"invalid_birthdate":        http.StatusBadRequest,
	"invalid_pagination":       http.StatusBadRequest,
	"invalid_input":            http.StatusBadRequest,
	"validation_error":         http.StatusBadRequest,
}

// RespondSuccess envia o envelope de sucesso.
// Uma resposta já escrita nunca é sobrescrita (guarda contra envio duplo).
func RespondSuccess(c *gin.Context, status int, data any) {
	if c.Writer.Written() {
		return
	}
	c.JSON(status, SuccessEnvelope{Success: true, Data: data})
}

// RespondError envia o envelope de erro com a mensagem traduzida para o
// idioma da requisição
func RespondError(c *gin.Context, status int, code string, details ...any) {
	if c.Writer.Written() {
		return
	}

	erro := ErroAPI{
		Code:    code,
		Message: T(c, code),
	}
	if len(details) > 0 {
		erro.Details = details[0]
	}

	c.JSON(status, ErrorEnvelope{Success: false, Error: erro})
}

// RespondDomainError converte um erro vindo dos services em resposta HTTP.
// Erros de domínio conhecidos usam seu código e status próprios; qualquer
// outro erro vira 500 com o código de fallback da operação e a mensagem
// subjacente em details.
func RespondDomainError(c *gin.Context, err error, fallbackCode string) {
	code := domerrors.Code(err, fallbackCode)

	if status, ok := statusPorCodigo[code]; ok {
		RespondError(c, status, code)
		return
	}

	RespondError(c, http.StatusInternalServerError, fallbackCode, err.Error())
}

// RespondValidationError envia o 400 padrão para binding/validação de entrada
func RespondValidationError(c *gin.Context, err error) {
	RespondError(c, http.StatusBadRequest, "validation_error", err.Error())
}
