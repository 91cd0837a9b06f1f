package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domerrors "github.com/compartilhaedu/compartilhaedu-backend/internal/domain/errors"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/handlers/dto"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/handlers/middleware"
)

// parsePagination lê page e limit da query string. Valores não numéricos ou
// não positivos resultam em 400 invalid_pagination e resposta já escrita.
func parsePagination(c *gin.Context) (int, int, bool) {
	page, ok := parseParamPositivo(c, "page", 1)
	if !ok {
		return 0, 0, false
	}

	limit, ok := parseParamPositivo(c, "limit", 10)
	if !ok {
		return 0, 0, false
	}

	return page, limit, true
}

func parseParamPositivo(c *gin.Context, nome string, padrao int) (int, bool) {
	valor := c.Query(nome)
	if valor == "" {
		return padrao, true
	}

	n, err := strconv.Atoi(valor)
	if err != nil || n < 1 {
		dto.RespondError(c, http.StatusBadRequest, domerrors.ErrPaginacaoInvalida.Error())
		return 0, false
	}

	return n, true
}

// usuarioAutenticado retorna o id do usuário colocado no contexto pelo
// middleware de autenticação
func usuarioAutenticado(c *gin.Context) string {
	return c.GetString(middleware.UsuarioIDContextKey)
}
