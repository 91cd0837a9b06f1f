package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domerrors "github.com/compartilhaedu/compartilhaedu-backend/internal/domain/errors"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/handlers/dto"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/infrastructure/auth"
)

// Chaves do contexto preenchidas pelo middleware de autenticação
const (
	UsuarioIDContextKey   = "usuario_id"
	UsuarioRoleContextKey = "usuario_role"
)

// AuthMiddleware valida o token Bearer das rotas protegidas
type AuthMiddleware struct {
	tokens *auth.TokenManager
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(tokens *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle exige um header "Authorization: Bearer <token>" válido.
// Token ausente ou malformado resulta em 401; token inválido ou
// expirado resulta em 403.
func (m *AuthMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			dto.RespondError(c, http.StatusUnauthorized, domerrors.ErrNaoAutenticado.Error())
			c.Abort()
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			dto.RespondError(c, http.StatusUnauthorized, domerrors.ErrNaoAutenticado.Error())
			c.Abort()
			return
		}

		claims, err := m.tokens.Verify(tokenString)
		if err != nil {
			dto.RespondError(c, http.StatusForbidden, domerrors.ErrNaoAutorizado.Error())
			c.Abort()
			return
		}

		c.Set(UsuarioIDContextKey, claims.Subject)
		c.Set(UsuarioRoleContextKey, claims.Role)
		c.Next()
	}
}
