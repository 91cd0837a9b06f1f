package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
	domerrors "github.com/compartilhaedu/compartilhaedu-backend/internal/domain/errors"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/handlers/dto"
)

// UsuarioAtualContextKey guarda o usuário recarregado do banco pelos
// middlewares de autorização
const UsuarioAtualContextKey = "usuario_atual"

// AuthzMiddleware aplica as regras de autorização por role e titularidade.
// O usuário é sempre recarregado do banco, de modo que contas deletadas ou
// rebaixadas perdem acesso imediatamente, mesmo com token ainda válido.
type AuthzMiddleware struct {
	usuarios repositories.UsuarioRepository
}

// NewAuthzMiddleware cria um novo AuthzMiddleware
func NewAuthzMiddleware(usuarios repositories.UsuarioRepository) *AuthzMiddleware {
	return &AuthzMiddleware{usuarios: usuarios}
}

// RequireAdmin exige que o usuário autenticado exista e seja admin
func (m *AuthzMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		usuario, ok := m.carregaUsuario(c)
		if !ok {
			return
		}

		if !usuario.IsAdmin() {
			dto.RespondError(c, http.StatusForbidden, domerrors.ErrAdminNecessario.Error())
			c.Abort()
			return
		}

		c.Set(UsuarioAtualContextKey, usuario)
		c.Next()
	}
}

// RequireSelfOrAdmin permite o acesso ao dono do recurso ou a um admin.
// O parâmetro de rota indicado é comparado com o id ou o apelido do
// usuário autenticado.
func (m *AuthzMiddleware) RequireSelfOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuario, ok := m.carregaUsuario(c)
		if !ok {
			return
		}

		if !usuario.IsAdmin() {
			valor := c.Param(param)

			proprio := usuario.ID == valor
			if param == "apelido" {
				proprio = usuario.Apelido == valor
			}

			if !proprio {
				dto.RespondError(c, http.StatusForbidden, domerrors.ErrAcessoNegado.Error())
				c.Abort()
				return
			}
		}

		c.Set(UsuarioAtualContextKey, usuario)
		c.Next()
	}
}

// carregaUsuario recarrega do banco o usuário identificado pelo token.
// Contas deletadas não são encontradas e resultam em 404.
func (m *AuthzMiddleware) carregaUsuario(c *gin.Context) (*entities.Usuario, bool) {
	usuarioID := c.GetString(UsuarioIDContextKey)

	usuario, err := m.usuarios.FindByID(c.Request.Context(), usuarioID)
	if err != nil {
		dto.RespondError(c, http.StatusInternalServerError, "auth_check_failed", err.Error())
		c.Abort()
		return nil, false
	}
	if usuario == nil {
		dto.RespondError(c, http.StatusNotFound, domerrors.ErrUsuarioNaoEncontrado.Error())
		c.Abort()
		return nil, false
	}

	return usuario, true
}
