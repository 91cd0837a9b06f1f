package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/handlers/dto"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/services"
)

// UsuarioHandler lida com requisições HTTP de usuários e configurações de conta
type UsuarioHandler struct {
	usuarioService *services.UsuarioService
}

// NewUsuarioHandler cria um novo UsuarioHandler
func NewUsuarioHandler(usuarioService *services.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{
		usuarioService: usuarioService,
	}
}

// Search busca usuários por substring do apelido
func (h *UsuarioHandler) Search(c *gin.Context) {
	page, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	usuarios, total, err := h.usuarioService.SearchByApelido(c.Request.Context(), c.Query("apelido"), page, limit)
	if err != nil {
		dto.RespondDomainError(c, err, "user_search_failed")
		return
	}

	resumos := make([]dto.UsuarioResumoResponse, 0, len(usuarios))
	for _, usuario := range usuarios {
		resumos = append(resumos, dto.ToUsuarioResumoResponse(usuario))
	}

	dto.RespondSuccess(c, http.StatusOK, dto.PaginatedData{
		Data:  resumos,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// PerfilPublico retorna o perfil público de um usuário pelo apelido
func (h *UsuarioHandler) PerfilPublico(c *gin.Context) {
	usuario, err := h.usuarioService.PerfilPublico(c.Request.Context(), c.Param("apelido"))
	if err != nil {
		dto.RespondDomainError(c, err, "user_fetch_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusOK, dto.ToPerfilPublicoResponse(usuario))
}

// PerfilAdmin retorna o registro completo de um usuário, incluindo deletados
func (h *UsuarioHandler) PerfilAdmin(c *gin.Context) {
	usuario, err := h.usuarioService.PerfilAdmin(c.Request.Context(), c.Param("apelido"))
	if err != nil {
		dto.RespondDomainError(c, err, "user_fetch_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusOK, dto.ToPerfilAdminResponse(usuario))
}

// Atualizar atualiza parcialmente um usuário (rota administrativa)
func (h *UsuarioHandler) Atualizar(c *gin.Context) {
	var req dto.AtualizarUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	dataNascimento, ok := parseDataNascimento(c, req.DataNascimento)
	if !ok {
		return
	}

	usuario, err := h.usuarioService.Atualizar(c.Request.Context(), c.Param("id"), services.AtualizarUsuarioInput{
		Email:          req.Email,
		Nome:           req.Nome,
		Apelido:        req.Apelido,
		Bio:            req.Bio,
		AvatarURL:      req.AvatarURL,
		BannerURL:      req.BannerURL,
		Senha:          req.Senha,
		DataNascimento: dataNascimento,
	})
	if err != nil {
		dto.RespondDomainError(c, err, "user_update_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusOK, dto.ToPerfilAdminResponse(usuario))
}

// Deletar deleta a conta de um usuário mediante a senha do admin autenticado
func (h *UsuarioHandler) Deletar(c *gin.Context) {
	var req dto.DeletarContaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	err := h.usuarioService.DeletarPorAdmin(c.Request.Context(), usuarioAutenticado(c), c.Param("id"), req.Senha)
	if err != nil {
		dto.RespondDomainError(c, err, "user_deletion_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusOK, gin.H{"message": dto.T(c, "msg.conta_deletada")})
}

// AtualizarPerfil atualiza nome e/ou bio do usuário autenticado
func (h *UsuarioHandler) AtualizarPerfil(c *gin.Context) {
	var req dto.AtualizarPerfilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	err := h.usuarioService.AtualizarPerfil(c.Request.Context(), usuarioAutenticado(c), req.Nome, req.Bio)
	if err != nil {
		dto.RespondDomainError(c, err, "profile_update_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusOK, gin.H{"message": dto.T(c, "msg.perfil_atualizado")})
}

// AtualizarSenha troca a senha do usuário autenticado
func (h *UsuarioHandler) AtualizarSenha(c *gin.Context) {
	var req dto.AtualizarSenhaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	err := h.usuarioService.AtualizarSenha(c.Request.Context(), usuarioAutenticado(c), req.SenhaAtual, req.SenhaNova)
	if err != nil {
		dto.RespondDomainError(c, err, "password_update_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusOK, gin.H{"message": dto.T(c, "msg.senha_atualizada")})
}

// AtualizarAvatar troca a URL do avatar do usuário autenticado
func (h *UsuarioHandler) AtualizarAvatar(c *gin.Context) {
	var req dto.AtualizarAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	err := h.usuarioService.AtualizarAvatar(c.Request.Context(), usuarioAutenticado(c), req.AvatarURL)
	if err != nil {
		dto.RespondDomainError(c, err, "avatar_update_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusOK, gin.H{"message": dto.T(c, "msg.avatar_atualizado")})
}

// AtualizarBanner troca a URL do banner do usuário autenticado
func (h *UsuarioHandler) AtualizarBanner(c *gin.Context) {
	var req dto.AtualizarBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	err := h.usuarioService.AtualizarBanner(c.Request.Context(), usuarioAutenticado(c), req.BannerURL)
	if err != nil {
		dto.RespondDomainError(c, err, "banner_update_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusOK, gin.H{"message": dto.T(c, "msg.banner_atualizado")})
}

// DeletarConta deleta a própria conta mediante confirmação da senha
func (h *UsuarioHandler) DeletarConta(c *gin.Context) {
	var req dto.DeletarContaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	err := h.usuarioService.Deletar(c.Request.Context(), usuarioAutenticado(c), req.Senha)
	if err != nil {
		dto.RespondDomainError(c, err, "account_deletion_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusOK, gin.H{"message": dto.T(c, "msg.conta_deletada")})
}
