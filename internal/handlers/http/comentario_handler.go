package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/handlers/dto"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/services"
)

// ComentarioHandler lida com requisições HTTP de comentários
type ComentarioHandler struct {
	comentarioService *services.ComentarioService
}

// NewComentarioHandler cria um novo ComentarioHandler
func NewComentarioHandler(comentarioService *services.ComentarioService) *ComentarioHandler {
	return &ComentarioHandler{
		comentarioService: comentarioService,
	}
}

// Criar adiciona um comentário ao material informado
func (h *ComentarioHandler) Criar(c *gin.Context) {
	var req dto.CriarComentarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	comentario, err := h.comentarioService.Criar(c.Request.Context(), c.Param("materialId"), usuarioAutenticado(c), req.Conteudo)
	if err != nil {
		dto.RespondDomainError(c, err, "comentario_creation_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusCreated, dto.ToComentarioResponse(comentario))
}

// ListarPorMaterial retorna os comentários de um material, paginados.
// O parâmetro ?ordem=asc inverte a ordenação padrão (mais recentes primeiro)
// e ?usuarioId restringe aos comentários de um autor.
func (h *ComentarioHandler) ListarPorMaterial(c *gin.Context) {
	page, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	detalhes, total, err := h.comentarioService.ListarPorMaterial(c.Request.Context(), repositories.ComentarioFiltros{
		MaterialID: c.Param("materialId"),
		UsuarioID:  c.Query("usuarioId"),
		Ordem:      c.Query("ordem"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		dto.RespondDomainError(c, err, "comentarios_fetch_failed")
		return
	}

	comentarios := make([]dto.ComentarioDetalheResponse, 0, len(detalhes))
	for _, detalhe := range detalhes {
		comentarios = append(comentarios, dto.ToComentarioDetalheResponse(detalhe))
	}

	dto.RespondSuccess(c, http.StatusOK, dto.PaginatedData{
		Data:  comentarios,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Atualizar edita um comentário do próprio usuário. A moderação passa
// pelas rotas /admin, que recarregam o usuário do banco; a role embutida
// no token não concede passe aqui.
func (h *ComentarioHandler) Atualizar(c *gin.Context) {
	h.atualizar(c, false)
}

// AtualizarAdmin edita qualquer comentário
func (h *ComentarioHandler) AtualizarAdmin(c *gin.Context) {
	h.atualizar(c, true)
}

func (h *ComentarioHandler) atualizar(c *gin.Context, admin bool) {
	var req dto.AtualizarComentarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	comentario, err := h.comentarioService.Atualizar(c.Request.Context(), c.Param("id"), usuarioAutenticado(c), admin, req.Conteudo)
	if err != nil {
		dto.RespondDomainError(c, err, "comentario_update_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusOK, dto.ToComentarioResponse(comentario))
}

// Deletar faz o soft delete de um comentário do próprio usuário
func (h *ComentarioHandler) Deletar(c *gin.Context) {
	h.deletar(c, false)
}

// DeletarAdmin faz o soft delete de qualquer comentário
func (h *ComentarioHandler) DeletarAdmin(c *gin.Context) {
	h.deletar(c, true)
}

func (h *ComentarioHandler) deletar(c *gin.Context, admin bool) {
	err := h.comentarioService.Deletar(c.Request.Context(), c.Param("id"), usuarioAutenticado(c), admin)
	if err != nil {
		dto.RespondDomainError(c, err, "comentario_deletion_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusOK, gin.H{"message": dto.T(c, "msg.comentario_removido")})
}
