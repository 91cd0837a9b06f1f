package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/handlers/dto"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/services"
)

// MaterialHandler lida com requisições HTTP de materiais
type MaterialHandler struct {
	materialService *services.MaterialService
}

// NewMaterialHandler cria um novo MaterialHandler
func NewMaterialHandler(materialService *services.MaterialService) *MaterialHandler {
	return &MaterialHandler{
		materialService: materialService,
	}
}

// Listar retorna materiais paginados, com filtros opcionais de título,
// categoria e flag
func (h *MaterialHandler) Listar(c *gin.Context) {
	page, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	filtros := repositories.MaterialFiltros{
		Titulo:    c.Query("titulo"),
		Categoria: c.Query("categoria"),
		Page:      page,
		Limit:     limit,
	}

	if valor := c.Query("flag"); valor != "" {
		flag := entities.Flag(valor)
		if !flag.IsValid() {
			dto.RespondError(c, http.StatusBadRequest, "invalid_input")
			return
		}
		filtros.Flag = &flag
	}

	detalhes, total, err := h.materialService.Listar(c.Request.Context(), filtros)
	if err != nil {
		dto.RespondDomainError(c, err, "materiais_fetch_failed")
		return
	}

	materiais := make([]dto.MaterialDetalheResponse, 0, len(detalhes))
	for _, detalhe := range detalhes {
		materiais = append(materiais, dto.ToMaterialDetalheResponse(detalhe))
	}

	dto.RespondSuccess(c, http.StatusOK, dto.PaginatedData{
		Data:  materiais,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Criar publica um novo material em nome do usuário autenticado
func (h *MaterialHandler) Criar(c *gin.Context) {
	var req dto.CriarMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	material, err := h.materialService.Criar(c.Request.Context(), usuarioAutenticado(c), services.CriarMaterialInput{
		Titulo:       req.Titulo,
		Descricao:    req.Descricao,
		Categoria:    req.Categoria,
		Conteudo:     req.Conteudo,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		dto.RespondDomainError(c, err, "material_creation_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusCreated, dto.ToMaterialResponse(material))
}

// BuscarPorID retorna o detalhe de um material com autor e categoria
func (h *MaterialHandler) BuscarPorID(c *gin.Context) {
	detalhe, err := h.materialService.BuscarPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondDomainError(c, err, "material_fetch_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusOK, dto.ToMaterialDetalheResponse(detalhe))
}

// Atualizar edita um material do próprio usuário. A flag de moderação não é
// aceita nesta rota e a role embutida no token não dispensa a titularidade;
// a moderação passa pelas rotas /admin, que recarregam o usuário do banco.
func (h *MaterialHandler) Atualizar(c *gin.Context) {
	var req dto.AtualizarMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	material, err := h.materialService.Atualizar(c.Request.Context(), c.Param("id"), usuarioAutenticado(c), false, services.AtualizarMaterialInput{
		Titulo:       req.Titulo,
		Descricao:    req.Descricao,
		Categoria:    req.Categoria,
		Conteudo:     req.Conteudo,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		dto.RespondDomainError(c, err, "material_update_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusOK, dto.ToMaterialResponse(material))
}

// AtualizarAdmin edita qualquer material, incluindo a flag de moderação
func (h *MaterialHandler) AtualizarAdmin(c *gin.Context) {
	var req dto.AtualizarMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	material, err := h.materialService.Atualizar(c.Request.Context(), c.Param("id"), usuarioAutenticado(c), true, services.AtualizarMaterialInput{
		Titulo:       req.Titulo,
		Descricao:    req.Descricao,
		Categoria:    req.Categoria,
		Conteudo:     req.Conteudo,
		Flag:         req.Flag,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		dto.RespondDomainError(c, err, "material_update_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusOK, dto.ToMaterialResponse(material))
}

// Deletar faz o soft delete de um material do próprio usuário
func (h *MaterialHandler) Deletar(c *gin.Context) {
	err := h.materialService.Deletar(c.Request.Context(), c.Param("id"), usuarioAutenticado(c), false)
	if err != nil {
		dto.RespondDomainError(c, err, "material_deletion_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusOK, gin.H{"message": dto.T(c, "msg.material_deletado")})
}

// DeletarAdmin faz o soft delete de qualquer material
func (h *MaterialHandler) DeletarAdmin(c *gin.Context) {
	err := h.materialService.Deletar(c.Request.Context(), c.Param("id"), usuarioAutenticado(c), true)
	if err != nil {
		dto.RespondDomainError(c, err, "material_deletion_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusOK, gin.H{"message": dto.T(c, "msg.material_deletado")})
}

// ListarAnexos retorna os anexos de um material
func (h *MaterialHandler) ListarAnexos(c *gin.Context) {
	anexos, err := h.materialService.ListarAnexos(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondDomainError(c, err, "attachments_fetch_failed")
		return
	}

	respostas := make([]dto.AnexoResponse, 0, len(anexos))
	for _, anexo := range anexos {
		respostas = append(respostas, dto.ToAnexoResponse(anexo))
	}

	dto.RespondSuccess(c, http.StatusOK, respostas)
}
