package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/handlers/dto"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/services"
)

// CategoriaHandler lida com requisições HTTP de categorias
type CategoriaHandler struct {
	categoriaService *services.CategoriaService
}

// NewCategoriaHandler cria um novo CategoriaHandler
func NewCategoriaHandler(categoriaService *services.CategoriaService) *CategoriaHandler {
	return &CategoriaHandler{
		categoriaService: categoriaService,
	}
}

// Adicionar cria uma categoria com nome único
func (h *CategoriaHandler) Adicionar(c *gin.Context) {
	var req dto.AdicionarCategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	categoria, err := h.categoriaService.Adicionar(c.Request.Context(), req.Nome, req.Descricao)
	if err != nil {
		dto.RespondDomainError(c, err, "categoria_add_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusCreated, dto.ToCategoriaResponse(categoria))
}

// Atualizar edita parcialmente uma categoria
func (h *CategoriaHandler) Atualizar(c *gin.Context) {
	var req dto.AtualizarCategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	categoria, err := h.categoriaService.Atualizar(c.Request.Context(), c.Param("id"), req.Nome, req.Descricao)
	if err != nil {
		dto.RespondDomainError(c, err, "categoria_update_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusOK, dto.ToCategoriaResponse(categoria))
}

// Listar retorna categorias filtradas por substring do nome
func (h *CategoriaHandler) Listar(c *gin.Context) {
	page, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	categorias, total, err := h.categoriaService.Listar(c.Request.Context(), repositories.CategoriaFiltros{
		Nome:  c.Query("nome"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		dto.RespondDomainError(c, err, "categoria_fetch_failed")
		return
	}

	respostas := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, categoria := range categorias {
		respostas = append(respostas, dto.ToCategoriaResponse(categoria))
	}

	dto.RespondSuccess(c, http.StatusOK, dto.PaginatedData{
		Data:  respostas,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
