package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/handlers/dto"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/services"
)

// LikeHandler lida com requisições HTTP de curtidas
type LikeHandler struct {
	likeService *services.LikeService
}

// NewLikeHandler cria um novo LikeHandler
func NewLikeHandler(likeService *services.LikeService) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
	}
}

// Toggle alterna a curtida do usuário autenticado no material
func (h *LikeHandler) Toggle(c *gin.Context) {
	curtido, err := h.likeService.Toggle(c.Request.Context(), c.Param("materialId"), usuarioAutenticado(c))
	if err != nil {
		dto.RespondDomainError(c, err, "like_toggle_failed")
		return
	}

	chave := "msg.curtida_removida"
	if curtido {
		chave = "msg.curtida_adicionada"
	}

	dto.RespondSuccess(c, http.StatusOK, gin.H{
		"curtido": curtido,
		"message": dto.T(c, chave),
	})
}

// Contar retorna o total de curtidas de um material
func (h *LikeHandler) Contar(c *gin.Context) {
	total, err := h.likeService.ContarPorMaterial(c.Request.Context(), c.Param("materialId"))
	if err != nil {
		dto.RespondDomainError(c, err, "likes_fetch_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusOK, gin.H{"total": total})
}
