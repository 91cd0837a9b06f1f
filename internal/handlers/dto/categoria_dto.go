package dto

import (
	"time"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
)

// AdicionarCategoriaRequest representa a criação de uma categoria
type AdicionarCategoriaRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Descricao string `json:"descricao" binding:"omitempty"`
}

// AtualizarCategoriaRequest representa a edição parcial de uma categoria
type AtualizarCategoriaRequest struct {
	Nome      *string `json:"nome" binding:"omitempty"`
	Descricao *string `json:"descricao" binding:"omitempty"`
}

// CategoriaResponse é a representação de uma categoria
type CategoriaResponse struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	Descricao   string    `json:"descricao,omitempty"`
	DataCriacao time.Time `json:"data_criacao"`
}

// ToCategoriaResponse converte a entidade de categoria
func ToCategoriaResponse(c *entities.Categoria) CategoriaResponse {
	return CategoriaResponse{
		ID:          c.ID,
		Nome:        c.Nome,
		Descricao:   c.Descricao,
		DataCriacao: c.CreatedAt,
	}
}
