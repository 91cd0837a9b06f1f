package dto

import (
	"time"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
)

// CriarComentarioRequest representa um novo comentário em um material
type CriarComentarioRequest struct {
	Conteudo string `json:"conteudo" binding:"required"`
}

// AtualizarComentarioRequest representa a edição de um comentário
type AtualizarComentarioRequest struct {
	Conteudo string `json:"conteudo" binding:"required"`
}

// ComentarioResponse é a representação básica de um comentário
type ComentarioResponse struct {
	ID              string    `json:"id"`
	Conteudo        string    `json:"conteudo"`
	UsuarioID       string    `json:"usuario_id"`
	MaterialID      string    `json:"material_id"`
	DataCriacao     time.Time `json:"data_criacao"`
	DataAtualizacao time.Time `json:"data_atualizacao"`
}

// ComentarioDetalheResponse acrescenta o autor do comentário
type ComentarioDetalheResponse struct {
	ComentarioResponse
	Autor AutorResponse `json:"autor"`
}

// ToComentarioResponse converte a entidade para a representação básica
func ToComentarioResponse(c *entities.Comentario) ComentarioResponse {
	return ComentarioResponse{
		ID:              c.ID,
		Conteudo:        c.Conteudo,
		UsuarioID:       c.UsuarioID,
		MaterialID:      c.MaterialID,
		DataCriacao:     c.CreatedAt,
		DataAtualizacao: c.UpdatedAt,
	}
}

// ToComentarioDetalheResponse converte a projeção com autor
func ToComentarioDetalheResponse(d *repositories.ComentarioDetalhe) ComentarioDetalheResponse {
	return ComentarioDetalheResponse{
		ComentarioResponse: ToComentarioResponse(&d.Comentario),
		Autor: AutorResponse{
			Nome:    d.AutorNome,
			Apelido: d.AutorApelido,
		},
	}
}
