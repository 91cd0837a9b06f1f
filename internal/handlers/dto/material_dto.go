package dto

import (
	"time"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
)

// CriarMaterialRequest representa a publicação de um novo material.
// A categoria é referenciada pelo nome e precisa existir.
type CriarMaterialRequest struct {
	Titulo       string `json:"titulo" binding:"required"`
	Descricao    string `json:"descricao" binding:"omitempty"`
	Categoria    string `json:"categoria" binding:"required"`
	Conteudo     string `json:"conteudo" binding:"required"`
	ThumbnailURL string `json:"thumbnail_url" binding:"omitempty,url"`
}

// AtualizarMaterialRequest representa a edição parcial de um material.
// A flag só é aceita nas rotas administrativas.
type AtualizarMaterialRequest struct {
	Titulo       *string `json:"titulo" binding:"omitempty"`
	Descricao    *string `json:"descricao" binding:"omitempty"`
	Categoria    *string `json:"categoria" binding:"omitempty"`
	Conteudo     *string `json:"conteudo" binding:"omitempty"`
	Flag         *string `json:"flag" binding:"omitempty,oneof=aprovado reprovado analise"`
	ThumbnailURL *string `json:"thumbnail_url" binding:"omitempty,url"`
}

// AutorResponse identifica o autor de um material ou comentário
type AutorResponse struct {
	Nome    string `json:"nome"`
	Apelido string `json:"apelido"`
}

// MaterialResponse é a representação básica de um material
type MaterialResponse struct {
	ID              string     `json:"id"`
	Titulo          string     `json:"titulo"`
	Descricao       string     `json:"descricao,omitempty"`
	CategoriaID     string     `json:"categoria_id,omitempty"`
	Conteudo        string     `json:"conteudo"`
	Flag            string     `json:"flag"`
	ThumbnailURL    string     `json:"thumbnail_url,omitempty"`
	DataAprovacao   *time.Time `json:"data_aprovacao,omitempty"`
	UsuarioID       string     `json:"usuario_id"`
	DataCriacao     time.Time  `json:"data_criacao"`
	DataAtualizacao time.Time  `json:"data_atualizacao"`
}

// MaterialDetalheResponse acrescenta autor e nome da categoria
type MaterialDetalheResponse struct {
	MaterialResponse
	Autor     AutorResponse `json:"autor"`
	Categoria string        `json:"categoria,omitempty"`
}

// AnexoResponse representa um anexo de material
type AnexoResponse struct {
	ID          string `json:"id"`
	MaterialID  string `json:"material_id"`
	ArquivoURL  string `json:"arquivo_url"`
	ArquivoType string `json:"arquivo_type"`
}

// ToMaterialResponse converte a entidade para a representação básica
func ToMaterialResponse(m *entities.Material) MaterialResponse {
	return MaterialResponse{
		ID:              m.ID,
		Titulo:          m.Titulo,
		Descricao:       m.Descricao,
		CategoriaID:     m.CategoriaID,
		Conteudo:        m.Conteudo,
		Flag:            string(m.Flag),
		ThumbnailURL:    m.ThumbnailURL,
		DataAprovacao:   m.DataAprovacao,
		UsuarioID:       m.UsuarioID,
		DataCriacao:     m.CreatedAt,
		DataAtualizacao: m.UpdatedAt,
	}
}

// ToMaterialDetalheResponse converte a projeção com autor e categoria
func ToMaterialDetalheResponse(d *repositories.MaterialDetalhe) MaterialDetalheResponse {
	return MaterialDetalheResponse{
		MaterialResponse: ToMaterialResponse(&d.Material),
		Autor: AutorResponse{
			Nome:    d.AutorNome,
			Apelido: d.AutorApelido,
		},
		Categoria: d.CategoriaNome,
	}
}

// ToAnexoResponse converte a entidade de anexo
func ToAnexoResponse(a *entities.AnexoMaterial) AnexoResponse {
	return AnexoResponse{
		ID:          a.ID,
		MaterialID:  a.MaterialID,
		ArquivoURL:  a.ArquivoURL,
		ArquivoType: a.ArquivoType,
	}
}
