package repositories

import (
	"context"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
)

// ComentarioDetalhe é a projeção de leitura de um comentário com os
// campos de exibição do autor resolvidos por join.
type ComentarioDetalhe struct {
	entities.Comentario
	AutorNome    string
	AutorApelido string
}

// ComentarioFiltros contém filtros para listagem de comentários de um material
type ComentarioFiltros struct {
	MaterialID string
	UsuarioID  string // Opcional: filtra pelo autor
	Ordem      string // "asc" ou "desc" (default: desc, por data de criação)
	Page       int
	Limit      int
}

// ComentarioRepository define a interface para persistência de comentários
type ComentarioRepository interface {
	Create(ctx context.Context, comentario *entities.Comentario) error
	FindByID(ctx context.Context, id string) (*entities.Comentario, error)
	Update(ctx context.Context, comentario *entities.Comentario) error
	Delete(ctx context.Context, id string) error
	ListByMaterial(ctx context.Context, filtros ComentarioFiltros) ([]*ComentarioDetalhe, int64, error)
}
