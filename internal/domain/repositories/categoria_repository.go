package repositories

import (
	"context"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
)

// CategoriaFiltros contém filtros para listagem de categorias
type CategoriaFiltros struct {
	Nome  string // Substring, case-insensitive
	Page  int
	Limit int
}

// CategoriaRepository define a interface para persistência de categorias
type CategoriaRepository interface {
	Create(ctx context.Context, categoria *entities.Categoria) error
	FindByID(ctx context.Context, id string) (*entities.Categoria, error)
	// FindByNome faz match exato (case-sensitive) pelo nome
	FindByNome(ctx context.Context, nome string) (*entities.Categoria, error)
	Update(ctx context.Context, categoria *entities.Categoria) error
	List(ctx context.Context, filtros CategoriaFiltros) ([]*entities.Categoria, int64, error)
}
