package repositories

import (
	"context"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
)

// MaterialDetalhe é a projeção de leitura de um material com os campos
// de exibição do autor e o nome da categoria resolvidos por join.
type MaterialDetalhe struct {
	entities.Material
	AutorNome     string
	AutorApelido  string
	CategoriaNome string
}

// MaterialFiltros contém filtros para listagem de materiais
type MaterialFiltros struct {
	Titulo    string         // Substring, case-insensitive
	Flag      *entities.Flag // Match exato
	Categoria string         // Substring do nome da categoria, case-insensitive
	Page      int
	Limit     int
}

// MaterialRepository define a interface para persistência de materiais
type MaterialRepository interface {
	Create(ctx context.Context, material *entities.Material) error
	FindByID(ctx context.Context, id string) (*entities.Material, error)
	FindDetalheByID(ctx context.Context, id string) (*MaterialDetalhe, error)
	Update(ctx context.Context, material *entities.Material) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filtros MaterialFiltros) ([]*MaterialDetalhe, int64, error)
}
