package repositories

import (
	"context"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
)

// UsuarioRepository define a interface para persistência de usuários.
// Os métodos Find* ignoram registros deletados, exceto quando indicado.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entities.Usuario) error
	FindByID(ctx context.Context, id string) (*entities.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*entities.Usuario, error)
	FindByApelido(ctx context.Context, apelido string) (*entities.Usuario, error)
	// FindByApelidoComDeletados inclui registros soft-deletados (acesso admin)
	FindByApelidoComDeletados(ctx context.Context, apelido string) (*entities.Usuario, error)
	Update(ctx context.Context, usuario *entities.Usuario) error
	SearchByApelido(ctx context.Context, filtros UsuarioFiltros) ([]*entities.Usuario, int64, error)
}

// UsuarioFiltros contém filtros para busca de usuários
type UsuarioFiltros struct {
	Apelido string // Substring, case-insensitive
	Page    int    // Página (começa em 1)
	Limit   int    // Itens por página (default: 10, max: 100)
}
