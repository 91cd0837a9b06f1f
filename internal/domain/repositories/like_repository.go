package repositories

import (
	"context"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
)

// LikeRepository define a interface para persistência de curtidas.
// Likes são removidos fisicamente: descurtir apaga a linha.
type LikeRepository interface {
	Create(ctx context.Context, like *entities.Like) error
	FindByUsuarioEMaterial(ctx context.Context, usuarioID, materialID string) (*entities.Like, error)
	Delete(ctx context.Context, id string) error
	CountByMaterial(ctx context.Context, materialID string) (int64, error)
}
