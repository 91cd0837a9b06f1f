package repositories

import (
	"context"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
)

// AnexoRepository define a interface para persistência de anexos de materiais
type AnexoRepository interface {
	Create(ctx context.Context, anexo *entities.AnexoMaterial) error
	ListByMaterial(ctx context.Context, materialID string) ([]*entities.AnexoMaterial, error)
}
