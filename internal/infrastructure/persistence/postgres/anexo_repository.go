package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
)

// AnexoRepository implementa repositories.AnexoRepository
type AnexoRepository struct {
	db *gorm.DB
}

// NewAnexoRepository cria um novo AnexoRepository
func NewAnexoRepository(db *gorm.DB) repositories.AnexoRepository {
	return &AnexoRepository{db: db}
}

func (r *AnexoRepository) Create(ctx context.Context, anexo *entities.AnexoMaterial) error {
	model := &AnexoMaterialModel{
		ID:          anexo.ID,
		MaterialID:  anexo.MaterialID,
		ArquivoURL:  anexo.ArquivoURL,
		ArquivoType: anexo.ArquivoType,
	}

	db := getDB(ctx, r.db)
	if err := db.Omit("Material").Create(model).Error; err != nil {
		return err
	}

	anexo.ID = model.ID
	return nil
}

func (r *AnexoRepository) ListByMaterial(ctx context.Context, materialID string) ([]*entities.AnexoMaterial, error) {
	var models []*AnexoMaterialModel

	db := getDB(ctx, r.db)
	if err := db.Where("material_id = ?", materialID).Find(&models).Error; err != nil {
		return nil, err
	}

	anexos := make([]*entities.AnexoMaterial, 0, len(models))
	for _, model := range models {
		anexos = append(anexos, &entities.AnexoMaterial{
			ID:          model.ID,
			MaterialID:  model.MaterialID,
			ArquivoURL:  model.ArquivoURL,
			ArquivoType: model.ArquivoType,
		})
	}

	return anexos, nil
}
