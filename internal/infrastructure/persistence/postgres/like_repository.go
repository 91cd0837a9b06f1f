package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
)

// LikeRepository implementa repositories.LikeRepository
type LikeRepository struct {
	db *gorm.DB
}

// NewLikeRepository cria um novo LikeRepository
func NewLikeRepository(db *gorm.DB) repositories.LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) Create(ctx context.Context, like *entities.Like) error {
	model := &LikeModel{
		ID:         like.ID,
		UsuarioID:  like.UsuarioID,
		MaterialID: like.MaterialID,
	}

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	like.ID = model.ID
	like.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *LikeRepository) FindByUsuarioEMaterial(ctx context.Context, usuarioID, materialID string) (*entities.Like, error) {
	var model LikeModel

	db := getDB(ctx, r.db)
	err := db.Where("usuario_id = ? AND material_id = ?", usuarioID, materialID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.Like{
		ID:         model.ID,
		UsuarioID:  model.UsuarioID,
		MaterialID: model.MaterialID,
		CreatedAt:  time.Unix(model.CreatedAt, 0),
	}, nil
}

func (r *LikeRepository) Delete(ctx context.Context, id string) error {
	db := getDB(ctx, r.db)
	// Descurtir remove a linha fisicamente
	return db.Delete(&LikeModel{}, "id = ?", id).Error
}

func (r *LikeRepository) CountByMaterial(ctx context.Context, materialID string) (int64, error) {
	var total int64

	db := getDB(ctx, r.db)
	err := db.Model(&LikeModel{}).Where("material_id = ?", materialID).Count(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}
