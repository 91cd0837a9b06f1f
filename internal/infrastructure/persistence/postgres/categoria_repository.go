package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
	domerrors "github.com/compartilhaedu/compartilhaedu-backend/internal/domain/errors"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
)

// CategoriaRepository implementa repositories.CategoriaRepository
type CategoriaRepository struct {
	db *gorm.DB
}

// NewCategoriaRepository cria um novo CategoriaRepository
func NewCategoriaRepository(db *gorm.DB) repositories.CategoriaRepository {
	return &CategoriaRepository{db: db}
}

func (r *CategoriaRepository) Create(ctx context.Context, categoria *entities.Categoria) error {
	model := toCategoriaModel(categoria)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domerrors.ErrCategoriaJaExiste
		}
		return err
	}

	categoria.ID = model.ID
	categoria.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *CategoriaRepository) FindByID(ctx context.Context, id string) (*entities.Categoria, error) {
	return r.findBy(ctx, "id = ?", id)
}

func (r *CategoriaRepository) FindByNome(ctx context.Context, nome string) (*entities.Categoria, error) {
	// Match exato, case-sensitive
	return r.findBy(ctx, "nome = ?", nome)
}

func (r *CategoriaRepository) Update(ctx context.Context, categoria *entities.Categoria) error {
	model := toCategoriaModel(categoria)

	db := getDB(ctx, r.db)
	if err := db.Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domerrors.ErrCategoriaJaExiste
		}
		return err
	}
	return nil
}

func (r *CategoriaRepository) List(ctx context.Context, filtros repositories.CategoriaFiltros) ([]*entities.Categoria, int64, error) {
	var models []*CategoriaModel
	var total int64

	db := getDB(ctx, r.db)
	query := db.Model(&CategoriaModel{})

	if filtros.Nome != "" {
		query = query.Where("LOWER(nome) LIKE ?", "%"+strings.ToLower(filtros.Nome)+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizaPaginacao(filtros.Page, filtros.Limit)
	offset := (page - 1) * limit

	if err := query.Order("nome ASC").Limit(limit).Offset(offset).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	categorias := make([]*entities.Categoria, 0, len(models))
	for _, model := range models {
		categorias = append(categorias, toCategoriaEntity(model))
	}

	return categorias, total, nil
}

func (r *CategoriaRepository) findBy(ctx context.Context, cond string, args ...any) (*entities.Categoria, error) {
	var model CategoriaModel

	db := getDB(ctx, r.db)
	if err := db.Where(cond, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toCategoriaEntity(&model), nil
}

// Conversores
func toCategoriaModel(categoria *entities.Categoria) *CategoriaModel {
	model := &CategoriaModel{
		ID:        categoria.ID,
		Nome:      categoria.Nome,
		Descricao: categoria.Descricao,
	}

	if !categoria.CreatedAt.IsZero() {
		model.CreatedAt = categoria.CreatedAt.Unix()
	}

	return model
}

func toCategoriaEntity(model *CategoriaModel) *entities.Categoria {
	return &entities.Categoria{
		ID:        model.ID,
		Nome:      model.Nome,
		Descricao: model.Descricao,
		CreatedAt: time.Unix(model.CreatedAt, 0),
	}
}
