package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
)

// MaterialRepository implementa repositories.MaterialRepository
type MaterialRepository struct {
	db *gorm.DB
}

// NewMaterialRepository cria um novo MaterialRepository
func NewMaterialRepository(db *gorm.DB) repositories.MaterialRepository {
	return &MaterialRepository{db: db}
}

// materialDetalheRow é a linha retornada pelos selects com join de autor e categoria
type materialDetalheRow struct {
	MaterialModel
	AutorNome     string
	AutorApelido  string
	CategoriaNome string
}

const materialDetalheSelect = `materiais.*,
	usuarios.nome AS autor_nome,
	usuarios.apelido AS autor_apelido,
	categorias.nome AS categoria_nome`

func (r *MaterialRepository) Create(ctx context.Context, material *entities.Material) error {
	model := toMaterialModel(material)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	material.ID = model.ID
	material.CreatedAt = time.Unix(model.CreatedAt, 0)
	material.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *MaterialRepository) FindByID(ctx context.Context, id string) (*entities.Material, error) {
	var model MaterialModel

	db := getDB(ctx, r.db)
	// Soft delete: ignorar registros deletados
	if err := db.Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toMaterialEntity(&model), nil
}

func (r *MaterialRepository) FindDetalheByID(ctx context.Context, id string) (*repositories.MaterialDetalhe, error) {
	var row materialDetalheRow

	db := getDB(ctx, r.db)
	err := db.Table("materiais").
		Select(materialDetalheSelect).
		Joins("JOIN usuarios ON usuarios.id = materiais.usuario_id").
		Joins("LEFT JOIN categorias ON categorias.id = materiais.categoria_id").
		Where("materiais.id = ? AND materiais.deleted_at IS NULL", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toMaterialDetalhe(&row), nil
}

func (r *MaterialRepository) Update(ctx context.Context, material *entities.Material) error {
	model := toMaterialModel(material)

	db := getDB(ctx, r.db)
	return db.Save(model).Error
}

func (r *MaterialRepository) Delete(ctx context.Context, id string) error {
	db := getDB(ctx, r.db)
	// Soft delete: atualizar deleted_at ao invés de deletar
	now := time.Now().Unix()
	return db.Model(&MaterialModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

func (r *MaterialRepository) List(ctx context.Context, filtros repositories.MaterialFiltros) ([]*repositories.MaterialDetalhe, int64, error) {
	db := getDB(ctx, r.db)

	base := db.Table("materiais").
		Joins("JOIN usuarios ON usuarios.id = materiais.usuario_id").
		Joins("LEFT JOIN categorias ON categorias.id = materiais.categoria_id").
		Where("materiais.deleted_at IS NULL")

	if filtros.Titulo != "" {
		base = base.Where("LOWER(materiais.titulo) LIKE ?", "%"+strings.ToLower(filtros.Titulo)+"%")
	}
	if filtros.Flag != nil {
		base = base.Where("materiais.flag = ?", string(*filtros.Flag))
	}
	if filtros.Categoria != "" {
		base = base.Where("LOWER(categorias.nome) LIKE ?", "%"+strings.ToLower(filtros.Categoria)+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizaPaginacao(filtros.Page, filtros.Limit)
	offset := (page - 1) * limit

	var rows []*materialDetalheRow
	err := base.Select(materialDetalheSelect).
		Order("materiais.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	detalhes := make([]*repositories.MaterialDetalhe, 0, len(rows))
	for _, row := range rows {
		detalhes = append(detalhes, toMaterialDetalhe(row))
	}

	return detalhes, total, nil
}

// Conversores
func toMaterialModel(material *entities.Material) *MaterialModel {
	var deletedAt *int64
	if material.DeletedAt != nil {
		ts := material.DeletedAt.Unix()
		deletedAt = &ts
	}

	var aprovacao *int64
	if material.DataAprovacao != nil {
		ts := material.DataAprovacao.Unix()
		aprovacao = &ts
	}

	model := &MaterialModel{
		ID:            material.ID,
		Titulo:        material.Titulo,
		Descricao:     material.Descricao,
		CategoriaID:   material.CategoriaID,
		Conteudo:      material.Conteudo,
		Flag:          string(material.Flag),
		ThumbnailURL:  material.ThumbnailURL,
		DataAprovacao: aprovacao,
		UsuarioID:     material.UsuarioID,
		DeletedAt:     deletedAt,
	}

	// Timestamps zerados ficam por conta do autoCreateTime/autoUpdateTime
	if !material.CreatedAt.IsZero() {
		model.CreatedAt = material.CreatedAt.Unix()
	}
	if !material.UpdatedAt.IsZero() {
		model.UpdatedAt = material.UpdatedAt.Unix()
	}

	return model
}

func toMaterialEntity(model *MaterialModel) *entities.Material {
	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	var aprovacao *time.Time
	if model.DataAprovacao != nil {
		ts := time.Unix(*model.DataAprovacao, 0)
		aprovacao = &ts
	}

	return &entities.Material{
		ID:            model.ID,
		Titulo:        model.Titulo,
		Descricao:     model.Descricao,
		CategoriaID:   model.CategoriaID,
		Conteudo:      model.Conteudo,
		Flag:          entities.Flag(model.Flag),
		ThumbnailURL:  model.ThumbnailURL,
		DataAprovacao: aprovacao,
		UsuarioID:     model.UsuarioID,
		CreatedAt:     time.Unix(model.CreatedAt, 0),
		UpdatedAt:     time.Unix(model.UpdatedAt, 0),
		DeletedAt:     deletedAt,
	}
}

func toMaterialDetalhe(row *materialDetalheRow) *repositories.MaterialDetalhe {
	return &repositories.MaterialDetalhe{
		Material:      *toMaterialEntity(&row.MaterialModel),
		AutorNome:     row.AutorNome,
		AutorApelido:  row.AutorApelido,
		CategoriaNome: row.CategoriaNome,
	}
}
