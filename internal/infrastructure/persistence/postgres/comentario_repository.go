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

// ComentarioRepository implementa repositories.ComentarioRepository
type ComentarioRepository struct {
	db *gorm.DB
}

// NewComentarioRepository cria um novo ComentarioRepository
func NewComentarioRepository(db *gorm.DB) repositories.ComentarioRepository {
	return &ComentarioRepository{db: db}
}

type comentarioDetalheRow struct {
	ComentarioModel
	AutorNome    string
	AutorApelido string
}

func (r *ComentarioRepository) Create(ctx context.Context, comentario *entities.Comentario) error {
	model := toComentarioModel(comentario)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	comentario.ID = model.ID
	comentario.CreatedAt = time.Unix(model.CreatedAt, 0)
	comentario.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *ComentarioRepository) FindByID(ctx context.Context, id string) (*entities.Comentario, error) {
	var model ComentarioModel

	db := getDB(ctx, r.db)
	// Soft delete: ignorar registros deletados
	if err := db.Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toComentarioEntity(&model), nil
}

func (r *ComentarioRepository) Update(ctx context.Context, comentario *entities.Comentario) error {
	model := toComentarioModel(comentario)

	db := getDB(ctx, r.db)
	return db.Save(model).Error
}

func (r *ComentarioRepository) Delete(ctx context.Context, id string) error {
	db := getDB(ctx, r.db)
	// Soft delete: atualizar deleted_at ao invés de deletar
	now := time.Now().Unix()
	return db.Model(&ComentarioModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

func (r *ComentarioRepository) ListByMaterial(ctx context.Context, filtros repositories.ComentarioFiltros) ([]*repositories.ComentarioDetalhe, int64, error) {
	db := getDB(ctx, r.db)

	query := db.Table("comentarios").
		Joins("JOIN usuarios ON usuarios.id = comentarios.usuario_id").
		Where("comentarios.material_id = ? AND comentarios.deleted_at IS NULL", filtros.MaterialID)

	if filtros.UsuarioID != "" {
		query = query.Where("comentarios.usuario_id = ?", filtros.UsuarioID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	ordem := "DESC"
	if strings.EqualFold(filtros.Ordem, "asc") {
		ordem = "ASC"
	}

	page, limit := normalizaPaginacao(filtros.Page, filtros.Limit)
	offset := (page - 1) * limit

	var rows []*comentarioDetalheRow
	err := query.Select("comentarios.*, usuarios.nome AS autor_nome, usuarios.apelido AS autor_apelido").
		Order("comentarios.created_at " + ordem).
		Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	detalhes := make([]*repositories.ComentarioDetalhe, 0, len(rows))
	for _, row := range rows {
		detalhes = append(detalhes, &repositories.ComentarioDetalhe{
			Comentario:   *toComentarioEntity(&row.ComentarioModel),
			AutorNome:    row.AutorNome,
			AutorApelido: row.AutorApelido,
		})
	}

	return detalhes, total, nil
}

// Conversores
func toComentarioModel(comentario *entities.Comentario) *ComentarioModel {
	var deletedAt *int64
	if comentario.DeletedAt != nil {
		ts := comentario.DeletedAt.Unix()
		deletedAt = &ts
	}

	model := &ComentarioModel{
		ID:         comentario.ID,
		Conteudo:   comentario.Conteudo,
		UsuarioID:  comentario.UsuarioID,
		MaterialID: comentario.MaterialID,
		DeletedAt:  deletedAt,
	}

	// Timestamps zerados ficam por conta do autoCreateTime/autoUpdateTime
	if !comentario.CreatedAt.IsZero() {
		model.CreatedAt = comentario.CreatedAt.Unix()
	}
	if !comentario.UpdatedAt.IsZero() {
		model.UpdatedAt = comentario.UpdatedAt.Unix()
	}

	return model
}

func toComentarioEntity(model *ComentarioModel) *entities.Comentario {
	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	return &entities.Comentario{
		ID:         model.ID,
		Conteudo:   model.Conteudo,
		UsuarioID:  model.UsuarioID,
		MaterialID: model.MaterialID,
		CreatedAt:  time.Unix(model.CreatedAt, 0),
		UpdatedAt:  time.Unix(model.UpdatedAt, 0),
		DeletedAt:  deletedAt,
	}
}
