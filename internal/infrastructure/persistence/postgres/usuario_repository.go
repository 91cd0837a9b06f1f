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
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/valueobjects"
)

// UsuarioRepository implementa repositories.UsuarioRepository
type UsuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository cria um novo UsuarioRepository
func NewUsuarioRepository(db *gorm.DB) repositories.UsuarioRepository {
	return &UsuarioRepository{db: db}
}

func (r *UsuarioRepository) Create(ctx context.Context, usuario *entities.Usuario) error {
	model := toUsuarioModel(usuario)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return r.traduzConflito(ctx, err, usuario)
	}

	usuario.ID = model.ID
	usuario.CreatedAt = time.Unix(model.CreatedAt, 0)
	usuario.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *UsuarioRepository) FindByID(ctx context.Context, id string) (*entities.Usuario, error) {
	return r.findBy(ctx, "id = ? AND deleted_at IS NULL", id)
}

func (r *UsuarioRepository) FindByEmail(ctx context.Context, email string) (*entities.Usuario, error) {
	return r.findBy(ctx, "email = ? AND deleted_at IS NULL", email)
}

func (r *UsuarioRepository) FindByApelido(ctx context.Context, apelido string) (*entities.Usuario, error) {
	return r.findBy(ctx, "apelido = ? AND deleted_at IS NULL", apelido)
}

func (r *UsuarioRepository) FindByApelidoComDeletados(ctx context.Context, apelido string) (*entities.Usuario, error) {
	return r.findBy(ctx, "apelido = ?", apelido)
}

func (r *UsuarioRepository) Update(ctx context.Context, usuario *entities.Usuario) error {
	model := toUsuarioModel(usuario)

	db := getDB(ctx, r.db)
	if err := db.Save(model).Error; err != nil {
		return r.traduzConflito(ctx, err, usuario)
	}
	return nil
}

func (r *UsuarioRepository) SearchByApelido(ctx context.Context, filtros repositories.UsuarioFiltros) ([]*entities.Usuario, int64, error) {
	var models []*UsuarioModel
	var total int64

	db := getDB(ctx, r.db)
	query := db.Model(&UsuarioModel{}).Where("deleted_at IS NULL")

	if filtros.Apelido != "" {
		query = query.Where("LOWER(apelido) LIKE ?", "%"+strings.ToLower(filtros.Apelido)+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizaPaginacao(filtros.Page, filtros.Limit)
	offset := (page - 1) * limit

	if err := query.Order("apelido ASC").Limit(limit).Offset(offset).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	usuarios := make([]*entities.Usuario, 0, len(models))
	for _, model := range models {
		usuario, err := toUsuarioEntity(model)
		if err != nil {
			return nil, 0, err
		}
		usuarios = append(usuarios, usuario)
	}

	return usuarios, total, nil
}

func (r *UsuarioRepository) findBy(ctx context.Context, cond string, args ...any) (*entities.Usuario, error) {
	var model UsuarioModel

	db := getDB(ctx, r.db)
	if err := db.Where(cond, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toUsuarioEntity(&model)
}

// traduzConflito mapeia violações de índice único para o erro de domínio
// correspondente. É o backstop da corrida check-then-insert no cadastro:
// quem perde a corrida recebe o mesmo 409 da verificação explícita.
// O erro traduzido pelo driver não identifica o índice violado, então a
// coluna em conflito é resolvida com uma consulta adicional.
func (r *UsuarioRepository) traduzConflito(ctx context.Context, err error, usuario *entities.Usuario) error {
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}

	var total int64
	db := getDB(ctx, r.db)
	if db.Model(&UsuarioModel{}).Where("apelido = ? AND id <> ?", usuario.Apelido, usuario.ID).Count(&total).Error == nil && total > 0 {
		return domerrors.ErrApelidoJaExiste
	}
	return domerrors.ErrEmailJaExiste
}

// normalizaPaginacao aplica defaults e o teto de itens por página
func normalizaPaginacao(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// Conversores
func toUsuarioModel(usuario *entities.Usuario) *UsuarioModel {
	var deletedAt *int64
	if usuario.DeletedAt != nil {
		ts := usuario.DeletedAt.Unix()
		deletedAt = &ts
	}

	var nascimento *int64
	if usuario.DataNascimento != nil {
		ts := usuario.DataNascimento.Unix()
		nascimento = &ts
	}

	model := &UsuarioModel{
		ID:             usuario.ID,
		Email:          usuario.Email.String(),
		Nome:           usuario.Nome,
		Apelido:        usuario.Apelido,
		Bio:            usuario.Bio,
		AvatarURL:      usuario.AvatarURL,
		BannerURL:      usuario.BannerURL,
		SenhaHash:      usuario.SenhaHash,
		DataNascimento: nascimento,
		Role:           string(usuario.Role),
		DeletedAt:      deletedAt,
	}

	// Timestamps zerados ficam por conta do autoCreateTime/autoUpdateTime
	if !usuario.CreatedAt.IsZero() {
		model.CreatedAt = usuario.CreatedAt.Unix()
	}
	if !usuario.UpdatedAt.IsZero() {
		model.UpdatedAt = usuario.UpdatedAt.Unix()
	}

	return model
}

func toUsuarioEntity(model *UsuarioModel) (*entities.Usuario, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	var nascimento *time.Time
	if model.DataNascimento != nil {
		ts := time.Unix(*model.DataNascimento, 0)
		nascimento = &ts
	}

	return &entities.Usuario{
		ID:             model.ID,
		Email:          email,
		Nome:           model.Nome,
		Apelido:        model.Apelido,
		Bio:            model.Bio,
		AvatarURL:      model.AvatarURL,
		BannerURL:      model.BannerURL,
		SenhaHash:      model.SenhaHash,
		DataNascimento: nascimento,
		Role:           entities.Role(model.Role),
		CreatedAt:      time.Unix(model.CreatedAt, 0),
		UpdatedAt:      time.Unix(model.UpdatedAt, 0),
		DeletedAt:      deletedAt,
	}, nil
}
