package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsuarioModel é o model GORM para usuários
type UsuarioModel struct {
	ID             string `gorm:"type:uuid;primaryKey"`
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Nome           string `gorm:"type:varchar(255);not null"`
	Apelido        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Bio            string `gorm:"type:text"`
	AvatarURL      string `gorm:"type:varchar(500)"`
	BannerURL      string `gorm:"type:varchar(500)"`
	SenhaHash      string `gorm:"type:varchar(255);not null"`
	DataNascimento *int64
	Role           string `gorm:"type:varchar(50);not null;index"`
	CreatedAt      int64  `gorm:"autoCreateTime;index"`
	UpdatedAt      int64  `gorm:"autoUpdateTime"`
	DeletedAt      *int64 `gorm:"index"` // Soft delete
}

func (UsuarioModel) TableName() string {
	return "usuarios"
}

func (m *UsuarioModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MaterialModel é o model GORM para materiais
type MaterialModel struct {
	ID            string `gorm:"type:uuid;primaryKey"`
	Titulo        string `gorm:"type:varchar(255);not null"`
	Descricao     string `gorm:"type:text"`
	CategoriaID   string `gorm:"type:uuid;index;not null"`
	Conteudo      string `gorm:"type:text"`
	Flag          string `gorm:"type:varchar(20);not null;default:analise;index"`
	ThumbnailURL  string `gorm:"type:varchar(500)"`
	DataAprovacao *int64
	UsuarioID     string `gorm:"type:uuid;index;not null"`
	CreatedAt     int64  `gorm:"autoCreateTime;index"`
	UpdatedAt     int64  `gorm:"autoUpdateTime"`
	DeletedAt     *int64 `gorm:"index"` // Soft delete
}

func (MaterialModel) TableName() string {
	return "materiais"
}

func (m *MaterialModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// ComentarioModel é o model GORM para comentários
type ComentarioModel struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	Conteudo   string `gorm:"type:text;not null"`
	UsuarioID  string `gorm:"type:uuid;index;not null"`
	MaterialID string `gorm:"type:uuid;index;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime;index"`
	UpdatedAt  int64  `gorm:"autoUpdateTime"`
	DeletedAt  *int64 `gorm:"index"` // Soft delete
}

func (ComentarioModel) TableName() string {
	return "comentarios"
}

func (m *ComentarioModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// LikeModel é o model GORM para curtidas.
// O índice único em (usuario_id, material_id) garante no máximo uma curtida
// por usuário em cada material.
type LikeModel struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	UsuarioID  string `gorm:"type:uuid;not null;uniqueIndex:idx_likes_usuario_material"`
	MaterialID string `gorm:"type:uuid;not null;uniqueIndex:idx_likes_usuario_material"`
	CreatedAt  int64  `gorm:"autoCreateTime"`
}

func (LikeModel) TableName() string {
	return "likes"
}

func (m *LikeModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// CategoriaModel é o model GORM para categorias
type CategoriaModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Nome      string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Descricao string `gorm:"type:text"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

func (CategoriaModel) TableName() string {
	return "categorias"
}

func (m *CategoriaModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// AnexoMaterialModel é o model GORM para anexos de materiais.
// Anexos são removidos em cascata quando o material é removido fisicamente.
type AnexoMaterialModel struct {
	ID          string        `gorm:"type:uuid;primaryKey"`
	MaterialID  string        `gorm:"type:uuid;index;not null"`
	Material    MaterialModel `gorm:"foreignKey:MaterialID;constraint:OnDelete:CASCADE"`
	ArquivoURL  string        `gorm:"type:varchar(500);not null"`
	ArquivoType string        `gorm:"type:varchar(100);not null"`
}

func (AnexoMaterialModel) TableName() string {
	return "anexos_material"
}

func (m *AnexoMaterialModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
