package entities

import "time"

// Flag representa o estado de moderação de um material
type Flag string

const (
	FlagAprovado  Flag = "aprovado"
	FlagReprovado Flag = "reprovado"
	FlagAnalise   Flag = "analise"
)

// IsValid verifica se a flag é um dos valores conhecidos
func (f Flag) IsValid() bool {
	switch f {
	case FlagAprovado, FlagReprovado, FlagAnalise:
		return true
	}
	return false
}

// Material representa um conteúdo publicado por um usuário
type Material struct {
	ID            string
	Titulo        string
	Descricao     string
	CategoriaID   string
	Conteudo      string
	Flag          Flag
	ThumbnailURL  string
	DataAprovacao *time.Time
	UsuarioID     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft delete
}

// IsDeleted verifica se o material foi deletado (soft delete)
func (m *Material) IsDeleted() bool {
	return m.DeletedAt != nil
}

// PertenceA verifica se o material pertence ao usuário informado
func (m *Material) PertenceA(usuarioID string) bool {
	return m.UsuarioID == usuarioID
}
