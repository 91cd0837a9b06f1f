package entities

import "time"

// Comentario representa um comentário em um material
type Comentario struct {
	ID         string
	Conteudo   string
	UsuarioID  string
	MaterialID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft delete
}

// PertenceA verifica se o comentário pertence ao usuário informado
func (c *Comentario) PertenceA(usuarioID string) bool {
	return c.UsuarioID == usuarioID
}
