package entities

import "time"

// Like representa uma curtida de um usuário em um material.
// O par (usuário, material) é único: um usuário curte um material no máximo uma vez.
type Like struct {
	ID         string
	UsuarioID  string
	MaterialID string
	CreatedAt  time.Time
}
