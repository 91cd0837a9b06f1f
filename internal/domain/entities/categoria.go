package entities

import "time"

// Categoria classifica materiais publicados na plataforma
type Categoria struct {
	ID        string
	Nome      string
	Descricao string
	CreatedAt time.Time
}
