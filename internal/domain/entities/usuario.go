package entities

import (
	"errors"
	"time"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/valueobjects"
)

// Usuario representa um usuário da plataforma
type Usuario struct {
	ID             string
	Email          valueobjects.Email
	Nome           string
	Apelido        string
	Bio            string
	AvatarURL      string
	BannerURL      string
	SenhaHash      string
	DataNascimento *time.Time
	Role           Role
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time // Soft delete
}

// IsAdmin verifica se o usuário é admin
func (u *Usuario) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsDeleted verifica se o usuário foi deletado (soft delete)
func (u *Usuario) IsDeleted() bool {
	return u.DeletedAt != nil
}

// SoftDelete marca o usuário como deletado
func (u *Usuario) SoftDelete() {
	now := time.Now()
	u.DeletedAt = &now
}

// Validate valida regras de negócio da entidade Usuario
func (u *Usuario) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Nome == "" {
		return errors.New("nome is required")
	}

	if u.Apelido == "" {
		return errors.New("apelido is required")
	}

	if !u.Role.IsValid() {
		return errors.New("invalid role")
	}

	return nil
}

// ValidateDataNascimento valida a data de nascimento informada no cadastro.
// Datas futuras ou anteriores a 1900 são rejeitadas.
func ValidateDataNascimento(data time.Time) error {
	limiteInferior := time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

	if data.After(time.Now()) {
		return errors.New("data futura não permitida")
	}
	if data.Before(limiteInferior) {
		return errors.New("data anterior a 1900")
	}
	return nil
}
