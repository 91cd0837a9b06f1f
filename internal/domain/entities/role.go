package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleEspecialista Role = "especialista"
	RoleUser         Role = "user"
)

// IsValid verifica se o role é um dos valores conhecidos
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEspecialista, RoleUser:
		return true
	}
	return false
}
