package dto

// LoginRequest representa as credenciais de login
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// CadastroRequest representa os dados de cadastro de um novo usuário.
// A data de nascimento é opcional, no formato AAAA-MM-DD.
type CadastroRequest struct {
	Email          string  `json:"email" binding:"required,email"`
	Senha          string  `json:"senha" binding:"required,min=6"`
	Nome           string  `json:"nome" binding:"required"`
	Apelido        string  `json:"apelido" binding:"required"`
	DataNascimento *string `json:"data_nascimento" binding:"omitempty"`
}

// TokenResponse carrega o token JWT emitido no login
type TokenResponse struct {
	Token string `json:"token"`
}

// CadastroResponse carrega o usuário recém-criado e seu token
type CadastroResponse struct {
	Usuario PerfilAdminResponse `json:"usuario"`
	Token   string              `json:"token"`
}
