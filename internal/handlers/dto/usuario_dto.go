package dto

import (
	"time"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
)

// UsuarioResumoResponse é a projeção mínima usada na busca por apelido
type UsuarioResumoResponse struct {
	Nome    string `json:"nome"`
	Apelido string `json:"apelido"`
}

// PerfilPublicoResponse é o perfil visível para qualquer usuário autenticado
type PerfilPublicoResponse struct {
	Nome      string `json:"nome"`
	Apelido   string `json:"apelido"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	BannerURL string `json:"banner_url,omitempty"`
}

// PerfilAdminResponse é a visão completa do usuário, sem a senha
type PerfilAdminResponse struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Nome            string     `json:"nome"`
	Apelido         string     `json:"apelido"`
	Bio             string     `json:"bio,omitempty"`
	AvatarURL       string     `json:"avatar_url,omitempty"`
	BannerURL       string     `json:"banner_url,omitempty"`
	DataNascimento  *string    `json:"data_nascimento,omitempty"`
	Role            string     `json:"role"`
	DataCriacao     time.Time  `json:"data_criacao"`
	DataAtualizacao time.Time  `json:"data_atualizacao"`
	DataDelecao     *time.Time `json:"data_delecao,omitempty"`
}

// AtualizarUsuarioRequest representa a atualização administrativa de um
// usuário. Apenas os campos presentes são alterados.
type AtualizarUsuarioRequest struct {
	Email          *string `json:"email" binding:"omitempty,email"`
	Nome           *string `json:"nome" binding:"omitempty"`
	Apelido        *string `json:"apelido" binding:"omitempty"`
	Bio            *string `json:"bio" binding:"omitempty"`
	AvatarURL      *string `json:"avatar_url" binding:"omitempty,url"`
	BannerURL      *string `json:"banner_url" binding:"omitempty,url"`
	Senha          *string `json:"senha" binding:"omitempty,min=6"`
	DataNascimento *string `json:"data_nascimento" binding:"omitempty"`
}

// AtualizarPerfilRequest atualiza nome e/ou bio do próprio usuário
type AtualizarPerfilRequest struct {
	Nome *string `json:"nome" binding:"omitempty"`
	Bio  *string `json:"bio" binding:"omitempty"`
}

// AtualizarSenhaRequest troca a senha mediante confirmação da atual
type AtualizarSenhaRequest struct {
	SenhaAtual string `json:"currentPassword" binding:"required"`
	SenhaNova  string `json:"newPassword" binding:"required,min=6"`
}

// AtualizarAvatarRequest troca a URL do avatar
type AtualizarAvatarRequest struct {
	AvatarURL string `json:"avatar_url" binding:"required,url"`
}

// AtualizarBannerRequest troca a URL do banner
type AtualizarBannerRequest struct {
	BannerURL string `json:"banner_url" binding:"required,url"`
}

// DeletarContaRequest confirma a exclusão de conta com a senha atual
type DeletarContaRequest struct {
	Senha string `json:"senha" binding:"required"`
}

// ToUsuarioResumoResponse converte a entidade para a projeção de busca
func ToUsuarioResumoResponse(u *entities.Usuario) UsuarioResumoResponse {
	return UsuarioResumoResponse{
		Nome:    u.Nome,
		Apelido: u.Apelido,
	}
}

// ToPerfilPublicoResponse converte a entidade para o perfil público
func ToPerfilPublicoResponse(u *entities.Usuario) PerfilPublicoResponse {
	return PerfilPublicoResponse{
		Nome:      u.Nome,
		Apelido:   u.Apelido,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
		BannerURL: u.BannerURL,
	}
}

// ToPerfilAdminResponse converte a entidade para a visão completa
func ToPerfilAdminResponse(u *entities.Usuario) PerfilAdminResponse {
	resp := PerfilAdminResponse{
		ID:              u.ID,
		Email:           u.Email.String(),
		Nome:            u.Nome,
		Apelido:         u.Apelido,
		Bio:             u.Bio,
		AvatarURL:       u.AvatarURL,
		BannerURL:       u.BannerURL,
		Role:            string(u.Role),
		DataCriacao:     u.CreatedAt,
		DataAtualizacao: u.UpdatedAt,
		DataDelecao:     u.DeletedAt,
	}

	if u.DataNascimento != nil {
		data := u.DataNascimento.Format("2006-01-02")
		resp.DataNascimento = &data
	}

	return resp
}
