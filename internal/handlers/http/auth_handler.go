package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/handlers/dto"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/services"
)

// AuthHandler lida com login e cadastro
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login autentica um usuário e retorna o token JWT
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		dto.RespondDomainError(c, err, "login_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusOK, dto.TokenResponse{Token: token})
}

// Cadastrar registra um novo usuário e retorna o perfil com o token
func (h *AuthHandler) Cadastrar(c *gin.Context) {
	var req dto.CadastroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	dataNascimento, ok := parseDataNascimento(c, req.DataNascimento)
	if !ok {
		return
	}

	usuario, token, err := h.authService.Cadastrar(c.Request.Context(), services.CadastroInput{
		Email:          req.Email,
		Senha:          req.Senha,
		Nome:           req.Nome,
		Apelido:        req.Apelido,
		DataNascimento: dataNascimento,
	})
	if err != nil {
		dto.RespondDomainError(c, err, "register_failed")
		return
	}

	dto.RespondSuccess(c, http.StatusCreated, dto.CadastroResponse{
		Usuario: dto.ToPerfilAdminResponse(usuario),
		Token:   token,
	})
}

// parseDataNascimento interpreta a data opcional no formato AAAA-MM-DD.
// Formato inválido resulta em 400 invalid_birthdate e resposta já escrita.
func parseDataNascimento(c *gin.Context, valor *string) (*time.Time, bool) {
	if valor == nil || *valor == "" {
		return nil, true
	}

	data, err := time.Parse("2006-01-02", *valor)
	if err != nil {
		dto.RespondError(c, http.StatusBadRequest, "invalid_birthdate")
		return nil, false
	}

	return &data, true
}
