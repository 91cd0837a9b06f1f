package services

import (
	"context"
	"time"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
	domerrors "github.com/compartilhaedu/compartilhaedu-backend/internal/domain/errors"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/ports"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/valueobjects"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/infrastructure/auth"
)

// AuthService contém a lógica de login e cadastro
type AuthService struct {
	usuarios repositories.UsuarioRepository
	hasher   *auth.SenhaHasher
	tokens   *auth.TokenManager
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	usuarios repositories.UsuarioRepository,
	hasher *auth.SenhaHasher,
	tokens *auth.TokenManager,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		usuarios: usuarios,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login verifica as credenciais e emite um token com {id, role}.
// Email desconhecido e senha incorreta produzem o mesmo erro.
func (s *AuthService) Login(ctx context.Context, email, senha string) (string, error) {
	usuario, err := s.usuarios.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if usuario == nil || !s.hasher.Compare(usuario.SenhaHash, senha) {
		return "", domerrors.ErrCredenciaisInvalidas
	}

	token, err := s.tokens.Generate(usuario.ID, usuario.Role)
	if err != nil {
		return "", err
	}

	s.logger.Info("usuário autenticado", "usuario_id", usuario.ID)
	return token, nil
}

// CadastroInput representa os dados para cadastrar um usuário
type CadastroInput struct {
	Email          string
	Senha          string
	Nome           string
	Apelido        string
	DataNascimento *time.Time
}

// Cadastrar cria um novo usuário com role padrão "user" e retorna um token.
// Email e apelido já em uso produzem conflitos distintos.
func (s *AuthService) Cadastrar(ctx context.Context, input CadastroInput) (*entities.Usuario, string, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, "", domerrors.ErrDadosInvalidos
	}

	if input.DataNascimento != nil {
		if err := entities.ValidateDataNascimento(*input.DataNascimento); err != nil {
			return nil, "", domerrors.ErrDataNascimentoInvalida
		}
	}

	existente, err := s.usuarios.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, "", err
	}
	if existente != nil {
		return nil, "", domerrors.ErrEmailJaExiste
	}

	existente, err = s.usuarios.FindByApelido(ctx, input.Apelido)
	if err != nil {
		return nil, "", err
	}
	if existente != nil {
		return nil, "", domerrors.ErrApelidoJaExiste
	}

	hash, err := s.hasher.Hash(input.Senha)
	if err != nil {
		return nil, "", err
	}

	usuario := &entities.Usuario{
		Email:          email,
		Nome:           input.Nome,
		Apelido:        input.Apelido,
		SenhaHash:      hash,
		DataNascimento: input.DataNascimento,
		Role:           entities.RoleUser,
	}

	if err := usuario.Validate(); err != nil {
		return nil, "", domerrors.ErrDadosInvalidos
	}

	// A corrida entre a verificação acima e o insert é resolvida pelo índice
	// único: o perdedor recebe o mesmo conflito de domínio.
	if err := s.usuarios.Create(ctx, usuario); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(usuario.ID, usuario.Role)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("usuário cadastrado", "usuario_id", usuario.ID, "apelido", usuario.Apelido)
	return usuario, token, nil
}
