package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
	domerrors "github.com/compartilhaedu/compartilhaedu-backend/internal/domain/errors"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/ports"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/valueobjects"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/infrastructure/auth"
)

// UsuarioService contém a lógica de negócio para usuários e configurações de conta
type UsuarioService struct {
	usuarios repositories.UsuarioRepository
	uow      ports.UnitOfWork
	hasher   *auth.SenhaHasher
	logger   ports.Logger
}

// NewUsuarioService cria um novo UsuarioService
func NewUsuarioService(
	usuarios repositories.UsuarioRepository,
	uow ports.UnitOfWork,
	hasher *auth.SenhaHasher,
	logger ports.Logger,
) *UsuarioService {
	return &UsuarioService{
		usuarios: usuarios,
		uow:      uow,
		hasher:   hasher,
		logger:   logger,
	}
}

// SearchByApelido busca usuários por substring do apelido (case-insensitive)
func (s *UsuarioService) SearchByApelido(ctx context.Context, apelido string, page, limit int) ([]*entities.Usuario, int64, error) {
	return s.usuarios.SearchByApelido(ctx, repositories.UsuarioFiltros{
		Apelido: apelido,
		Page:    page,
		Limit:   limit,
	})
}

// PerfilPublico retorna o perfil público de um usuário pelo apelido
func (s *UsuarioService) PerfilPublico(ctx context.Context, apelido string) (*entities.Usuario, error) {
	usuario, err := s.usuarios.FindByApelido(ctx, apelido)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domerrors.ErrUsuarioNaoEncontrado
	}
	return usuario, nil
}

// PerfilAdmin retorna o registro completo de um usuário, incluindo
// registros soft-deletados (acesso de auditoria)
func (s *UsuarioService) PerfilAdmin(ctx context.Context, apelido string) (*entities.Usuario, error) {
	usuario, err := s.usuarios.FindByApelidoComDeletados(ctx, apelido)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domerrors.ErrUsuarioNaoEncontrado
	}
	return usuario, nil
}

// AtualizarUsuarioInput representa os campos atualizáveis de um usuário.
// Campos nil são preservados.
type AtualizarUsuarioInput struct {
	Email          *string
	Nome           *string
	Apelido        *string
	Bio            *string
	AvatarURL      *string
	BannerURL      *string
	Senha          *string
	DataNascimento *time.Time
}

// Atualizar sobrescreve apenas os campos informados, revalidando a
// unicidade de email e apelido quando alterados
func (s *UsuarioService) Atualizar(ctx context.Context, id string, input AtualizarUsuarioInput) (*entities.Usuario, error) {
	usuario, err := s.usuarios.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domerrors.ErrUsuarioNaoEncontrado
	}

	if input.Email != nil && *input.Email != usuario.Email.String() {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return nil, domerrors.ErrDadosInvalidos
		}
		existente, err := s.usuarios.FindByEmail(ctx, email.String())
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, domerrors.ErrEmailJaExiste
		}
		usuario.Email = email
	}

	if input.Apelido != nil && *input.Apelido != usuario.Apelido {
		existente, err := s.usuarios.FindByApelido(ctx, *input.Apelido)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, domerrors.ErrApelidoJaExiste
		}
		usuario.Apelido = *input.Apelido
	}

	if input.Nome != nil {
		usuario.Nome = *input.Nome
	}
	if input.Bio != nil {
		usuario.Bio = *input.Bio
	}
	if input.AvatarURL != nil {
		usuario.AvatarURL = *input.AvatarURL
	}
	if input.BannerURL != nil {
		usuario.BannerURL = *input.BannerURL
	}
	if input.DataNascimento != nil {
		if err := entities.ValidateDataNascimento(*input.DataNascimento); err != nil {
			return nil, domerrors.ErrDataNascimentoInvalida
		}
		usuario.DataNascimento = input.DataNascimento
	}
	if input.Senha != nil {
		hash, err := s.hasher.Hash(*input.Senha)
		if err != nil {
			return nil, err
		}
		usuario.SenhaHash = hash
	}

	if err := usuario.Validate(); err != nil {
		return nil, domerrors.ErrDadosInvalidos
	}

	if err := s.usuarios.Update(ctx, usuario); err != nil {
		return nil, err
	}

	return usuario, nil
}

// Deletar verifica a senha do próprio usuário e, em uma única transação,
// anonimiza email e apelido com um sufixo de unicidade antes do soft delete.
// O email e o apelido originais ficam imediatamente livres para um novo cadastro.
func (s *UsuarioService) Deletar(ctx context.Context, id, senha string) error {
	usuario, err := s.usuarios.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domerrors.ErrUsuarioNaoEncontrado
	}

	if !s.hasher.Compare(usuario.SenhaHash, senha) {
		return domerrors.ErrCredenciaisInvalidas
	}

	return s.anonimizaEDeleta(ctx, usuario)
}

// DeletarPorAdmin deleta a conta de outro usuário mediante confirmação da
// senha do próprio admin
func (s *UsuarioService) DeletarPorAdmin(ctx context.Context, adminID, id, senha string) error {
	admin, err := s.usuarios.FindByID(ctx, adminID)
	if err != nil {
		return err
	}
	if admin == nil || !s.hasher.Compare(admin.SenhaHash, senha) {
		return domerrors.ErrCredenciaisInvalidas
	}

	usuario, err := s.usuarios.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domerrors.ErrUsuarioNaoEncontrado
	}

	return s.anonimizaEDeleta(ctx, usuario)
}

// anonimizaEDeleta aplica o sufixo de unicidade a email e apelido e marca o
// soft delete, tudo dentro de uma transação
func (s *UsuarioService) anonimizaEDeleta(ctx context.Context, usuario *entities.Usuario) error {
	sufixo := fmt.Sprintf("del.%d.%s", time.Now().Unix(), uuid.NewString()[:8])

	local, dominio, _ := strings.Cut(usuario.Email.String(), "@")
	emailAnonimo, err := valueobjects.NewEmail(fmt.Sprintf("%s+%s@%s", local, sufixo, dominio))
	if err != nil {
		return err
	}

	usuario.Email = emailAnonimo
	usuario.Apelido = usuario.Apelido + "." + sufixo
	usuario.SoftDelete()

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.usuarios.Update(txCtx, usuario)
	})
	if err != nil {
		return err
	}

	s.logger.Info("conta deletada", "usuario_id", usuario.ID)
	return nil
}

// AtualizarPerfil atualiza nome e/ou bio do próprio usuário
func (s *UsuarioService) AtualizarPerfil(ctx context.Context, id string, nome, bio *string) error {
	if nome == nil && bio == nil {
		return domerrors.ErrDadosInvalidos
	}
	_, err := s.Atualizar(ctx, id, AtualizarUsuarioInput{Nome: nome, Bio: bio})
	return err
}

// AtualizarSenha troca a senha após conferir a senha atual
func (s *UsuarioService) AtualizarSenha(ctx context.Context, id, senhaAtual, senhaNova string) error {
	usuario, err := s.usuarios.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if usuario == nil || !s.hasher.Compare(usuario.SenhaHash, senhaAtual) {
		return domerrors.ErrCredenciaisInvalidas
	}

	hash, err := s.hasher.Hash(senhaNova)
	if err != nil {
		return err
	}

	usuario.SenhaHash = hash
	return s.usuarios.Update(ctx, usuario)
}

// AtualizarAvatar atualiza a URL do avatar do próprio usuário
func (s *UsuarioService) AtualizarAvatar(ctx context.Context, id, avatarURL string) error {
	_, err := s.Atualizar(ctx, id, AtualizarUsuarioInput{AvatarURL: &avatarURL})
	return err
}

// AtualizarBanner atualiza a URL do banner do próprio usuário
func (s *UsuarioService) AtualizarBanner(ctx context.Context, id, bannerURL string) error {
	_, err := s.Atualizar(ctx, id, AtualizarUsuarioInput{BannerURL: &bannerURL})
	return err
}
