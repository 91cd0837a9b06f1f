package services

import (
	"context"
	"time"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
	domerrors "github.com/compartilhaedu/compartilhaedu-backend/internal/domain/errors"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/ports"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
)

// MaterialService contém a lógica de negócio para materiais
type MaterialService struct {
	materiais  repositories.MaterialRepository
	categorias repositories.CategoriaRepository
	anexos     repositories.AnexoRepository
	logger     ports.Logger
}

// NewMaterialService cria um novo MaterialService
func NewMaterialService(
	materiais repositories.MaterialRepository,
	categorias repositories.CategoriaRepository,
	anexos repositories.AnexoRepository,
	logger ports.Logger,
) *MaterialService {
	return &MaterialService{
		materiais:  materiais,
		categorias: categorias,
		anexos:     anexos,
		logger:     logger,
	}
}

// Listar retorna uma página de materiais não deletados, do mais recente
// para o mais antigo
func (s *MaterialService) Listar(ctx context.Context, filtros repositories.MaterialFiltros) ([]*repositories.MaterialDetalhe, int64, error) {
	return s.materiais.List(ctx, filtros)
}

// CriarMaterialInput representa os dados para criar um material
type CriarMaterialInput struct {
	Titulo       string
	Descricao    string
	Categoria    string // Nome da categoria (deve existir)
	Conteudo     string
	ThumbnailURL string
}

// Criar persiste um novo material com flag "analise"
func (s *MaterialService) Criar(ctx context.Context, usuarioID string, input CriarMaterialInput) (*entities.Material, error) {
	categoria, err := s.categorias.FindByNome(ctx, input.Categoria)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domerrors.ErrCategoriaNaoEncontrada
	}

	material := &entities.Material{
		Titulo:       input.Titulo,
		Descricao:    input.Descricao,
		CategoriaID:  categoria.ID,
		Conteudo:     input.Conteudo,
		Flag:         entities.FlagAnalise,
		ThumbnailURL: input.ThumbnailURL,
		UsuarioID:    usuarioID,
	}

	if err := s.materiais.Create(ctx, material); err != nil {
		return nil, err
	}

	s.logger.Info("material criado", "material_id", material.ID, "usuario_id", usuarioID)
	return material, nil
}

// BuscarPorID retorna o detalhe de um material com autor e categoria resolvidos
func (s *MaterialService) BuscarPorID(ctx context.Context, id string) (*repositories.MaterialDetalhe, error) {
	detalhe, err := s.materiais.FindDetalheByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if detalhe == nil {
		return nil, domerrors.ErrMaterialNaoEncontrado
	}
	return detalhe, nil
}

// AtualizarMaterialInput representa os campos atualizáveis de um material.
// Campos nil são preservados.
type AtualizarMaterialInput struct {
	Titulo       *string
	Descricao    *string
	Categoria    *string // Nome da categoria (revalidada se alterada)
	Conteudo     *string
	Flag         *string
	ThumbnailURL *string
}

// Atualizar sobrescreve apenas os campos informados. Sem a permissão de
// admin, apenas o autor pode editar.
func (s *MaterialService) Atualizar(ctx context.Context, id, usuarioID string, admin bool, input AtualizarMaterialInput) (*entities.Material, error) {
	material, err := s.materiais.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domerrors.ErrMaterialNaoEncontrado
	}

	if !admin && !material.PertenceA(usuarioID) {
		return nil, domerrors.ErrNaoAutorizado
	}

	if input.Categoria != nil {
		categoria, err := s.categorias.FindByNome(ctx, *input.Categoria)
		if err != nil {
			return nil, err
		}
		if categoria == nil {
			return nil, domerrors.ErrCategoriaNaoEncontrada
		}
		material.CategoriaID = categoria.ID
	}

	if input.Titulo != nil {
		material.Titulo = *input.Titulo
	}
	if input.Descricao != nil {
		material.Descricao = *input.Descricao
	}
	if input.Conteudo != nil {
		material.Conteudo = *input.Conteudo
	}
	if input.ThumbnailURL != nil {
		material.ThumbnailURL = *input.ThumbnailURL
	}
	if input.Flag != nil {
		flag := entities.Flag(*input.Flag)
		if !flag.IsValid() {
			return nil, domerrors.ErrDadosInvalidos
		}
		// Registrar a data na primeira aprovação
		if flag == entities.FlagAprovado && material.Flag != entities.FlagAprovado {
			now := time.Now()
			material.DataAprovacao = &now
		}
		material.Flag = flag
	}

	if err := s.materiais.Update(ctx, material); err != nil {
		return nil, err
	}

	return material, nil
}

// Deletar faz o soft delete de um material. Sem a permissão de admin,
// apenas o autor pode deletar.
func (s *MaterialService) Deletar(ctx context.Context, id, usuarioID string, admin bool) error {
	material, err := s.materiais.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if material == nil {
		return domerrors.ErrMaterialNaoEncontrado
	}

	if !admin && !material.PertenceA(usuarioID) {
		return domerrors.ErrNaoAutorizado
	}

	if err := s.materiais.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("material deletado", "material_id", id, "admin", admin)
	return nil
}

// ListarAnexos retorna os anexos de um material não deletado
func (s *MaterialService) ListarAnexos(ctx context.Context, materialID string) ([]*entities.AnexoMaterial, error) {
	material, err := s.materiais.FindByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domerrors.ErrMaterialNaoEncontrado
	}

	return s.anexos.ListByMaterial(ctx, materialID)
}
