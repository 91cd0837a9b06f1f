package services

import (
	"context"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
	domerrors "github.com/compartilhaedu/compartilhaedu-backend/internal/domain/errors"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/ports"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
)

// ComentarioService contém a lógica de negócio para comentários
type ComentarioService struct {
	comentarios repositories.ComentarioRepository
	materiais   repositories.MaterialRepository
	logger      ports.Logger
}

// NewComentarioService cria um novo ComentarioService
func NewComentarioService(
	comentarios repositories.ComentarioRepository,
	materiais repositories.MaterialRepository,
	logger ports.Logger,
) *ComentarioService {
	return &ComentarioService{
		comentarios: comentarios,
		materiais:   materiais,
		logger:      logger,
	}
}

// Criar adiciona um comentário a um material existente
func (s *ComentarioService) Criar(ctx context.Context, materialID, usuarioID, conteudo string) (*entities.Comentario, error) {
	material, err := s.materiais.FindByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domerrors.ErrMaterialNaoEncontrado
	}

	comentario := &entities.Comentario{
		Conteudo:   conteudo,
		UsuarioID:  usuarioID,
		MaterialID: materialID,
	}

	if err := s.comentarios.Create(ctx, comentario); err != nil {
		return nil, err
	}

	return comentario, nil
}

// ListarPorMaterial retorna os comentários de um material, paginados e
// ordenados por data de criação
func (s *ComentarioService) ListarPorMaterial(ctx context.Context, filtros repositories.ComentarioFiltros) ([]*repositories.ComentarioDetalhe, int64, error) {
	material, err := s.materiais.FindByID(ctx, filtros.MaterialID)
	if err != nil {
		return nil, 0, err
	}
	if material == nil {
		return nil, 0, domerrors.ErrMaterialNaoEncontrado
	}

	return s.comentarios.ListByMaterial(ctx, filtros)
}

// Atualizar edita o conteúdo de um comentário. Sem a permissão de admin,
// apenas o autor pode editar.
func (s *ComentarioService) Atualizar(ctx context.Context, id, usuarioID string, admin bool, conteudo string) (*entities.Comentario, error) {
	comentario, err := s.comentarios.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comentario == nil {
		return nil, domerrors.ErrComentarioNaoEncontrado
	}

	if !admin && !comentario.PertenceA(usuarioID) {
		return nil, domerrors.ErrNaoAutorizado
	}

	comentario.Conteudo = conteudo

	if err := s.comentarios.Update(ctx, comentario); err != nil {
		return nil, err
	}

	return comentario, nil
}

// Deletar faz o soft delete de um comentário. Sem a permissão de admin,
// apenas o autor pode deletar.
func (s *ComentarioService) Deletar(ctx context.Context, id, usuarioID string, admin bool) error {
	comentario, err := s.comentarios.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if comentario == nil {
		return domerrors.ErrComentarioNaoEncontrado
	}

	if !admin && !comentario.PertenceA(usuarioID) {
		return domerrors.ErrNaoAutorizado
	}

	return s.comentarios.Delete(ctx, id)
}
