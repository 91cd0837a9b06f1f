package services

import (
	"context"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
	domerrors "github.com/compartilhaedu/compartilhaedu-backend/internal/domain/errors"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/ports"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
)

// LikeService contém a lógica de curtidas (semântica de toggle)
type LikeService struct {
	likes     repositories.LikeRepository
	materiais repositories.MaterialRepository
	logger    ports.Logger
}

// NewLikeService cria um novo LikeService
func NewLikeService(
	likes repositories.LikeRepository,
	materiais repositories.MaterialRepository,
	logger ports.Logger,
) *LikeService {
	return &LikeService{
		likes:     likes,
		materiais: materiais,
		logger:    logger,
	}
}

// Toggle alterna a curtida do usuário no material: remove se existir,
// cria se não existir. Retorna true quando o material passou a estar curtido.
func (s *LikeService) Toggle(ctx context.Context, materialID, usuarioID string) (bool, error) {
	material, err := s.materiais.FindByID(ctx, materialID)
	if err != nil {
		return false, err
	}
	if material == nil {
		return false, domerrors.ErrMaterialNaoEncontrado
	}

	existente, err := s.likes.FindByUsuarioEMaterial(ctx, usuarioID, materialID)
	if err != nil {
		return false, err
	}

	if existente != nil {
		if err := s.likes.Delete(ctx, existente.ID); err != nil {
			return false, err
		}
		return false, nil
	}

	like := &entities.Like{
		UsuarioID:  usuarioID,
		MaterialID: materialID,
	}
	if err := s.likes.Create(ctx, like); err != nil {
		return false, err
	}

	return true, nil
}

// ContarPorMaterial retorna o total de curtidas de um material existente
func (s *LikeService) ContarPorMaterial(ctx context.Context, materialID string) (int64, error) {
	material, err := s.materiais.FindByID(ctx, materialID)
	if err != nil {
		return 0, err
	}
	if material == nil {
		return 0, domerrors.ErrMaterialNaoEncontrado
	}

	return s.likes.CountByMaterial(ctx, materialID)
}
