package services

import (
	"context"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
	domerrors "github.com/compartilhaedu/compartilhaedu-backend/internal/domain/errors"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/ports"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
)

// CategoriaService contém a lógica de negócio para categorias
type CategoriaService struct {
	categorias repositories.CategoriaRepository
	logger     ports.Logger
}

// NewCategoriaService cria um novo CategoriaService
func NewCategoriaService(categorias repositories.CategoriaRepository, logger ports.Logger) *CategoriaService {
	return &CategoriaService{
		categorias: categorias,
		logger:     logger,
	}
}

// Adicionar cria uma categoria com nome único (match exato, case-sensitive)
func (s *CategoriaService) Adicionar(ctx context.Context, nome, descricao string) (*entities.Categoria, error) {
	existente, err := s.categorias.FindByNome(ctx, nome)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domerrors.ErrCategoriaJaExiste
	}

	categoria := &entities.Categoria{
		Nome:      nome,
		Descricao: descricao,
	}

	if err := s.categorias.Create(ctx, categoria); err != nil {
		return nil, err
	}

	s.logger.Info("categoria adicionada", "categoria_id", categoria.ID, "nome", categoria.Nome)
	return categoria, nil
}

// Atualizar sobrescreve nome e/ou descrição de uma categoria
func (s *CategoriaService) Atualizar(ctx context.Context, id string, nome, descricao *string) (*entities.Categoria, error) {
	categoria, err := s.categorias.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domerrors.ErrCategoriaNaoEncontrada
	}

	if nome != nil && *nome != "" {
		categoria.Nome = *nome
	}
	if descricao != nil && *descricao != "" {
		categoria.Descricao = *descricao
	}

	if err := s.categorias.Update(ctx, categoria); err != nil {
		return nil, err
	}

	return categoria, nil
}

// Listar retorna categorias filtradas por substring do nome, em ordem alfabética
func (s *CategoriaService) Listar(ctx context.Context, filtros repositories.CategoriaFiltros) ([]*entities.Categoria, int64, error) {
	return s.categorias.List(ctx, filtros)
}
