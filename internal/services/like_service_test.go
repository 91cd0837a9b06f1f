package services

import (
	"context"
	"errors"
	"testing"

	domerrors "github.com/compartilhaedu/compartilhaedu-backend/internal/domain/errors"
)

func novoLikeService(t *testing.T) (*LikeService, *materialRepoFake) {
	t.Helper()

	materiais := novoMaterialRepoFake()
	likes := novoLikeRepoFake()
	return NewLikeService(likes, materiais, loggerFake{}), materiais
}

func TestLikeService_Toggle(t *testing.T) {
	ctx := context.Background()

	t.Run("primeiro toggle curte, segundo descurte", func(t *testing.T) {
		service, materiais := novoLikeService(t)
		material := criaMaterial(t, materiais, "autor-1")

		curtido, err := service.Toggle(ctx, material.ID, "usuario-1")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if !curtido {
			t.Error("esperava material curtido após o primeiro toggle")
		}

		total, err := service.ContarPorMaterial(ctx, material.ID)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if total != 1 {
			t.Errorf("esperava 1 curtida, obteve %d", total)
		}

		curtido, err = service.Toggle(ctx, material.ID, "usuario-1")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if curtido {
			t.Error("esperava material descurtido após o segundo toggle")
		}

		total, err = service.ContarPorMaterial(ctx, material.ID)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if total != 0 {
			t.Errorf("esperava 0 curtidas, obteve %d", total)
		}
	})

	t.Run("curtidas de usuários diferentes se acumulam", func(t *testing.T) {
		service, materiais := novoLikeService(t)
		material := criaMaterial(t, materiais, "autor-1")

		for _, usuario := range []string{"usuario-1", "usuario-2", "usuario-3"} {
			if _, err := service.Toggle(ctx, material.ID, usuario); err != nil {
				t.Fatalf("esperava sucesso, obteve erro: %v", err)
			}
		}

		total, err := service.ContarPorMaterial(ctx, material.ID)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if total != 3 {
			t.Errorf("esperava 3 curtidas, obteve %d", total)
		}
	})

	t.Run("material inexistente retorna 404", func(t *testing.T) {
		service, _ := novoLikeService(t)

		if _, err := service.Toggle(ctx, "fantasma", "usuario-1"); !errors.Is(err, domerrors.ErrMaterialNaoEncontrado) {
			t.Errorf("esperava ErrMaterialNaoEncontrado, obteve %v", err)
		}
		if _, err := service.ContarPorMaterial(ctx, "fantasma"); !errors.Is(err, domerrors.ErrMaterialNaoEncontrado) {
			t.Errorf("esperava ErrMaterialNaoEncontrado, obteve %v", err)
		}
	})
}
