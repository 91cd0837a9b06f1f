package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
)

func criaComentarioBanco(t *testing.T, repo repositories.ComentarioRepository, usuarioID, materialID, conteudo string, criadoEm time.Time) *entities.Comentario {
	t.Helper()

	comentario := &entities.Comentario{
		Conteudo:   conteudo,
		UsuarioID:  usuarioID,
		MaterialID: materialID,
		CreatedAt:  criadoEm,
		UpdatedAt:  criadoEm,
	}
	if err := repo.Create(context.Background(), comentario); err != nil {
		t.Fatalf("falha ao criar comentário: %v", err)
	}

	return comentario
}

func TestComentarioRepository_ListByMaterial(t *testing.T) {
	ctx := context.Background()
	db := novoBancoDeTeste(t)
	usuarios := NewUsuarioRepository(db)
	categorias := NewCategoriaRepository(db)
	materiais := NewMaterialRepository(db)
	repo := NewComentarioRepository(db)

	autor := criaUsuarioBanco(t, usuarios, "ana@example.com", "aninha")
	outro := criaUsuarioBanco(t, usuarios, "beto@example.com", "beto")
	categoria := criaCategoriaBanco(t, categorias, "Matemática")
	material := criaMaterialBanco(t, materiais, autor.ID, categoria.ID, "Frações", entities.FlagAprovado)
	outroMaterial := criaMaterialBanco(t, materiais, autor.ID, categoria.ID, "Geometria", entities.FlagAprovado)

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	antigo := criaComentarioBanco(t, repo, autor.ID, material.ID, "Primeiro", base)
	recente := criaComentarioBanco(t, repo, outro.ID, material.ID, "Segundo", base.Add(time.Minute))
	criaComentarioBanco(t, repo, autor.ID, outroMaterial.ID, "De outro material", base)

	t.Run("lista apenas o material pedido com dados do autor", func(t *testing.T) {
		detalhes, total, err := repo.ListByMaterial(ctx, repositories.ComentarioFiltros{MaterialID: material.ID})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if total != 2 {
			t.Errorf("esperava total 2, obteve %d", total)
		}
		if len(detalhes) != 2 {
			t.Fatalf("esperava 2 comentários, obteve %d", len(detalhes))
		}
		for _, detalhe := range detalhes {
			if detalhe.AutorNome == "" || detalhe.AutorApelido == "" {
				t.Error("esperava autor resolvido pelo join")
			}
		}
	})

	t.Run("ordem padrão traz o mais recente primeiro", func(t *testing.T) {
		detalhes, _, err := repo.ListByMaterial(ctx, repositories.ComentarioFiltros{MaterialID: material.ID})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if detalhes[0].Comentario.ID != recente.ID {
			t.Error("esperava o comentário mais recente primeiro")
		}
	})

	t.Run("ordem asc traz o mais antigo primeiro", func(t *testing.T) {
		detalhes, _, err := repo.ListByMaterial(ctx, repositories.ComentarioFiltros{MaterialID: material.ID, Ordem: "asc"})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if detalhes[0].Comentario.ID != antigo.ID {
			t.Error("esperava o comentário mais antigo primeiro")
		}
	})

	t.Run("filtra por usuário", func(t *testing.T) {
		_, total, err := repo.ListByMaterial(ctx, repositories.ComentarioFiltros{MaterialID: material.ID, UsuarioID: outro.ID})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if total != 1 {
			t.Errorf("esperava total 1, obteve %d", total)
		}
	})
}

func TestComentarioRepository_SoftDelete(t *testing.T) {
	ctx := context.Background()
	db := novoBancoDeTeste(t)
	usuarios := NewUsuarioRepository(db)
	categorias := NewCategoriaRepository(db)
	materiais := NewMaterialRepository(db)
	repo := NewComentarioRepository(db)

	autor := criaUsuarioBanco(t, usuarios, "ana@example.com", "aninha")
	categoria := criaCategoriaBanco(t, categorias, "Matemática")
	material := criaMaterialBanco(t, materiais, autor.ID, categoria.ID, "Frações", entities.FlagAprovado)
	comentario := criaComentarioBanco(t, repo, autor.ID, material.ID, "Apagável", time.Now())

	if err := repo.Delete(ctx, comentario.ID); err != nil {
		t.Fatalf("falha ao deletar: %v", err)
	}

	t.Run("deletado some do FindByID", func(t *testing.T) {
		encontrado, err := repo.FindByID(ctx, comentario.ID)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if encontrado != nil {
			t.Error("esperava nil para comentário deletado")
		}
	})

	t.Run("deletado some da listagem", func(t *testing.T) {
		_, total, err := repo.ListByMaterial(ctx, repositories.ComentarioFiltros{MaterialID: material.ID})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if total != 0 {
			t.Errorf("esperava total 0, obteve %d", total)
		}
	})
}
