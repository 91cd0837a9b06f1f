package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/handlers/middleware"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/services"
)

func novoComentarioHandlerDeTeste(t *testing.T) (*ComentarioHandler, *comentarioRepoFake, *materialRepoFake) {
	t.Helper()

	comentarios := novoComentarioRepoFake()
	materiais := novoMaterialRepoFake()
	service := services.NewComentarioService(comentarios, materiais, loggerFake{})
	return NewComentarioHandler(service), comentarios, materiais
}

func criaMaterialFake(t *testing.T, materiais *materialRepoFake, autorID string) *entities.Material {
	t.Helper()

	material := &entities.Material{
		Titulo:    "Frações",
		Conteudo:  "Conteúdo",
		Flag:      entities.FlagAprovado,
		UsuarioID: autorID,
	}
	if err := materiais.Create(context.Background(), material); err != nil {
		t.Fatalf("falha ao criar material: %v", err)
	}
	return material
}

func criaComentarioFake(t *testing.T, comentarios *comentarioRepoFake, materialID, autorID, conteudo string) *entities.Comentario {
	t.Helper()

	comentario := &entities.Comentario{
		Conteudo:   conteudo,
		UsuarioID:  autorID,
		MaterialID: materialID,
	}
	if err := comentarios.Create(context.Background(), comentario); err != nil {
		t.Fatalf("falha ao criar comentário: %v", err)
	}
	return comentario
}

func TestComentarioHandler_ListarPorMaterial(t *testing.T) {
	t.Run("repassa o filtro de autor da query string", func(t *testing.T) {
		handler, comentarios, materiais := novoComentarioHandlerDeTeste(t)
		material := criaMaterialFake(t, materiais, "autor-1")
		criaComentarioFake(t, comentarios, material.ID, "usuario-1", "Primeiro")
		criaComentarioFake(t, comentarios, material.ID, "usuario-2", "Segundo")

		c, w := novoContextoDeTeste(t, "GET", "/api/comentarios/"+material.ID+"?usuarioId=usuario-1", "")
		c.Params = gin.Params{{Key: "materialId", Value: material.ID}}

		handler.ListarPorMaterial(c)

		if w.Code != http.StatusOK {
			t.Fatalf("esperava status 200, obteve %d", w.Code)
		}
		if comentarios.ultimosFiltro.UsuarioID != "usuario-1" {
			t.Errorf("esperava filtro de autor 'usuario-1', repositório recebeu '%s'", comentarios.ultimosFiltro.UsuarioID)
		}

		var resp struct {
			Data struct {
				Total int64 `json:"total"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("falha ao decodificar resposta: %v", err)
		}
		if resp.Data.Total != 1 {
			t.Errorf("esperava total 1, obteve %d", resp.Data.Total)
		}
	})

	t.Run("sem usuarioId lista todos os comentários do material", func(t *testing.T) {
		handler, comentarios, materiais := novoComentarioHandlerDeTeste(t)
		material := criaMaterialFake(t, materiais, "autor-1")
		criaComentarioFake(t, comentarios, material.ID, "usuario-1", "Primeiro")
		criaComentarioFake(t, comentarios, material.ID, "usuario-2", "Segundo")

		c, w := novoContextoDeTeste(t, "GET", "/api/comentarios/"+material.ID, "")
		c.Params = gin.Params{{Key: "materialId", Value: material.ID}}

		handler.ListarPorMaterial(c)

		if w.Code != http.StatusOK {
			t.Fatalf("esperava status 200, obteve %d", w.Code)
		}
		if comentarios.ultimosFiltro.UsuarioID != "" {
			t.Errorf("esperava filtro de autor vazio, repositório recebeu '%s'", comentarios.ultimosFiltro.UsuarioID)
		}
	})
}

func TestComentarioHandler_RotasDeDono(t *testing.T) {
	t.Run("role de admin no token não dispensa a titularidade", func(t *testing.T) {
		handler, comentarios, materiais := novoComentarioHandlerDeTeste(t)
		material := criaMaterialFake(t, materiais, "autor-1")
		comentario := criaComentarioFake(t, comentarios, material.ID, "autor-1", "Original")

		c, w := novoContextoDeTeste(t, "PUT", "/api/comentarios/"+comentario.ID, `{"conteudo":"Moderado"}`)
		c.Params = gin.Params{{Key: "id", Value: comentario.ID}}
		c.Set(middleware.UsuarioIDContextKey, "intruso")
		c.Set(middleware.UsuarioRoleContextKey, string(entities.RoleAdmin))

		handler.Atualizar(c)

		if w.Code != http.StatusForbidden {
			t.Fatalf("esperava status 403, obteve %d", w.Code)
		}

		var resp struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("falha ao decodificar resposta: %v", err)
		}
		if resp.Error.Code != "unauthorized" {
			t.Errorf("esperava código 'unauthorized', obteve '%s'", resp.Error.Code)
		}
		if comentarios.comentarios[comentario.ID].Conteudo != "Original" {
			t.Error("esperava conteúdo preservado após tentativa negada")
		}

		c, w = novoContextoDeTeste(t, "DELETE", "/api/comentarios/"+comentario.ID, "")
		c.Params = gin.Params{{Key: "id", Value: comentario.ID}}
		c.Set(middleware.UsuarioIDContextKey, "intruso")
		c.Set(middleware.UsuarioRoleContextKey, string(entities.RoleAdmin))

		handler.Deletar(c)

		if w.Code != http.StatusForbidden {
			t.Fatalf("esperava status 403, obteve %d", w.Code)
		}
		if comentarios.comentarios[comentario.ID].DeletedAt != nil {
			t.Error("esperava comentário preservado após tentativa negada")
		}
	})

	t.Run("autor edita o próprio comentário", func(t *testing.T) {
		handler, comentarios, materiais := novoComentarioHandlerDeTeste(t)
		material := criaMaterialFake(t, materiais, "autor-1")
		comentario := criaComentarioFake(t, comentarios, material.ID, "autor-1", "Original")

		c, w := novoContextoDeTeste(t, "PUT", "/api/comentarios/"+comentario.ID, `{"conteudo":"Editado"}`)
		c.Params = gin.Params{{Key: "id", Value: comentario.ID}}
		c.Set(middleware.UsuarioIDContextKey, "autor-1")

		handler.Atualizar(c)

		if w.Code != http.StatusOK {
			t.Fatalf("esperava status 200, obteve %d", w.Code)
		}
		if comentarios.comentarios[comentario.ID].Conteudo != "Editado" {
			t.Error("esperava conteúdo editado pelo autor")
		}
	})

	t.Run("rota administrativa modera comentário de terceiros", func(t *testing.T) {
		handler, comentarios, materiais := novoComentarioHandlerDeTeste(t)
		material := criaMaterialFake(t, materiais, "autor-1")
		comentario := criaComentarioFake(t, comentarios, material.ID, "autor-1", "Original")

		c, w := novoContextoDeTeste(t, "PUT", "/api/comentarios/admin/"+comentario.ID, `{"conteudo":"Moderado"}`)
		c.Params = gin.Params{{Key: "id", Value: comentario.ID}}
		c.Set(middleware.UsuarioIDContextKey, "admin-1")

		handler.AtualizarAdmin(c)

		if w.Code != http.StatusOK {
			t.Fatalf("esperava status 200, obteve %d", w.Code)
		}
		if comentarios.comentarios[comentario.ID].Conteudo != "Moderado" {
			t.Error("esperava conteúdo moderado pela rota administrativa")
		}
	})
}
