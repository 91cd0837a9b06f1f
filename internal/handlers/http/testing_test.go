package http

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/ports"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
)

// novoContextoDeTeste monta um contexto Gin para chamar um handler
// diretamente. Corpo não vazio é enviado como JSON.
func novoContextoDeTeste(t *testing.T, metodo, alvo, corpo string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var body io.Reader
	if corpo != "" {
		body = strings.NewReader(corpo)
	}
	c.Request = httptest.NewRequest(metodo, alvo, body)
	if corpo != "" {
		c.Request.Header.Set("Content-Type", "application/json")
	}

	return c, w
}

// loggerFake descarta todas as mensagens
type loggerFake struct{}

func (loggerFake) Info(string, ...any)  {}
func (loggerFake) Error(string, ...any) {}
func (loggerFake) Debug(string, ...any) {}
func (loggerFake) Warn(string, ...any)  {}
func (l loggerFake) With(...any) ports.Logger {
	return l
}

// materialRepoFake implementa MaterialRepository em memória
type materialRepoFake struct {
	seq       int
	materiais map[string]*entities.Material
}

func novoMaterialRepoFake() *materialRepoFake {
	return &materialRepoFake{materiais: make(map[string]*entities.Material)}
}

func (f *materialRepoFake) Create(_ context.Context, material *entities.Material) error {
	f.seq++
	material.ID = fmt.Sprintf("material-%d", f.seq)
	material.CreatedAt = time.Now()
	material.UpdatedAt = material.CreatedAt
	f.materiais[material.ID] = material
	return nil
}

func (f *materialRepoFake) FindByID(_ context.Context, id string) (*entities.Material, error) {
	material, ok := f.materiais[id]
	if !ok || material.IsDeleted() {
		return nil, nil
	}
	return material, nil
}

func (f *materialRepoFake) FindDetalheByID(ctx context.Context, id string) (*repositories.MaterialDetalhe, error) {
	material, err := f.FindByID(ctx, id)
	if err != nil || material == nil {
		return nil, err
	}
	return &repositories.MaterialDetalhe{Material: *material}, nil
}

func (f *materialRepoFake) Update(_ context.Context, material *entities.Material) error {
	material.UpdatedAt = time.Now()
	f.materiais[material.ID] = material
	return nil
}

func (f *materialRepoFake) Delete(_ context.Context, id string) error {
	if material, ok := f.materiais[id]; ok {
		now := time.Now()
		material.DeletedAt = &now
	}
	return nil
}

func (f *materialRepoFake) List(_ context.Context, _ repositories.MaterialFiltros) ([]*repositories.MaterialDetalhe, int64, error) {
	var resultado []*repositories.MaterialDetalhe
	for _, material := range f.materiais {
		if material.IsDeleted() {
			continue
		}
		resultado = append(resultado, &repositories.MaterialDetalhe{Material: *material})
	}
	return resultado, int64(len(resultado)), nil
}

// comentarioRepoFake implementa ComentarioRepository em memória e guarda os
// últimos filtros recebidos na listagem
type comentarioRepoFake struct {
	seq           int
	comentarios   map[string]*entities.Comentario
	ultimosFiltro repositories.ComentarioFiltros
}

func novoComentarioRepoFake() *comentarioRepoFake {
	return &comentarioRepoFake{comentarios: make(map[string]*entities.Comentario)}
}

func (f *comentarioRepoFake) Create(_ context.Context, comentario *entities.Comentario) error {
	f.seq++
	comentario.ID = fmt.Sprintf("comentario-%d", f.seq)
	comentario.CreatedAt = time.Now()
	comentario.UpdatedAt = comentario.CreatedAt
	f.comentarios[comentario.ID] = comentario
	return nil
}

func (f *comentarioRepoFake) FindByID(_ context.Context, id string) (*entities.Comentario, error) {
	comentario, ok := f.comentarios[id]
	if !ok || comentario.DeletedAt != nil {
		return nil, nil
	}
	return comentario, nil
}

func (f *comentarioRepoFake) Update(_ context.Context, comentario *entities.Comentario) error {
	comentario.UpdatedAt = time.Now()
	f.comentarios[comentario.ID] = comentario
	return nil
}

func (f *comentarioRepoFake) Delete(_ context.Context, id string) error {
	if comentario, ok := f.comentarios[id]; ok {
		now := time.Now()
		comentario.DeletedAt = &now
	}
	return nil
}

func (f *comentarioRepoFake) ListByMaterial(_ context.Context, filtros repositories.ComentarioFiltros) ([]*repositories.ComentarioDetalhe, int64, error) {
	f.ultimosFiltro = filtros

	var resultado []*repositories.ComentarioDetalhe
	for _, comentario := range f.comentarios {
		if comentario.DeletedAt != nil || comentario.MaterialID != filtros.MaterialID {
			continue
		}
		if filtros.UsuarioID != "" && comentario.UsuarioID != filtros.UsuarioID {
			continue
		}
		resultado = append(resultado, &repositories.ComentarioDetalhe{Comentario: *comentario})
	}
	return resultado, int64(len(resultado)), nil
}

// categoriaRepoFake implementa CategoriaRepository em memória
type categoriaRepoFake struct {
	seq        int
	categorias map[string]*entities.Categoria
}

func novoCategoriaRepoFake() *categoriaRepoFake {
	return &categoriaRepoFake{categorias: make(map[string]*entities.Categoria)}
}

func (f *categoriaRepoFake) Create(_ context.Context, categoria *entities.Categoria) error {
	f.seq++
	categoria.ID = fmt.Sprintf("categoria-%d", f.seq)
	categoria.CreatedAt = time.Now()
	f.categorias[categoria.ID] = categoria
	return nil
}

func (f *categoriaRepoFake) FindByID(_ context.Context, id string) (*entities.Categoria, error) {
	categoria, ok := f.categorias[id]
	if !ok {
		return nil, nil
	}
	return categoria, nil
}

func (f *categoriaRepoFake) FindByNome(_ context.Context, nome string) (*entities.Categoria, error) {
	for _, categoria := range f.categorias {
		if categoria.Nome == nome {
			return categoria, nil
		}
	}
	return nil, nil
}

func (f *categoriaRepoFake) Update(_ context.Context, categoria *entities.Categoria) error {
	f.categorias[categoria.ID] = categoria
	return nil
}

func (f *categoriaRepoFake) List(_ context.Context, _ repositories.CategoriaFiltros) ([]*entities.Categoria, int64, error) {
	var resultado []*entities.Categoria
	for _, categoria := range f.categorias {
		resultado = append(resultado, categoria)
	}
	return resultado, int64(len(resultado)), nil
}

// anexoRepoFake implementa AnexoRepository em memória
type anexoRepoFake struct {
	anexos []*entities.AnexoMaterial
}

func (f *anexoRepoFake) Create(_ context.Context, anexo *entities.AnexoMaterial) error {
	f.anexos = append(f.anexos, anexo)
	return nil
}

func (f *anexoRepoFake) ListByMaterial(_ context.Context, materialID string) ([]*entities.AnexoMaterial, error) {
	var resultado []*entities.AnexoMaterial
	for _, anexo := range f.anexos {
		if anexo.MaterialID == materialID {
			resultado = append(resultado, anexo)
		}
	}
	return resultado, nil
}
