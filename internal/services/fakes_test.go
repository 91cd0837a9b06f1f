package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
	domerrors "github.com/compartilhaedu/compartilhaedu-backend/internal/domain/errors"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/ports"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
)

// loggerFake descarta todas as mensagens
type loggerFake struct{}

func (loggerFake) Info(string, ...any)  {}
func (loggerFake) Error(string, ...any) {}
func (loggerFake) Debug(string, ...any) {}
func (loggerFake) Warn(string, ...any)  {}
func (l loggerFake) With(...any) ports.Logger {
	return l
}

// uowFake executa a função diretamente, sem transação real
type uowFake struct{}

func (uowFake) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (uowFake) Commit(context.Context) error                       { return nil }
func (uowFake) Rollback(context.Context) error                     { return nil }
func (uowFake) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// usuarioRepoFake implementa UsuarioRepository em memória, com a mesma
// tradução de conflitos de unicidade do repositório real
type usuarioRepoFake struct {
	seq      int
	usuarios map[string]*entities.Usuario
}

func novoUsuarioRepoFake() *usuarioRepoFake {
	return &usuarioRepoFake{usuarios: make(map[string]*entities.Usuario)}
}

func (f *usuarioRepoFake) Create(_ context.Context, usuario *entities.Usuario) error {
	for _, existente := range f.usuarios {
		if existente.Email.String() == usuario.Email.String() {
			return domerrors.ErrEmailJaExiste
		}
		if existente.Apelido == usuario.Apelido {
			return domerrors.ErrApelidoJaExiste
		}
	}

	f.seq++
	usuario.ID = fmt.Sprintf("usuario-%d", f.seq)
	usuario.CreatedAt = time.Now()
	usuario.UpdatedAt = usuario.CreatedAt
	f.usuarios[usuario.ID] = usuario
	return nil
}

func (f *usuarioRepoFake) FindByID(_ context.Context, id string) (*entities.Usuario, error) {
	usuario, ok := f.usuarios[id]
	if !ok || usuario.IsDeleted() {
		return nil, nil
	}
	return usuario, nil
}

func (f *usuarioRepoFake) FindByEmail(_ context.Context, email string) (*entities.Usuario, error) {
	for _, usuario := range f.usuarios {
		if usuario.Email.String() == email && !usuario.IsDeleted() {
			return usuario, nil
		}
	}
	return nil, nil
}

func (f *usuarioRepoFake) FindByApelido(_ context.Context, apelido string) (*entities.Usuario, error) {
	for _, usuario := range f.usuarios {
		if usuario.Apelido == apelido && !usuario.IsDeleted() {
			return usuario, nil
		}
	}
	return nil, nil
}

func (f *usuarioRepoFake) FindByApelidoComDeletados(_ context.Context, apelido string) (*entities.Usuario, error) {
	for _, usuario := range f.usuarios {
		if usuario.Apelido == apelido {
			return usuario, nil
		}
	}
	return nil, nil
}

func (f *usuarioRepoFake) Update(_ context.Context, usuario *entities.Usuario) error {
	usuario.UpdatedAt = time.Now()
	f.usuarios[usuario.ID] = usuario
	return nil
}

func (f *usuarioRepoFake) SearchByApelido(_ context.Context, filtros repositories.UsuarioFiltros) ([]*entities.Usuario, int64, error) {
	var resultado []*entities.Usuario
	for _, usuario := range f.usuarios {
		if usuario.IsDeleted() {
			continue
		}
		if strings.Contains(strings.ToLower(usuario.Apelido), strings.ToLower(filtros.Apelido)) {
			resultado = append(resultado, usuario)
		}
	}
	return resultado, int64(len(resultado)), nil
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

// comentarioRepoFake implementa ComentarioRepository em memória
type comentarioRepoFake struct {
	seq         int
	comentarios map[string]*entities.Comentario
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
	var resultado []*repositories.ComentarioDetalhe
	for _, comentario := range f.comentarios {
		if comentario.DeletedAt != nil || comentario.MaterialID != filtros.MaterialID {
			continue
		}
		resultado = append(resultado, &repositories.ComentarioDetalhe{Comentario: *comentario})
	}
	return resultado, int64(len(resultado)), nil
}

// likeRepoFake implementa LikeRepository em memória (remoção física)
type likeRepoFake struct {
	seq   int
	likes map[string]*entities.Like
}

func novoLikeRepoFake() *likeRepoFake {
	return &likeRepoFake{likes: make(map[string]*entities.Like)}
}

func (f *likeRepoFake) Create(_ context.Context, like *entities.Like) error {
	f.seq++
	like.ID = fmt.Sprintf("like-%d", f.seq)
	like.CreatedAt = time.Now()
	f.likes[like.ID] = like
	return nil
}

func (f *likeRepoFake) FindByUsuarioEMaterial(_ context.Context, usuarioID, materialID string) (*entities.Like, error) {
	for _, like := range f.likes {
		if like.UsuarioID == usuarioID && like.MaterialID == materialID {
			return like, nil
		}
	}
	return nil, nil
}

func (f *likeRepoFake) Delete(_ context.Context, id string) error {
	delete(f.likes, id)
	return nil
}

func (f *likeRepoFake) CountByMaterial(_ context.Context, materialID string) (int64, error) {
	var total int64
	for _, like := range f.likes {
		if like.MaterialID == materialID {
			total++
		}
	}
	return total, nil
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
	for _, existente := range f.categorias {
		if existente.Nome == categoria.Nome {
			return domerrors.ErrCategoriaJaExiste
		}
	}

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

func (f *categoriaRepoFake) List(_ context.Context, filtros repositories.CategoriaFiltros) ([]*entities.Categoria, int64, error) {
	var resultado []*entities.Categoria
	for _, categoria := range f.categorias {
		if strings.Contains(strings.ToLower(categoria.Nome), strings.ToLower(filtros.Nome)) {
			resultado = append(resultado, categoria)
		}
	}
	return resultado, int64(len(resultado)), nil
}

// anexoRepoFake implementa AnexoRepository em memória
type anexoRepoFake struct {
	seq    int
	anexos []*entities.AnexoMaterial
}

func novoAnexoRepoFake() *anexoRepoFake {
	return &anexoRepoFake{}
}

func (f *anexoRepoFake) Create(_ context.Context, anexo *entities.AnexoMaterial) error {
	f.seq++
	anexo.ID = fmt.Sprintf("anexo-%d", f.seq)
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
