package postgres

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/valueobjects"
)

// novoBancoDeTeste abre um SQLite em memória com o esquema migrado.
// A conexão é limitada a uma: conexões extras veriam um banco vazio.
func novoBancoDeTeste(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("falha ao abrir banco de teste: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("falha ao obter conexão: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := Migrate(db); err != nil {
		t.Fatalf("falha ao migrar esquema: %v", err)
	}

	return db
}

// criaEntidadeUsuario monta a entidade sem persistir
func criaEntidadeUsuario(t *testing.T, emailStr, apelido string) *entities.Usuario {
	t.Helper()

	email, err := valueobjects.NewEmail(emailStr)
	if err != nil {
		t.Fatalf("email inválido no teste: %v", err)
	}

	return &entities.Usuario{
		Email:     email,
		Nome:      "Usuário " + apelido,
		Apelido:   apelido,
		SenhaHash: "hash-de-teste",
		Role:      entities.RoleUser,
	}
}

func criaUsuarioBanco(t *testing.T, repo repositories.UsuarioRepository, emailStr, apelido string) *entities.Usuario {
	t.Helper()

	usuario := criaEntidadeUsuario(t, emailStr, apelido)
	if err := repo.Create(context.Background(), usuario); err != nil {
		t.Fatalf("falha ao criar usuário: %v", err)
	}

	return usuario
}

func criaCategoriaBanco(t *testing.T, repo repositories.CategoriaRepository, nome string) *entities.Categoria {
	t.Helper()

	categoria := &entities.Categoria{Nome: nome}
	if err := repo.Create(context.Background(), categoria); err != nil {
		t.Fatalf("falha ao criar categoria: %v", err)
	}

	return categoria
}

func criaMaterialBanco(t *testing.T, repo repositories.MaterialRepository, usuarioID, categoriaID, titulo string, flag entities.Flag) *entities.Material {
	t.Helper()

	material := &entities.Material{
		Titulo:      titulo,
		CategoriaID: categoriaID,
		Conteudo:    "Conteúdo de " + titulo,
		Flag:        flag,
		UsuarioID:   usuarioID,
	}
	if err := repo.Create(context.Background(), material); err != nil {
		t.Fatalf("falha ao criar material: %v", err)
	}

	return material
}
