package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/compartilhaedu/compartilhaedu-backend/docs"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/ports"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/repositories"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/valueobjects"
	httphandlers "github.com/compartilhaedu/compartilhaedu-backend/internal/handlers/http"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/handlers/middleware"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/infrastructure/auth"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/infrastructure/config"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/infrastructure/i18n"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/infrastructure/logging"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/infrastructure/persistence/postgres"
	"github.com/compartilhaedu/compartilhaedu-backend/internal/services"
)

func main() {
	// Carregar variáveis do .env (ignorado se o arquivo não existir)
	_ = godotenv.Load()

	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting compartilhaedu backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	catalog, err := i18n.NewCatalog("pt-BR")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", catalog.DefaultLanguage(),
		"supported_languages", catalog.SupportedLanguages(),
	)

	// Inicializar infraestrutura de autenticação
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiry)
	senhaHasher := auth.NewSenhaHasher()

	// Inicializar repositories
	usuarioRepo := postgres.NewUsuarioRepository(db)
	materialRepo := postgres.NewMaterialRepository(db)
	comentarioRepo := postgres.NewComentarioRepository(db)
	likeRepo := postgres.NewLikeRepository(db)
	categoriaRepo := postgres.NewCategoriaRepository(db)
	anexoRepo := postgres.NewAnexoRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Garantir o usuário admin inicial
	if err := seedAdmin(context.Background(), cfg, usuarioRepo, senhaHasher, logger); err != nil {
		logger.Error("failed to seed admin user", "error", err)
		log.Fatal(err)
	}

	// Inicializar services
	authService := services.NewAuthService(usuarioRepo, senhaHasher, tokenManager, logger)
	usuarioService := services.NewUsuarioService(usuarioRepo, uow, senhaHasher, logger)
	materialService := services.NewMaterialService(materialRepo, categoriaRepo, anexoRepo, logger)
	comentarioService := services.NewComentarioService(comentarioRepo, materialRepo, logger)
	likeService := services.NewLikeService(likeRepo, materialRepo, logger)
	categoriaService := services.NewCategoriaService(categoriaRepo, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService)
	usuarioHandler := httphandlers.NewUsuarioHandler(usuarioService)
	materialHandler := httphandlers.NewMaterialHandler(materialService)
	comentarioHandler := httphandlers.NewComentarioHandler(comentarioService)
	likeHandler := httphandlers.NewLikeHandler(likeService)
	categoriaHandler := httphandlers.NewCategoriaHandler(categoriaService)

	// Inicializar middlewares
	authMiddleware := middleware.NewAuthMiddleware(tokenManager)
	authzMiddleware := middleware.NewAuthzMiddleware(usuarioRepo)
	i18nMiddleware := middleware.NewI18nMiddleware(catalog)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware i18n
	router.Use(i18nMiddleware.Handle())

	// Middleware CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORS.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Documentação
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	autenticado := authMiddleware.Handle()
	somenteAdmin := authzMiddleware.RequireAdmin()

	// API routes
	api := router.Group("/api")
	{
		// Autenticação
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/cadastrar", authHandler.Cadastrar)
		}

		// Usuários
		usuarios := api.Group("/usuarios")
		{
			usuarios.GET("/search", autenticado, usuarioHandler.Search)
			usuarios.GET("/admin/:apelido", autenticado, somenteAdmin, usuarioHandler.PerfilAdmin)
			usuarios.PUT("/admin/:id", autenticado, somenteAdmin, usuarioHandler.Atualizar)
			usuarios.DELETE("/admin/:id", autenticado, somenteAdmin, usuarioHandler.Deletar)
			usuarios.GET("/:apelido", autenticado, authzMiddleware.RequireSelfOrAdmin("apelido"), usuarioHandler.PerfilPublico)
		}

		// Configurações da própria conta
		settings := api.Group("/settings", autenticado)
		{
			settings.PUT("/perfil", usuarioHandler.AtualizarPerfil)
			settings.PUT("/senha", usuarioHandler.AtualizarSenha)
			settings.PUT("/avatar", usuarioHandler.AtualizarAvatar)
			settings.PUT("/banner", usuarioHandler.AtualizarBanner)
			settings.DELETE("/conta", usuarioHandler.DeletarConta)
		}

		// Materiais
		materiais := api.Group("/materiais")
		{
			materiais.GET("", materialHandler.Listar)
			materiais.POST("", autenticado, materialHandler.Criar)
			materiais.PUT("/admin/:id", autenticado, somenteAdmin, materialHandler.AtualizarAdmin)
			materiais.DELETE("/admin/:id", autenticado, somenteAdmin, materialHandler.DeletarAdmin)
			materiais.GET("/:id", materialHandler.BuscarPorID)
			materiais.PUT("/:id", autenticado, materialHandler.Atualizar)
			materiais.DELETE("/:id", autenticado, materialHandler.Deletar)
			materiais.GET("/:id/anexos", materialHandler.ListarAnexos)
		}

		// Comentários
		comentarios := api.Group("/comentarios")
		{
			comentarios.PUT("/admin/:id", autenticado, somenteAdmin, comentarioHandler.AtualizarAdmin)
			comentarios.DELETE("/admin/:id", autenticado, somenteAdmin, comentarioHandler.DeletarAdmin)
			comentarios.POST("/:materialId", autenticado, comentarioHandler.Criar)
			comentarios.GET("/:materialId", comentarioHandler.ListarPorMaterial)
			comentarios.PUT("/:id", autenticado, comentarioHandler.Atualizar)
			comentarios.DELETE("/:id", autenticado, comentarioHandler.Deletar)
		}

		// Curtidas
		likes := api.Group("/likes", autenticado)
		{
			likes.POST("/:materialId", likeHandler.Toggle)
			likes.GET("/:materialId", likeHandler.Contar)
		}

		// Categorias
		categorias := api.Group("/categorias", autenticado)
		{
			categorias.GET("", categoriaHandler.Listar)
			categorias.POST("", somenteAdmin, categoriaHandler.Adicionar)
			categorias.PUT("/:id", somenteAdmin, categoriaHandler.Atualizar)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// seedAdmin cria o usuário admin inicial quando ele ainda não existe.
// Sem ADMIN_PASSWORD definido, o seed é pulado.
func seedAdmin(
	ctx context.Context,
	cfg *config.Config,
	usuarios repositories.UsuarioRepository,
	hasher *auth.SenhaHasher,
	logger ports.Logger,
) error {
	if cfg.Admin.Senha == "" {
		logger.Warn("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	existente, err := usuarios.FindByEmail(ctx, cfg.Admin.Email)
	if err != nil {
		return err
	}
	if existente != nil {
		return nil
	}

	email, err := valueobjects.NewEmail(cfg.Admin.Email)
	if err != nil {
		return err
	}

	hash, err := hasher.Hash(cfg.Admin.Senha)
	if err != nil {
		return err
	}

	admin := &entities.Usuario{
		Email:     email,
		Nome:      cfg.Admin.Nome,
		Apelido:   cfg.Admin.Apelido,
		SenhaHash: hash,
		Role:      entities.RoleAdmin,
	}

	if err := usuarios.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("admin user created", "email", cfg.Admin.Email, "apelido", cfg.Admin.Apelido)
	return nil
}
