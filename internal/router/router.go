package router

import (
	"time"

	"github.com/misterzhermit/URSTORE/internal/config"
	"github.com/misterzhermit/URSTORE/internal/handler"
	"github.com/misterzhermit/URSTORE/internal/middleware"
	"github.com/misterzhermit/URSTORE/internal/repository"
	"github.com/misterzhermit/URSTORE/internal/service"
	"github.com/misterzhermit/URSTORE/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	coletaRepo := repository.NewColetaRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	despesaRepo := repository.NewDespesaRepository(db)
	perdaRepo := repository.NewPerdaRepository(db)
	fechamentoRepo := repository.NewFechamentoRepository(db)
	empresaRepo := repository.NewEmpresaRepository(db)
	resetRepo := repository.NewResetRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	catalogoSvc := service.NewCatalogoService(produtoRepo)
	coletaSvc := service.NewColetaService(coletaRepo, produtoRepo, despesaRepo)
	perdaSvc := service.NewPerdaService(perdaRepo, produtoRepo, despesaRepo, cfg)
	pedidoSvc := service.NewPedidoService(pedidoRepo, produtoRepo, perdaSvc, dispatcher)
	despesaSvc := service.NewDespesaService(despesaRepo)
	fechamentoSvc := service.NewFechamentoService(fechamentoRepo, pedidoRepo, produtoRepo, despesaRepo, coletaRepo, cfg)
	relatorioSvc := service.NewRelatorioService(pedidoRepo, produtoRepo, despesaRepo, coletaRepo, perdaRepo, fechamentoRepo, empresaRepo)
	empresaSvc := service.NewEmpresaService(empresaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	produtosH := handler.NewProdutosHandler(catalogoSvc)
	coletaH := handler.NewColetaHandler(coletaSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	perdasH := handler.NewPerdasHandler(perdaSvc)
	despesasH := handler.NewDespesasHandler(despesaSvc)
	fechamentoH := handler.NewFechamentoHandler(fechamentoSvc)
	relatoriosH := handler.NewRelatoriosHandler(relatorioSvc)
	empresaH := handler.NewEmpresaHandler(empresaSvc)
	adminH := handler.NewAdminHandler(resetRepo)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes — every operator role can run the day-to-day flow;
	// destructive maintenance is administrador-only.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		produtos := v1.Group("/produtos")
		{
			produtos.POST("", produtosH.Criar)
			produtos.GET("", produtosH.Listar)
			produtos.GET("/:id", produtosH.ObterPorID)
			produtos.PUT("/:id", produtosH.Atualizar)
		}

		coleta := v1.Group("/coleta")
		{
			coleta.POST("", coletaH.Adicionar)
			coleta.GET("", coletaH.Listar)
			coleta.POST("/:id/alternar", coletaH.Alternar)
			coleta.DELETE("/:id", coletaH.Remover)
			coleta.GET("/divergencias", coletaH.ListarDivergencias)
		}

		pedidos := v1.Group("/pedidos")
		{
			pedidos.POST("", pedidosH.Criar)
			pedidos.GET("", pedidosH.Listar)
			pedidos.GET("/:id", pedidosH.ObterPorID)
			pedidos.PUT("/:id", pedidosH.Atualizar)
			pedidos.POST("/:id/avancar", pedidosH.AvancarStatus)
			pedidos.POST("/:id/separacao/iniciar", pedidosH.IniciarSeparacao)
			pedidos.POST("/:id/separacao/confirmar", pedidosH.ConfirmarSeparacao)
			pedidos.POST("/:id/itens/:indice/devolver", pedidosH.DevolverItem)
			pedidos.POST("/fiado/quitar", pedidosH.QuitarFiado)
		}

		perdas := v1.Group("/perdas")
		{
			perdas.POST("", perdasH.Registrar)
			perdas.GET("", perdasH.Listar)
		}

		despesas := v1.Group("/despesas")
		{
			despesas.POST("", despesasH.Adicionar)
			despesas.GET("", despesasH.Listar)
			despesas.DELETE("/:id", despesasH.Remover)
		}

		fechamento := v1.Group("/fechamento")
		{
			fechamento.POST("/fechar", fechamentoH.FecharDia)
			fechamento.GET("/historico", fechamentoH.Historico)
		}

		relatorios := v1.Group("/relatorios")
		{
			relatorios.GET("/resumo-diario", relatoriosH.ResumoDiario)
			relatorios.GET("/balanco-mensal", relatoriosH.BalancoMensal)
			relatorios.GET("/snapshot", relatoriosH.Snapshot)
		}

		empresa := v1.Group("/empresa")
		{
			empresa.GET("", empresaH.Obter)
			empresa.PUT("", empresaH.Salvar)
		}

		admin := v1.Group("/admin", middleware.RequireRole("administrador"))
		{
			admin.POST("/reset", adminH.Reset)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
