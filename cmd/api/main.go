package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/seu-usuario/analise-credito/internal/application/alerta"
	"github.com/seu-usuario/analise-credito/internal/application/analise"
	"github.com/seu-usuario/analise-credito/internal/application/cadastro"
	"github.com/seu-usuario/analise-credito/internal/application/clientenovo"
	"github.com/seu-usuario/analise-credito/internal/application/configuracao"
	"github.com/seu-usuario/analise-credito/internal/application/scoring"
	"github.com/seu-usuario/analise-credito/internal/infrastructure/postgres"
	httpRouter "github.com/seu-usuario/analise-credito/internal/interfaces/http"
	"github.com/seu-usuario/analise-credito/pkg/config"
	"github.com/seu-usuario/analise-credito/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	configRepo := postgres.NewConfiguracaoRepository(pool)
	grupoRepo := postgres.NewGrupoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	analiseRepo := postgres.NewAnaliseRepository(pool)
	dadosBIRepo := postgres.NewDadosBIRepository(pool)
	restricaoRepo := postgres.NewRestricaoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	scoringUC := scoring.NewUseCase(configRepo, dadosBIRepo, clienteRepo)
	alertaUC := alerta.NewUseCase(configRepo, clienteRepo, grupoRepo, pedidoRepo, restricaoRepo)
	analiseUC := analise.NewUseCase(configRepo, analiseRepo, pedidoRepo, clienteRepo, grupoRepo, restricaoRepo)
	clienteNovoUC := clientenovo.NewUseCase(configRepo, analiseRepo, clienteRepo, restricaoRepo, analiseUC)
	cadastroUC := cadastro.NewUseCase(clienteRepo, grupoRepo, restricaoRepo, txRunner)
	configuracaoUC := configuracao.NewUseCase(configRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AnaliseUC:      analiseUC,
		ClienteNovoUC:  clienteNovoUC,
		CadastroUC:     cadastroUC,
		ConfiguracaoUC: configuracaoUC,
		ScoringUC:      scoringUC,
		AlertaUC:       alertaUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
