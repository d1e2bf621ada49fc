package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/analise-credito/internal/application/alerta"
	"github.com/seu-usuario/analise-credito/internal/application/analise"
	"github.com/seu-usuario/analise-credito/internal/application/cadastro"
	"github.com/seu-usuario/analise-credito/internal/application/clientenovo"
	"github.com/seu-usuario/analise-credito/internal/application/configuracao"
	"github.com/seu-usuario/analise-credito/internal/application/scoring"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AnaliseUC      *analise.UseCase
	ClienteNovoUC  *clientenovo.UseCase
	CadastroUC     *cadastro.UseCase
	ConfiguracaoUC *configuracao.UseCase
	ScoringUC      *scoring.UseCase
	AlertaUC       *alerta.UseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Cadastro
	cadastroHandler := NewCadastroHandler(deps.CadastroUC, deps.ScoringUC, deps.AlertaUC)
	clientes := api.Group("/clientes")
	clientes.Post("/", cadastroHandler.CriarCliente)
	clientes.Post("/:id/restricoes", cadastroHandler.CriarRestricao)
	api.Delete("/restricoes/:id", cadastroHandler.ExcluirRestricao)

	pedidos := api.Group("/pedidos")
	pedidos.Post("/", cadastroHandler.CriarPedido)
	pedidos.Get("/:id/alertas", cadastroHandler.Alertas)

	api.Get("/grupos/:id/limite-sugerido", cadastroHandler.LimiteSugerido)

	// Motor de análise
	analiseHandler := NewAnaliseHandler(deps.AnaliseUC, deps.AlertaUC)
	analises := api.Group("/analises")
	analises.Get("/kanban", analiseHandler.Kanban)
	analises.Get("/:id", analiseHandler.GetByID)
	analises.Post("/:id/transicao", analiseHandler.Transicionar)
	analises.Post("/:id/concluir", analiseHandler.Concluir)
	analises.Get("/:id/parecer-crm", analiseHandler.ParecerCRM)
	analises.Get("/:id/transicoes", analiseHandler.Transicoes)

	// Pipeline de cliente novo
	clienteNovoHandler := NewClienteNovoHandler(deps.ClienteNovoUC)
	pipeline := analises.Group("/:id/pipeline")
	pipeline.Post("/iniciar", clienteNovoHandler.Iniciar)
	pipeline.Post("/consultas", clienteNovoHandler.Consultas)
	pipeline.Post("/protestos", clienteNovoHandler.Protestos)
	pipeline.Post("/loja", clienteNovoHandler.Loja)
	pipeline.Post("/score-restricoes", clienteNovoHandler.ScoreRestricoes)

	// Configuração
	configHandler := NewConfiguracaoHandler(deps.ConfiguracaoUC)
	api.Get("/configuracao", configHandler.Get)
	api.Put("/configuracao", configHandler.Put)
}
