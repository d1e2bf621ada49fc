package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/analise-credito/internal/domain/workflow"
)

// Decisões terminais de negócio de uma análise.
const (
	DecisaoAprovado  = "APROVADO"
	DecisaoLimitado  = "LIMITADO"
	DecisaoReprovado = "REPROVADO"
)

// Analise é o registro mutável do processo de revisão, 1:1 com Pedido.
//
// Criada em PENDENTE na criação do pedido e mutada exclusivamente pelo motor de
// transições. Cliente e GrupoEconomico são referenciados por ID (não por ponteiro)
// para não reidratar o agregado inteiro a cada transição.
type Analise struct {
	ID       string
	PedidoID string

	ClienteID        string
	GrupoEconomicoID string

	Status       workflow.Status
	TipoAnalista string

	// Decisão final: APROVADO, LIMITADO ou REPROVADO.
	Decisao        string
	LimiteAprovado decimal.Decimal
	LimiteSugerido decimal.Decimal
	Justificativa  string
	Observacoes    string

	DataInicio          *time.Time
	DataFim             *time.Time
	AnalistaResponsavel string

	// Snapshot do score externo no momento da análise.
	ScoreNoMomento *int

	// MotivoDesvio registra a razão de saída do pipeline de cliente novo.
	MotivoDesvio string

	// ParecerCRM só existe para workflow CLIENTE_NOVO.
	ParecerCRM string

	// RequerAprovacaoGestor é monotônico: uma vez true, nunca volta a false.
	RequerAprovacaoGestor bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Finalizada indica análise encerrada com sucesso.
func (a *Analise) Finalizada() bool {
	return a.Status == workflow.StatusFinalizado && a.DataFim != nil
}

// Aberta indica análise ainda sem encerramento (conta no total em aberto do grupo).
func (a *Analise) Aberta() bool {
	return a.DataFim == nil
}

// DuracaoHoras devolve a duração da análise em horas (até agora, se não encerrada).
func (a *Analise) DuracaoHoras() int64 {
	if a.DataInicio == nil {
		return 0
	}
	fim := time.Now()
	if a.DataFim != nil {
		fim = *a.DataFim
	}
	return int64(fim.Sub(*a.DataInicio).Hours())
}
