package dto

import (
	"github.com/shopspring/decimal"
)

// TransicaoRequest pedido de mudança de status da análise.
type TransicaoRequest struct {
	NovoStatus string `json:"novo_status" validate:"required"`
	Analista   string `json:"analista" validate:"required"`
}

// ConcluirRequest formulário de conclusão da análise.
// LimiteAprovado é obrigatório e positivo quando Decisao = LIMITADO (validado no caso de uso).
type ConcluirRequest struct {
	Decisao        string          `json:"decisao" validate:"required,oneof=APROVADO LIMITADO REPROVADO"`
	LimiteAprovado decimal.Decimal `json:"limite_aprovado"`
	Justificativa  string          `json:"justificativa" validate:"required"`
	Observacoes    string          `json:"observacoes"`
	Analista       string          `json:"analista" validate:"required"`
}

// AnaliseResponse visão da análise para a API.
type AnaliseResponse struct {
	ID                    string          `json:"id"`
	PedidoID              string          `json:"pedido_id"`
	ClienteID             string          `json:"cliente_id"`
	GrupoEconomicoID      string          `json:"grupo_economico_id"`
	Status                string          `json:"status"`
	Decisao               string          `json:"decisao,omitempty"`
	LimiteSugerido        decimal.Decimal `json:"limite_sugerido"`
	LimiteAprovado        decimal.Decimal `json:"limite_aprovado"`
	Justificativa         string          `json:"justificativa,omitempty"`
	MotivoDesvio          string          `json:"motivo_desvio,omitempty"`
	ParecerCRM            string          `json:"parecer_crm,omitempty"`
	RequerAprovacaoGestor bool            `json:"requer_aprovacao_gestor"`
	AnalistaResponsavel   string          `json:"analista_responsavel,omitempty"`
	DataInicio            string          `json:"data_inicio,omitempty"`
	DataFim               string          `json:"data_fim,omitempty"`
}

// KanbanCard card do kanban: análise + alertas calculados do pedido.
type KanbanCard struct {
	Analise AnaliseResponse `json:"analise"`
	Alertas []string        `json:"alertas"`
}

// ConsultasRequest dados cadastrais preenchidos pelo analista (gate de consultas).
type ConsultasRequest struct {
	StatusReceita string `json:"status_receita" validate:"required"`
	StatusSimples string `json:"status_simples"`
	Sintegra      string `json:"sintegra" validate:"required"`
	Cnae          string `json:"cnae"`
	Analista      string `json:"analista" validate:"required"`
}

// ConfirmarLojaRequest data de abertura da loja física informada pelo analista.
type ConfirmarLojaRequest struct {
	DataAberturaLoja string `json:"data_abertura_loja" validate:"required,datetime=2006-01-02"`
	Analista         string `json:"analista" validate:"required"`
}

// EtapaRequest confirmação simples de uma etapa do pipeline.
type EtapaRequest struct {
	Analista string `json:"analista" validate:"required"`
}

// EtapaResponse resultado de uma etapa do pipeline de cliente novo.
type EtapaResponse struct {
	Status       string `json:"status"`
	MotivoDesvio string `json:"motivo_desvio,omitempty"`
}
