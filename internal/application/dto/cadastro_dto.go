package dto

import "github.com/shopspring/decimal"

// CriarClienteRequest cadastro de cliente. Sem GrupoEconomicoID o sistema cria
// o grupo singleton (codigo = CNPJ).
type CriarClienteRequest struct {
	CNPJ             string `json:"cnpj" validate:"required"`
	RazaoSocial      string `json:"razao_social" validate:"required"`
	NomeFantasia     string `json:"nome_fantasia"`
	Estado           string `json:"estado" validate:"omitempty,len=2"`
	Simei            bool   `json:"simei"`
	GrupoEconomicoID string `json:"grupo_economico_id"`
	DataFundacao     string `json:"data_fundacao" validate:"omitempty,datetime=2006-01-02"`
	ScoreBoaVista    *int   `json:"score_boa_vista" validate:"omitempty,min=0,max=1000"`
}

// CriarPedidoRequest abertura de pedido; o workflow é derivado do bloqueio.
type CriarPedidoRequest struct {
	ClienteID         string          `json:"cliente_id" validate:"required"`
	Numero            string          `json:"numero" validate:"required"`
	Valor             decimal.Decimal `json:"valor" validate:"required"`
	Bloqueio          string          `json:"bloqueio" validate:"required"`
	Marca             string          `json:"marca"`
	Deposito          string          `json:"deposito"`
	CondicaoPagamento string          `json:"condicao_pagamento"`
	Colecao           int             `json:"colecao"`
}

// CriarRestricaoRequest cadastro de apontamento restritivo.
type CriarRestricaoRequest struct {
	Tipo   string          `json:"tipo" validate:"required,oneof=PEFIN PROTESTO ACAO_JUDICIAL CHEQUE"`
	Valor  decimal.Decimal `json:"valor" validate:"required"`
	Data   string          `json:"data" validate:"required,datetime=2006-01-02"`
	Origem string          `json:"origem"`
}

// ConfiguracaoRequest substituição integral da configuração (replace-in-place).
type ConfiguracaoRequest struct {
	LimiteSimei                  decimal.Decimal `json:"limite_simei" validate:"required"`
	MaxSimeisPorGrupo            int             `json:"max_simeis_por_grupo" validate:"min=0"`
	ScoreBaixoThreshold          int             `json:"score_baixo_threshold" validate:"min=0"`
	ScoreAltoMultiplicador       decimal.Decimal `json:"score_alto_multiplicador" validate:"required"`
	ScoreMedioMultiplicador      decimal.Decimal `json:"score_medio_multiplicador" validate:"required"`
	ScoreNormalMultiplicador     decimal.Decimal `json:"score_normal_multiplicador" validate:"required"`
	ScoreBaixoMultiplicador      decimal.Decimal `json:"score_baixo_multiplicador" validate:"required"`
	ValorAprovacaoGestor         decimal.Decimal `json:"valor_aprovacao_gestor" validate:"required"`
	TotalGrupoAprovacaoGestor    decimal.Decimal `json:"total_grupo_aprovacao_gestor" validate:"required"`
	RestricoesAprovacaoGestor    int             `json:"restricoes_aprovacao_gestor" validate:"min=0"`
	CnaesPermitidos              string          `json:"cnaes_permitidos"`
	ProtestoThresholdAntecipado  decimal.Decimal `json:"protesto_threshold_antecipado"`
	RestricaoThresholdAntecipado decimal.Decimal `json:"restricao_threshold_antecipado"`
	MesesLojaThreshold           int             `json:"meses_loja_threshold" validate:"min=0"`
	MesesFundacaoThreshold       int             `json:"meses_fundacao_threshold" validate:"min=0"`
}
