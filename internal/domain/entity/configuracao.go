package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Configuracao agrupa os parâmetros globais das regras de crédito.
//
// PADRÃO SINGLETON: existe exatamente uma linha (ID = 1). Atualizações substituem
// o registro inteiro; nunca se altera campo a campo em pontos distintos do código.
type Configuracao struct {
	ID int64

	// Limites SIMEI
	LimiteSimei       decimal.Decimal // teto de crédito para empresas SIMEI
	MaxSimeisPorGrupo int             // máximo de clientes SIMEI com pedido por grupo

	// Thresholds de score
	ScoreBaixoThreshold int // score externo abaixo disso é considerado baixo

	// Multiplicadores por faixa de score interno (limites inferiores inclusivos: 800/600/400)
	ScoreAltoMultiplicador   decimal.Decimal
	ScoreMedioMultiplicador  decimal.Decimal
	ScoreNormalMultiplicador decimal.Decimal
	ScoreBaixoMultiplicador  decimal.Decimal

	// Alçada (aprovação de gestor)
	ValorAprovacaoGestor      decimal.Decimal
	TotalGrupoAprovacaoGestor decimal.Decimal
	RestricoesAprovacaoGestor int

	// Pipeline de cliente novo
	CnaesPermitidos              string // lista separada por vírgula; vazia = todos permitidos
	ProtestoThresholdAntecipado  decimal.Decimal
	RestricaoThresholdAntecipado decimal.Decimal
	MesesLojaThreshold           int
	MesesFundacaoThreshold       int
}

// ConfiguracaoPadrao devolve a configuração com os valores default do sistema.
func ConfiguracaoPadrao() *Configuracao {
	return &Configuracao{
		ID:                           1,
		LimiteSimei:                  decimal.NewFromInt(35000),
		MaxSimeisPorGrupo:            2,
		ScoreBaixoThreshold:          300,
		ScoreAltoMultiplicador:       decimal.RequireFromString("1.5"),
		ScoreMedioMultiplicador:      decimal.RequireFromString("1.2"),
		ScoreNormalMultiplicador:     decimal.RequireFromString("1.0"),
		ScoreBaixoMultiplicador:      decimal.RequireFromString("0.7"),
		ValorAprovacaoGestor:         decimal.NewFromInt(100000),
		TotalGrupoAprovacaoGestor:    decimal.NewFromInt(200000),
		RestricoesAprovacaoGestor:    5,
		ProtestoThresholdAntecipado:  decimal.NewFromInt(1000),
		RestricaoThresholdAntecipado: decimal.NewFromInt(1000),
		MesesLojaThreshold:           10,
		MesesFundacaoThreshold:       12,
	}
}

// MultiplicadorPorScore devolve o fator da faixa do score interno.
// Score ausente cai na faixa normal por política.
func (c *Configuracao) MultiplicadorPorScore(score *int) decimal.Decimal {
	if score == nil {
		return c.ScoreNormalMultiplicador
	}
	switch {
	case *score >= 800:
		return c.ScoreAltoMultiplicador
	case *score >= 600:
		return c.ScoreMedioMultiplicador
	case *score >= 400:
		return c.ScoreNormalMultiplicador
	default:
		return c.ScoreBaixoMultiplicador
	}
}

// IsScoreBaixo indica score externo presente e estritamente abaixo do threshold.
func (c *Configuracao) IsScoreBaixo(score *int) bool {
	return score != nil && *score < c.ScoreBaixoThreshold
}

// RequerAprovacaoPorValor verifica a condição de alçada sobre o valor do pedido.
func (c *Configuracao) RequerAprovacaoPorValor(valor decimal.Decimal) bool {
	return valor.GreaterThan(c.ValorAprovacaoGestor)
}

// RequerAprovacaoPorTotalGrupo verifica a condição de alçada sobre o total em aberto do grupo.
func (c *Configuracao) RequerAprovacaoPorTotalGrupo(totalGrupo decimal.Decimal) bool {
	return totalGrupo.GreaterThan(c.TotalGrupoAprovacaoGestor)
}

// RequerAprovacaoPorRestricoes verifica a condição de alçada sobre o número de restrições (>=).
func (c *Configuracao) RequerAprovacaoPorRestricoes(numRestricoes int) bool {
	return numRestricoes >= c.RestricoesAprovacaoGestor
}

// CnaePermitido verifica se o CNAE está na lista configurada.
// Lista vazia significa que todos os CNAEs são permitidos.
func (c *Configuracao) CnaePermitido(cnae string) bool {
	if strings.TrimSpace(c.CnaesPermitidos) == "" {
		return true
	}
	if strings.TrimSpace(cnae) == "" {
		return false
	}
	for _, permitido := range strings.Split(c.CnaesPermitidos, ",") {
		if strings.TrimSpace(permitido) == strings.TrimSpace(cnae) {
			return true
		}
	}
	return false
}
