// Package parecer gera o parecer de integração com o CRM.
//
// REGRA CRÍTICA: só existe parecer para workflow CLIENTE_NOVO (bloqueio 80/36);
// para BASE_PRAZO o resultado é vazio.
//
// Formato (linha única, campos separados por " - "):
//
//	[DECISÃO] dd/MM/yyyy - TIPO - MM/yyyy|N/D - SIM|NÃO - RESTRIÇÕES - CRÉDITO - SCORE|N/D - K SÓCIOS - M PART
//
// Exemplo: [APROVADO] 15/02/2026 - LTDA - 05/2018 - SIM - 2 - R$45K - 720 - 2 SÓCIOS - 1 PART
package parecer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/analise-credito/internal/domain/entity"
	"github.com/seu-usuario/analise-credito/internal/domain/workflow"
)

// DadosCliente é o snapshot do cliente necessário para formatar o parecer.
type DadosCliente struct {
	RazaoSocial      string
	DataFundacao     *time.Time
	Simei            bool
	TotalRestricoes  int
	ScoreBoaVista    *int
	NumSocios        int
	NumParticipacoes int
}

// GerarParecerCRM formata o parecer da análise. Devolve "" quando o workflow
// do pedido é BASE_PRAZO, independente do estado da decisão.
func GerarParecerCRM(tipo workflow.Tipo, analise *entity.Analise, dados DadosCliente) string {
	if tipo != workflow.TipoClienteNovo {
		return ""
	}

	var sb strings.Builder

	decisao := analise.Decisao
	if decisao == "" {
		decisao = "EM ANÁLISE"
	}
	sb.WriteString("[" + decisao + "] ")

	data := time.Now()
	if analise.DataFim != nil {
		data = *analise.DataFim
	}
	sb.WriteString(data.Format("02/01/2006") + " - ")

	sb.WriteString(extrairTipo(dados.RazaoSocial) + " - ")

	if dados.DataFundacao != nil {
		sb.WriteString(dados.DataFundacao.Format("01/2006"))
	} else {
		sb.WriteString("N/D")
	}
	sb.WriteString(" - ")

	if dados.Simei {
		sb.WriteString("SIM - ")
	} else {
		sb.WriteString("NÃO - ")
	}

	fmt.Fprintf(&sb, "%d - ", dados.TotalRestricoes)

	sb.WriteString(formatarCredito(analise.LimiteSugerido) + " - ")

	if dados.ScoreBoaVista != nil {
		fmt.Fprintf(&sb, "%d - ", *dados.ScoreBoaVista)
	} else {
		sb.WriteString("N/D - ")
	}

	fmt.Fprintf(&sb, "%d SÓCIOS - ", dados.NumSocios)
	fmt.Fprintf(&sb, "%d PART", dados.NumParticipacoes)

	return sb.String()
}

// extrairTipo identifica o tipo societário pela razão social, em ordem de prioridade.
func extrairTipo(razaoSocial string) string {
	switch {
	case razaoSocial == "":
		return "N/D"
	case strings.Contains(razaoSocial, "LTDA"):
		return "LTDA"
	case strings.Contains(razaoSocial, "MEI"):
		return "MEI"
	case strings.Contains(razaoSocial, "EIRELI"):
		return "EIRELI"
	case strings.Contains(razaoSocial, "S/A"), strings.Contains(razaoSocial, " SA"):
		return "S/A"
	default:
		return "OUTROS"
	}
}

var (
	mil    = decimal.NewFromInt(1000)
	milhao = decimal.NewFromInt(1000000)
)

// formatarCredito compacta o valor: R$<int> abaixo de mil, R$<int>K abaixo de
// um milhão (arredondamento half-up) e R$<x.y>M daí para cima (uma casa decimal).
// Zero ou ausente vira "N/D".
func formatarCredito(valor decimal.Decimal) string {
	if valor.IsZero() {
		return "N/D"
	}
	switch {
	case valor.LessThan(mil):
		return fmt.Sprintf("R$%d", valor.IntPart())
	case valor.LessThan(milhao):
		return "R$" + valor.Div(mil).StringFixed(0) + "K"
	default:
		return "R$" + valor.Div(milhao).StringFixed(1) + "M"
	}
}
