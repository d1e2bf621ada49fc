package parecer_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/seu-usuario/analise-credito/internal/domain/entity"
	"github.com/seu-usuario/analise-credito/internal/domain/parecer"
	"github.com/seu-usuario/analise-credito/internal/domain/workflow"
)

func dataFixa(ano int, mes time.Month, dia int) *time.Time {
	d := time.Date(ano, mes, dia, 12, 0, 0, 0, time.UTC)
	return &d
}

func intPtr(n int) *int { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Parecer completo
// ──────────────────────────────────────────────────────────────────────────────

func TestGerarParecerCRM_Completo(t *testing.T) {
	analise := &entity.Analise{
		Decisao:        entity.DecisaoAprovado,
		DataFim:        dataFixa(2026, time.February, 15),
		LimiteSugerido: decimal.NewFromInt(45000),
	}
	dados := parecer.DadosCliente{
		RazaoSocial:      "CONFECÇÕES EXEMPLO LTDA",
		DataFundacao:     dataFixa(2018, time.May, 10),
		Simei:            true,
		TotalRestricoes:  2,
		ScoreBoaVista:    intPtr(720),
		NumSocios:        2,
		NumParticipacoes: 1,
	}

	out := parecer.GerarParecerCRM(workflow.TipoClienteNovo, analise, dados)
	assert.Equal(t, "[APROVADO] 15/02/2026 - LTDA - 05/2018 - SIM - 2 - R$45K - 720 - 2 SÓCIOS - 1 PART", out)
}

func TestGerarParecerCRM_CamposAusentes(t *testing.T) {
	analise := &entity.Analise{
		Decisao:        entity.DecisaoReprovado,
		DataFim:        dataFixa(2026, time.January, 3),
		LimiteSugerido: decimal.Zero,
	}
	dados := parecer.DadosCliente{
		RazaoSocial: "", // tipo societário desconhecido
		Simei:       false,
	}

	out := parecer.GerarParecerCRM(workflow.TipoClienteNovo, analise, dados)
	assert.Equal(t, "[REPROVADO] 03/01/2026 - N/D - N/D - NÃO - 0 - N/D - N/D - 0 SÓCIOS - 0 PART", out)
}

// BASE_PRAZO nunca tem parecer, independente da decisão.
func TestGerarParecerCRM_BasePrazoVazio(t *testing.T) {
	analise := &entity.Analise{
		Decisao:        entity.DecisaoAprovado,
		DataFim:        dataFixa(2026, time.February, 15),
		LimiteSugerido: decimal.NewFromInt(45000),
	}
	out := parecer.GerarParecerCRM(workflow.TipoBasePrazo, analise, parecer.DadosCliente{RazaoSocial: "X LTDA"})
	assert.Empty(t, out)
}

func TestGerarParecerCRM_SemDecisao(t *testing.T) {
	analise := &entity.Analise{
		DataFim:        dataFixa(2026, time.March, 1),
		LimiteSugerido: decimal.NewFromInt(500),
	}
	out := parecer.GerarParecerCRM(workflow.TipoClienteNovo, analise, parecer.DadosCliente{})
	assert.Contains(t, out, "[EM ANÁLISE] ")
	assert.Contains(t, out, "R$500")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tipo societário (ordem de prioridade: LTDA > MEI > EIRELI > S/A)
// ──────────────────────────────────────────────────────────────────────────────

func TestGerarParecerCRM_TipoSocietario(t *testing.T) {
	casos := map[string]string{
		"LOJA TESTE LTDA":       "LTDA",
		"JOSE SILVA MEI":        "MEI",
		"MODAS BELA EIRELI":     "EIRELI",
		"GRUPO GRANDE S/A":      "S/A",
		"GRUPO GRANDE SA LTDA":  "LTDA", // LTDA tem prioridade
		"TEXTIL NORDESTE SA":    "S/A",
		"ARMAZEM DO JOAO":       "OUTROS",
	}
	analise := &entity.Analise{Decisao: entity.DecisaoAprovado, DataFim: dataFixa(2026, time.April, 1)}
	for razao, esperado := range casos {
		out := parecer.GerarParecerCRM(workflow.TipoClienteNovo, analise, parecer.DadosCliente{RazaoSocial: razao})
		assert.Contains(t, out, " - "+esperado+" - ", "razão social %q deve classificar como %s", razao, esperado)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Compactação do crédito
// ──────────────────────────────────────────────────────────────────────────────

func TestGerarParecerCRM_FormatoCredito(t *testing.T) {
	casos := map[string]string{
		"0":        "N/D",
		"999.90":   "R$999", // abaixo de mil trunca os centavos
		"1000":     "R$1K",
		"45000":    "R$45K",
		"45499":    "R$45K",  // half-up para baixo
		"45500":    "R$46K",  // half-up para cima
		"999499":   "R$999K",
		"1500000":  "R$1.5M",
		"2350000":  "R$2.4M", // uma casa decimal, half-up
		"10000000": "R$10.0M",
	}
	for valor, esperado := range casos {
		analise := &entity.Analise{
			Decisao:        entity.DecisaoAprovado,
			DataFim:        dataFixa(2026, time.June, 1),
			LimiteSugerido: decimal.RequireFromString(valor),
		}
		out := parecer.GerarParecerCRM(workflow.TipoClienteNovo, analise, parecer.DadosCliente{})
		assert.Contains(t, out, " - "+esperado+" - ", "valor %s deve compactar para %s", valor, esperado)
	}
}
