// Package clientenovo implementa o pipeline de gates do workflow CLIENTE_NOVO.
//
// Cada gate passa (continua) ou falha (desvia para um estado terminal ou alternativo,
// registrando o motivo). O pipeline é retomável em qualquer fronteira de gate: o
// controlador chama as etapas conforme o analista supre os dados, e o estado atual
// da análise determina de onde continuar.
package clientenovo

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/analise-credito/internal/domain/entity"
)

// TemDadosConsulta verifica os mínimos obrigatórios das consultas cadastrais
// (statusReceita e sintegra preenchidos).
func TemDadosConsulta(cliente *entity.Cliente) bool {
	return strings.TrimSpace(cliente.StatusReceita) != "" &&
		strings.TrimSpace(cliente.Sintegra) != ""
}

// ValidarCadastral valida receita, sintegra e CNAE. Devolve o motivo da primeira
// condição reprovada, ou "" quando tudo está em ordem.
//
// Regras:
//   - Receita Federal: situação diferente de "ATIVA" → cancelamento
//   - Sintegra: "INABILITADO" ou "SUSPENSO" → cancelamento
//   - CNAE fora da lista de permitidos → cancelamento (lista vazia = todos permitidos)
func ValidarCadastral(cliente *entity.Cliente, config *entity.Configuracao) string {
	if cliente.StatusReceita != "" && !strings.EqualFold(cliente.StatusReceita, "ATIVA") {
		return "Receita Federal: situação " + cliente.StatusReceita
	}
	if strings.EqualFold(cliente.Sintegra, "INABILITADO") || strings.EqualFold(cliente.Sintegra, "SUSPENSO") {
		return "Sintegra: " + cliente.Sintegra
	}
	if !config.CnaePermitido(cliente.Cnae) {
		return "CNAE não permitido: " + cliente.Cnae
	}
	return ""
}

// FundacaoRecente indica empresa fundada há menos meses que o mínimo configurado.
// Data de fundação ausente passa no gate (não é recente por definição).
func FundacaoRecente(cliente *entity.Cliente, config *entity.Configuracao, agora time.Time) bool {
	if cliente.DataFundacao == nil {
		return false
	}
	return MesesEntre(*cliente.DataFundacao, agora) < config.MesesFundacaoThreshold
}

// ProtestoAcima indica algum protesto com valor estritamente acima do threshold.
func ProtestoAcima(protestos []*entity.Restricao, config *entity.Configuracao) bool {
	for _, p := range protestos {
		if p.Valor.GreaterThan(config.ProtestoThresholdAntecipado) {
			return true
		}
	}
	return false
}

// LojaRecente indica loja física aberta há menos meses que o mínimo configurado.
// Data ausente passa no gate.
func LojaRecente(cliente *entity.Cliente, config *entity.Configuracao, agora time.Time) bool {
	if cliente.DataAberturaLoja == nil {
		return false
	}
	return MesesEntre(*cliente.DataAberturaLoja, agora) < config.MesesLojaThreshold
}

// RestricaoAcima indica soma de valores de Pefin + Protesto estritamente acima do
// threshold (somente essas duas categorias contam neste gate).
func RestricaoAcima(totalPefinProtesto decimal.Decimal, config *entity.Configuracao) bool {
	return totalPefinProtesto.GreaterThan(config.RestricaoThresholdAntecipado)
}

// MesesEntre conta meses completos entre duas datas, no mesmo critério de
// ChronoUnit.MONTHS: o mês só conta quando o dia de destino alcança o dia de
// origem (ou o fim do mês, quando o mês de destino é mais curto).
func MesesEntre(inicio, fim time.Time) int {
	total := (fim.Year()-inicio.Year())*12 + int(fim.Month()) - int(inicio.Month())
	if fim.Day() < inicio.Day() && fim.Day() != ultimoDiaDoMes(fim) {
		total--
	}
	return total
}

func ultimoDiaDoMes(t time.Time) int {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).
		AddDate(0, 1, -1).Day()
}

// motivos de desvio padronizados do pipeline
const (
	motivoFundacaoRecente = "Empresa com fundação inferior ao período mínimo"
	motivoProtestoAcima   = "Protesto com valor acima do limite permitido"
	motivoLojaRecente     = "Loja física com abertura inferior ao período mínimo"
	motivoRestricaoAcima  = "Restrições com valor total acima do limite permitido"
)
