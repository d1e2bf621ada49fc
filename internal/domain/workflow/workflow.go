// Package workflow define os estados da análise de crédito e as tabelas
// imutáveis de transição de cada tipo de workflow (BASE_PRAZO e CLIENTE_NOVO).
//
// A tabela é a única fonte de verdade das transições: o motor valida contra ela
// antes de qualquer mutação, e a suíte de testes a enumera exaustivamente.
package workflow

// Status é um estado do workflow de análise.
type Status string

const (
	// Estados compartilhados
	StatusPendente                     Status = "PENDENTE"
	StatusParecerAprovado              Status = "PARECER_APROVADO"
	StatusParecerReprovado             Status = "PARECER_REPROVADO"
	StatusAguardandoAprovacaoGestor    Status = "AGUARDANDO_APROVACAO_GESTOR"
	StatusReanaliseComercialSolicitada Status = "REANALISE_COMERCIAL_SOLICITADA"
	StatusReanalisadoAprovado          Status = "REANALISADO_APROVADO"
	StatusReanalisadoReprovado         Status = "REANALISADO_REPROVADO"
	StatusFinalizado                   Status = "FINALIZADO"

	// Específico de BASE_PRAZO
	StatusEmAnaliseFinanceiro Status = "EM_ANALISE_FINANCEIRO"

	// Pipeline de CLIENTE_NOVO
	StatusFazerConsultas         Status = "FAZER_CONSULTAS"
	StatusSolicitarCancelamento  Status = "SOLICITAR_CANCELAMENTO"
	StatusConsultaProtestos      Status = "CONSULTA_PROTESTOS"
	StatusVerificacaoLojaFisica  Status = "VERIFICACAO_LOJA_FISICA"
	StatusConsultaScoreRestricoes Status = "CONSULTA_SCORE_RESTRICOES"
	StatusEncaminhadoAntecipado  Status = "ENCAMINHADO_ANTECIPADO"
	StatusEmAnaliseClienteNovo   Status = "EM_ANALISE_CLIENTE_NOVO"
)

// Tipo é o tipo de workflow, derivado do bloqueio do pedido na criação.
type Tipo string

const (
	TipoBasePrazo   Tipo = "BASE_PRAZO"
	TipoClienteNovo Tipo = "CLIENTE_NOVO"
)

// TipoPorBloqueio deriva o workflow do código de bloqueio do pedido.
// "80" e "36" abrem o fluxo de cliente novo; o restante segue base/prazo.
func TipoPorBloqueio(bloqueio string) Tipo {
	if bloqueio == "80" || bloqueio == "36" {
		return TipoClienteNovo
	}
	return TipoBasePrazo
}

// transicoes é a tabela (workflow → status atual → destinos permitidos),
// construída uma vez e nunca mutada.
var transicoes = map[Tipo]map[Status][]Status{
	TipoBasePrazo: {
		StatusPendente:            {StatusEmAnaliseFinanceiro},
		StatusEmAnaliseFinanceiro: {StatusParecerAprovado, StatusParecerReprovado},
		StatusParecerAprovado:     {StatusAguardandoAprovacaoGestor, StatusReanaliseComercialSolicitada, StatusFinalizado},
		StatusParecerReprovado:    {StatusAguardandoAprovacaoGestor, StatusReanaliseComercialSolicitada, StatusFinalizado},
		StatusAguardandoAprovacaoGestor:    {StatusReanaliseComercialSolicitada, StatusFinalizado},
		StatusReanaliseComercialSolicitada: {StatusReanalisadoAprovado, StatusReanalisadoReprovado},
		StatusReanalisadoAprovado:          {StatusAguardandoAprovacaoGestor, StatusFinalizado},
		StatusReanalisadoReprovado:         {StatusAguardandoAprovacaoGestor, StatusFinalizado},
		StatusFinalizado:                   {}, // terminal
	},
	TipoClienteNovo: {
		StatusPendente:       {StatusFazerConsultas, StatusConsultaProtestos, StatusSolicitarCancelamento, StatusEncaminhadoAntecipado},
		StatusFazerConsultas: {StatusConsultaProtestos, StatusSolicitarCancelamento, StatusEncaminhadoAntecipado},
		StatusConsultaProtestos:      {StatusVerificacaoLojaFisica, StatusEncaminhadoAntecipado},
		StatusVerificacaoLojaFisica:  {StatusConsultaScoreRestricoes, StatusEncaminhadoAntecipado},
		StatusConsultaScoreRestricoes: {StatusEmAnaliseClienteNovo, StatusEncaminhadoAntecipado},
		StatusEmAnaliseClienteNovo:   {StatusParecerAprovado, StatusParecerReprovado},
		StatusParecerAprovado:        {StatusAguardandoAprovacaoGestor, StatusReanaliseComercialSolicitada, StatusFinalizado},
		StatusParecerReprovado:       {StatusAguardandoAprovacaoGestor, StatusReanaliseComercialSolicitada, StatusFinalizado},
		StatusAguardandoAprovacaoGestor:    {StatusReanaliseComercialSolicitada, StatusFinalizado},
		StatusReanaliseComercialSolicitada: {StatusReanalisadoAprovado, StatusReanalisadoReprovado},
		StatusReanalisadoAprovado:          {StatusAguardandoAprovacaoGestor, StatusFinalizado},
		StatusReanalisadoReprovado:         {StatusAguardandoAprovacaoGestor, StatusFinalizado},
		// Terminais
		StatusSolicitarCancelamento: {},
		StatusEncaminhadoAntecipado: {},
		StatusFinalizado:            {},
	},
}

// TransicaoValida verifica se a mudança de status é permitida no workflow dado.
// Transição para o mesmo estado nunca é válida.
func TransicaoValida(atual, novo Status, tipo Tipo) bool {
	if atual == "" || novo == "" || tipo == "" {
		return false
	}
	if atual == novo {
		return false
	}
	destinos, ok := transicoes[tipo][atual]
	if !ok {
		return false
	}
	for _, s := range destinos {
		if s == novo {
			return true
		}
	}
	return false
}

// StatusPermitidos devolve os destinos possíveis a partir do status atual (cópia).
func StatusPermitidos(atual Status, tipo Tipo) []Status {
	destinos, ok := transicoes[tipo][atual]
	if !ok {
		return nil
	}
	out := make([]Status, len(destinos))
	copy(out, destinos)
	return out
}

// Terminal indica estado sem transições de saída no workflow dado.
func Terminal(s Status, tipo Tipo) bool {
	destinos, ok := transicoes[tipo][s]
	return ok && len(destinos) == 0
}

// StatusConhecido verifica se a string corresponde a um status existente.
func StatusConhecido(s Status) bool {
	switch s {
	case StatusPendente, StatusParecerAprovado, StatusParecerReprovado,
		StatusAguardandoAprovacaoGestor, StatusReanaliseComercialSolicitada,
		StatusReanalisadoAprovado, StatusReanalisadoReprovado, StatusFinalizado,
		StatusEmAnaliseFinanceiro, StatusFazerConsultas, StatusSolicitarCancelamento,
		StatusConsultaProtestos, StatusVerificacaoLojaFisica, StatusConsultaScoreRestricoes,
		StatusEncaminhadoAntecipado, StatusEmAnaliseClienteNovo:
		return true
	}
	return false
}
