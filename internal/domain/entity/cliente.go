package entity

import "time"

// TipoCliente classifica o cliente no funil de crédito.
type TipoCliente string

const (
	TipoClienteNovo       TipoCliente = "NOVO"
	TipoClienteBase       TipoCliente = "BASE"
	TipoClienteAntecipado TipoCliente = "ANTECIPADO"
)

// Cliente é a pessoa jurídica sob análise.
//
// REGRAS CRÍTICAS:
//   - Todo cliente DEVE ter GrupoEconomicoID (grupo singleton quando não há grupo real).
//   - Limites ficam no GrupoEconomico, NÃO aqui.
//   - A flag SIMEI participa das regras de limite e alertas.
type Cliente struct {
	ID               string
	GrupoEconomicoID string

	// Dados cadastrais
	CNPJ         string
	RazaoSocial  string
	NomeFantasia string
	Telefone     string
	Email        string
	Estado       string // UF (2 letras)

	// Classificação
	TipoCliente      TipoCliente
	Simei            bool
	Cluster          string
	SituacaoCredito  string
	SituacaoCobranca string
	Sintegra         string

	// Pipeline de cliente novo
	StatusReceita    string
	StatusSimples    string
	Cnae             string
	DataAberturaLoja *time.Time

	DataFundacao *time.Time

	// Score externo (Boa Vista, 0-1000)
	ScoreBoaVista     *int
	ScoreBoaVistaData *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
