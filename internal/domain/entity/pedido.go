package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/analise-credito/internal/domain/workflow"
)

// Pedido é uma solicitação de crédito para análise.
//
// REGRA CRÍTICA: o campo Bloqueio determina o workflow uma única vez, na criação:
// "80" ou "36" → CLIENTE_NOVO; qualquer outro valor → BASE_PRAZO.
// Os campos de negócio são imutáveis depois de criados.
type Pedido struct {
	ID        string
	ClienteID string

	Numero           string
	Data             time.Time
	Valor            decimal.Decimal
	Marca            string
	Deposito         string
	CondicaoPagamento string

	// Colecao no formato AAAAMM (ex: 202601)
	Colecao int

	Bloqueio string
	Workflow workflow.Tipo

	CreatedAt time.Time
}
