package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DadosBI é um snapshot mensal importado de sistemas externos.
//
// IMPORTANTE: vinculado ao GRUPO ECONÔMICO, não ao cliente individual.
// Colecao identifica o período no formato AAAAMM.
type DadosBI struct {
	ID               string
	GrupoEconomicoID string

	Colecao int
	Credito decimal.Decimal

	// Score interno da coleção (pode faltar em importações parciais).
	Score *int

	CreatedAt time.Time
}
