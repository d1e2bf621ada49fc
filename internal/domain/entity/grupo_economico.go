package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GrupoEconomico agrupa clientes relacionados.
//
// REGRA CRÍTICA: todo cliente pertence a exatamente um grupo. Cliente sem grupo real
// recebe um grupo singleton com codigo = CNPJ.
// Limites ficam SEMPRE no grupo, nunca no cliente individual.
type GrupoEconomico struct {
	ID     string
	Codigo string // CNPJ (singleton) ou código customizado
	Nome   string

	// LimiteAprovado é o teto de crédito vigente do grupo.
	LimiteAprovado decimal.Decimal

	// LimiteDisponivel é derivado: max(0, LimiteAprovado - total de pedidos em aberto).
	// Recalculado ao finalizar uma análise.
	LimiteDisponivel decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}
