package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoRestricao discrimina as quatro categorias de registro restritivo.
type TipoRestricao string

const (
	RestricaoPefin        TipoRestricao = "PEFIN"
	RestricaoProtesto     TipoRestricao = "PROTESTO"
	RestricaoAcaoJudicial TipoRestricao = "ACAO_JUDICIAL"
	RestricaoCheque       TipoRestricao = "CHEQUE"
)

// TiposRestricao lista as categorias na ordem canônica de exibição.
var TiposRestricao = []TipoRestricao{
	RestricaoPefin,
	RestricaoProtesto,
	RestricaoAcaoJudicial,
	RestricaoCheque,
}

// Restricao é um apontamento restritivo do cliente (Pefin, Protesto, Ação Judicial, Cheque).
type Restricao struct {
	ID        string
	ClienteID string

	Tipo  TipoRestricao
	Valor decimal.Decimal
	Data  time.Time

	Origem    string
	CreatedAt time.Time
}
