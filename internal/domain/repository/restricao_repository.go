package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/analise-credito/internal/domain/entity"
)

// RestricaoRepository define o porto de persistência dos apontamentos restritivos.
// As quatro categorias (Pefin, Protesto, Ação Judicial, Cheque) compartilham a mesma
// forma; consultas por categoria recebem o tipo como filtro.
type RestricaoRepository interface {
	Criar(ctx context.Context, restricao *entity.Restricao) error
	Excluir(ctx context.Context, id string) error
	ListarPorCliente(ctx context.Context, clienteID string) ([]*entity.Restricao, error)
	ListarPorClienteETipo(ctx context.Context, clienteID string, tipo entity.TipoRestricao) ([]*entity.Restricao, error)

	// ContarPorCliente conta apontamentos de todas as categorias.
	ContarPorCliente(ctx context.Context, clienteID string) (int, error)

	// SomarValoresPorTipos soma o VALOR dos apontamentos das categorias dadas
	// (o pipeline de cliente novo usa apenas Pefin + Protesto).
	SomarValoresPorTipos(ctx context.Context, clienteID string, tipos ...entity.TipoRestricao) (decimal.Decimal, error)
}
