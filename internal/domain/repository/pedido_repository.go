package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/analise-credito/internal/domain/entity"
)

// PedidoRepository define o porto de persistência de Pedido.
//
// As duas somas por grupo são deliberadamente distintas e não devem ser unificadas:
// SomarValoresPorGrupo soma TODOS os pedidos (alerta informativo TOTAL > LIMITE);
// SomarValoresAbertosPorGrupo soma só pedidos cuja análise não tem dataFim
// (regra de alçada e recálculo de limite disponível).
type PedidoRepository interface {
	Criar(ctx context.Context, pedido *entity.Pedido) error
	BuscarPorID(ctx context.Context, id string) (*entity.Pedido, error)
	ListarPorCliente(ctx context.Context, clienteID string) ([]*entity.Pedido, error)
	ContarPorCliente(ctx context.Context, clienteID string) (int, error)

	SomarValoresPorGrupo(ctx context.Context, grupoID string) (decimal.Decimal, error)
	SomarValoresAbertosPorGrupo(ctx context.Context, grupoID string) (decimal.Decimal, error)
}
