package cadastro

import (
	"context"

	"github.com/seu-usuario/analise-credito/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando repositórios
// atados a essa tx. Garante que pedido e análise nascem juntos ou não nascem.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		pedidoRepo repository.PedidoRepository,
		analiseRepo repository.AnaliseRepository,
	) error) error
}
