package repository

import (
	"context"

	"github.com/seu-usuario/analise-credito/internal/domain/entity"
	"github.com/seu-usuario/analise-credito/internal/domain/workflow"
)

// AnaliseRepository define o porto de persistência de Analise.
type AnaliseRepository interface {
	Criar(ctx context.Context, analise *entity.Analise) error
	BuscarPorID(ctx context.Context, id string) (*entity.Analise, error)
	BuscarPorPedido(ctx context.Context, pedidoID string) (*entity.Analise, error)
	ListarPorStatus(ctx context.Context, status workflow.Status) ([]*entity.Analise, error)
	Atualizar(ctx context.Context, analise *entity.Analise) error
}
