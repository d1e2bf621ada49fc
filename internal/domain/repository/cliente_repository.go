package repository

import (
	"context"

	"github.com/seu-usuario/analise-credito/internal/domain/entity"
)

// ClienteRepository define o porto de persistência de Cliente.
type ClienteRepository interface {
	Criar(ctx context.Context, cliente *entity.Cliente) error
	BuscarPorID(ctx context.Context, id string) (*entity.Cliente, error)
	BuscarPorCNPJ(ctx context.Context, cnpj string) (*entity.Cliente, error)
	ListarPorGrupo(ctx context.Context, grupoID string) ([]*entity.Cliente, error)
	Atualizar(ctx context.Context, cliente *entity.Cliente) error

	// ContarSimeisComPedido conta clientes SIMEI do grupo que possuem ao menos um pedido.
	ContarSimeisComPedido(ctx context.Context, grupoID string) (int, error)

	ContarSocios(ctx context.Context, clienteID string) (int, error)
	ContarParticipacoes(ctx context.Context, clienteID string) (int, error)
}
