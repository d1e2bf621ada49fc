package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/seu-usuario/analise-credito/internal/domain"
	"github.com/seu-usuario/analise-credito/internal/domain/entity"
	"github.com/seu-usuario/analise-credito/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementação do porto PedidoRepository sobre PostgreSQL (usável com pool ou tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository constrói o adaptador de persistência de pedidos.
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

const pedidoColunas = `id, cliente_id, numero, data, valor, marca, deposito, condicao_pagamento, colecao, bloqueio, workflow, created_at`

// Criar persiste um novo pedido.
func (r *PedidoRepo) Criar(ctx context.Context, pedido *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (` + pedidoColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		pedido.ID, pedido.ClienteID, pedido.Numero, pedido.Data, pedido.Valor,
		pedido.Marca, pedido.Deposito, pedido.CondicaoPagamento, pedido.Colecao,
		pedido.Bloqueio, pedido.Workflow, pedido.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// BuscarPorID obtém um pedido por ID.
func (r *PedidoRepo) BuscarPorID(ctx context.Context, id string) (*entity.Pedido, error) {
	query := `SELECT ` + pedidoColunas + ` FROM pedidos WHERE id = $1`
	p, err := scanPedido(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return p, nil
}

// ListarPorCliente lista os pedidos do cliente, mais recente primeiro.
func (r *PedidoRepo) ListarPorCliente(ctx context.Context, clienteID string) ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoColunas + ` FROM pedidos WHERE cliente_id = $1 ORDER BY data DESC`
	rows, err := r.q.Query(ctx, query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()

	var pedidos []*entity.Pedido
	for rows.Next() {
		p, err := scanPedido(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		pedidos = append(pedidos, p)
	}
	return pedidos, rows.Err()
}

// ContarPorCliente conta os pedidos do cliente.
func (r *PedidoRepo) ContarPorCliente(ctx context.Context, clienteID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM pedidos WHERE cliente_id = $1`, clienteID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pedidos: %w", err)
	}
	return n, nil
}

// SomarValoresPorGrupo soma o valor de TODOS os pedidos do grupo (alerta informativo).
func (r *PedidoRepo) SomarValoresPorGrupo(ctx context.Context, grupoID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(p.valor), 0)
		FROM pedidos p
		JOIN clientes c ON c.id = p.cliente_id
		WHERE c.grupo_economico_id = $1`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, grupoID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum pedidos grupo: %w", err)
	}
	return total, nil
}

// SomarValoresAbertosPorGrupo soma só os pedidos cuja análise não tem data_fim
// (alçada e recálculo do limite disponível).
func (r *PedidoRepo) SomarValoresAbertosPorGrupo(ctx context.Context, grupoID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(p.valor), 0)
		FROM pedidos p
		JOIN clientes c ON c.id = p.cliente_id
		JOIN analises a ON a.pedido_id = p.id
		WHERE c.grupo_economico_id = $1 AND a.data_fim IS NULL`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, grupoID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum pedidos abertos grupo: %w", err)
	}
	return total, nil
}

func scanPedido(row rowScanner) (*entity.Pedido, error) {
	var p entity.Pedido
	err := row.Scan(
		&p.ID, &p.ClienteID, &p.Numero, &p.Data, &p.Valor,
		&p.Marca, &p.Deposito, &p.CondicaoPagamento, &p.Colecao,
		&p.Bloqueio, &p.Workflow, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
