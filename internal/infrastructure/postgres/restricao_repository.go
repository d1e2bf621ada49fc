package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/analise-credito/internal/domain"
	"github.com/seu-usuario/analise-credito/internal/domain/entity"
	"github.com/seu-usuario/analise-credito/internal/domain/repository"
)

var _ repository.RestricaoRepository = (*RestricaoRepo)(nil)

// RestricaoRepo implementação do porto RestricaoRepository sobre PostgreSQL.
// As quatro categorias moram na mesma tabela, discriminadas pela coluna tipo.
type RestricaoRepo struct {
	q Querier
}

// NewRestricaoRepository constrói o adaptador de persistência de restrições.
func NewRestricaoRepository(q Querier) *RestricaoRepo {
	return &RestricaoRepo{q: q}
}

// Criar persiste um apontamento restritivo.
func (r *RestricaoRepo) Criar(ctx context.Context, restricao *entity.Restricao) error {
	query := `
		INSERT INTO restricoes (id, cliente_id, tipo, valor, data, origem, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		restricao.ID, restricao.ClienteID, restricao.Tipo, restricao.Valor,
		restricao.Data, restricao.Origem, restricao.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert restricao: %w", err)
	}
	return nil
}

// Excluir remove um apontamento restritivo.
func (r *RestricaoRepo) Excluir(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM restricoes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete restricao: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// ListarPorCliente lista todos os apontamentos do cliente, mais recente primeiro.
func (r *RestricaoRepo) ListarPorCliente(ctx context.Context, clienteID string) ([]*entity.Restricao, error) {
	query := `
		SELECT id, cliente_id, tipo, valor, data, origem, created_at
		FROM restricoes WHERE cliente_id = $1 ORDER BY data DESC`
	return r.listar(ctx, query, clienteID)
}

// ListarPorClienteETipo lista os apontamentos de uma categoria.
func (r *RestricaoRepo) ListarPorClienteETipo(ctx context.Context, clienteID string, tipo entity.TipoRestricao) ([]*entity.Restricao, error) {
	query := `
		SELECT id, cliente_id, tipo, valor, data, origem, created_at
		FROM restricoes WHERE cliente_id = $1 AND tipo = $2 ORDER BY data DESC`
	return r.listar(ctx, query, clienteID, tipo)
}

// ContarPorCliente conta apontamentos de todas as categorias.
func (r *RestricaoRepo) ContarPorCliente(ctx context.Context, clienteID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM restricoes WHERE cliente_id = $1`, clienteID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count restricoes: %w", err)
	}
	return n, nil
}

// SomarValoresPorTipos soma o valor dos apontamentos das categorias dadas.
func (r *RestricaoRepo) SomarValoresPorTipos(ctx context.Context, clienteID string, tipos ...entity.TipoRestricao) (decimal.Decimal, error) {
	if len(tipos) == 0 {
		return decimal.Zero, nil
	}
	query := `
		SELECT COALESCE(SUM(valor), 0)
		FROM restricoes WHERE cliente_id = $1 AND tipo = ANY($2)`
	nomes := make([]string, len(tipos))
	for i, t := range tipos {
		nomes[i] = string(t)
	}
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, clienteID, nomes).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum restricoes: %w", err)
	}
	return total, nil
}

func (r *RestricaoRepo) listar(ctx context.Context, query string, args ...any) ([]*entity.Restricao, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list restricoes: %w", err)
	}
	defer rows.Close()

	var restricoes []*entity.Restricao
	for rows.Next() {
		var re entity.Restricao
		if err := rows.Scan(&re.ID, &re.ClienteID, &re.Tipo, &re.Valor, &re.Data, &re.Origem, &re.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan restricao: %w", err)
		}
		restricoes = append(restricoes, &re)
	}
	return restricoes, rows.Err()
}
