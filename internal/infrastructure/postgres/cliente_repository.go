package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/seu-usuario/analise-credito/internal/domain"
	"github.com/seu-usuario/analise-credito/internal/domain/entity"
	"github.com/seu-usuario/analise-credito/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementação do porto ClienteRepository sobre PostgreSQL (usável com pool ou tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador de persistência de clientes.
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteColunas = `id, grupo_economico_id, cnpj, razao_social, nome_fantasia, telefone, email, estado,
	tipo_cliente, simei, cluster, situacao_credito, situacao_cobranca, sintegra,
	status_receita, status_simples, cnae, data_abertura_loja, data_fundacao,
	score_boa_vista, score_boa_vista_data, created_at, updated_at`

// Criar persiste um novo cliente.
func (r *ClienteRepo) Criar(ctx context.Context, cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (` + clienteColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	_, err := r.q.Exec(ctx, query,
		cliente.ID, cliente.GrupoEconomicoID, cliente.CNPJ, cliente.RazaoSocial, cliente.NomeFantasia,
		cliente.Telefone, cliente.Email, cliente.Estado,
		cliente.TipoCliente, cliente.Simei, cliente.Cluster, cliente.SituacaoCredito, cliente.SituacaoCobranca, cliente.Sintegra,
		cliente.StatusReceita, cliente.StatusSimples, cliente.Cnae, cliente.DataAberturaLoja, cliente.DataFundacao,
		cliente.ScoreBoaVista, cliente.ScoreBoaVistaData, cliente.CreatedAt, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// BuscarPorID obtém um cliente por ID.
func (r *ClienteRepo) BuscarPorID(ctx context.Context, id string) (*entity.Cliente, error) {
	return r.buscar(ctx, `WHERE id = $1`, id)
}

// BuscarPorCNPJ obtém um cliente pelo CNPJ.
func (r *ClienteRepo) BuscarPorCNPJ(ctx context.Context, cnpj string) (*entity.Cliente, error) {
	return r.buscar(ctx, `WHERE cnpj = $1`, cnpj)
}

// ListarPorGrupo lista os clientes de um grupo econômico.
func (r *ClienteRepo) ListarPorGrupo(ctx context.Context, grupoID string) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColunas + ` FROM clientes WHERE grupo_economico_id = $1 ORDER BY razao_social`
	rows, err := r.q.Query(ctx, query, grupoID)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var clientes []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, err
		}
		clientes = append(clientes, c)
	}
	return clientes, rows.Err()
}

// Atualizar persiste os campos mutáveis do cliente.
func (r *ClienteRepo) Atualizar(ctx context.Context, cliente *entity.Cliente) error {
	query := `
		UPDATE clientes SET
			grupo_economico_id = $2, razao_social = $3, nome_fantasia = $4, telefone = $5, email = $6, estado = $7,
			tipo_cliente = $8, simei = $9, cluster = $10, situacao_credito = $11, situacao_cobranca = $12, sintegra = $13,
			status_receita = $14, status_simples = $15, cnae = $16, data_abertura_loja = $17, data_fundacao = $18,
			score_boa_vista = $19, score_boa_vista_data = $20, updated_at = $21
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		cliente.ID, cliente.GrupoEconomicoID, cliente.RazaoSocial, cliente.NomeFantasia,
		cliente.Telefone, cliente.Email, cliente.Estado,
		cliente.TipoCliente, cliente.Simei, cliente.Cluster, cliente.SituacaoCredito, cliente.SituacaoCobranca, cliente.Sintegra,
		cliente.StatusReceita, cliente.StatusSimples, cliente.Cnae, cliente.DataAberturaLoja, cliente.DataFundacao,
		cliente.ScoreBoaVista, cliente.ScoreBoaVistaData, cliente.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// ContarSimeisComPedido conta clientes SIMEI do grupo com ao menos um pedido.
func (r *ClienteRepo) ContarSimeisComPedido(ctx context.Context, grupoID string) (int, error) {
	query := `
		SELECT COUNT(DISTINCT c.id)
		FROM clientes c
		JOIN pedidos p ON p.cliente_id = c.id
		WHERE c.grupo_economico_id = $1 AND c.simei = true`
	var n int
	if err := r.q.QueryRow(ctx, query, grupoID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count simeis: %w", err)
	}
	return n, nil
}

// ContarSocios conta os sócios cadastrados do cliente.
func (r *ClienteRepo) ContarSocios(ctx context.Context, clienteID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM socios WHERE cliente_id = $1`, clienteID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count socios: %w", err)
	}
	return n, nil
}

// ContarParticipacoes conta as participações societárias do cliente.
func (r *ClienteRepo) ContarParticipacoes(ctx context.Context, clienteID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM participacoes WHERE cliente_id = $1`, clienteID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count participacoes: %w", err)
	}
	return n, nil
}

func (r *ClienteRepo) buscar(ctx context.Context, where string, arg any) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColunas + ` FROM clientes ` + where
	c, err := scanCliente(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCliente(row rowScanner) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(
		&c.ID, &c.GrupoEconomicoID, &c.CNPJ, &c.RazaoSocial, &c.NomeFantasia,
		&c.Telefone, &c.Email, &c.Estado,
		&c.TipoCliente, &c.Simei, &c.Cluster, &c.SituacaoCredito, &c.SituacaoCobranca, &c.Sintegra,
		&c.StatusReceita, &c.StatusSimples, &c.Cnae, &c.DataAberturaLoja, &c.DataFundacao,
		&c.ScoreBoaVista, &c.ScoreBoaVistaData, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
