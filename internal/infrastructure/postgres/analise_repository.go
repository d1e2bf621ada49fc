package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/seu-usuario/analise-credito/internal/domain"
	"github.com/seu-usuario/analise-credito/internal/domain/entity"
	"github.com/seu-usuario/analise-credito/internal/domain/repository"
	"github.com/seu-usuario/analise-credito/internal/domain/workflow"
)

var _ repository.AnaliseRepository = (*AnaliseRepo)(nil)

// AnaliseRepo implementação do porto AnaliseRepository sobre PostgreSQL (usável com pool ou tx).
type AnaliseRepo struct {
	q Querier
}

// NewAnaliseRepository constrói o adaptador de persistência de análises.
func NewAnaliseRepository(q Querier) *AnaliseRepo {
	return &AnaliseRepo{q: q}
}

const analiseColunas = `id, pedido_id, cliente_id, grupo_economico_id, status, tipo_analista,
	decisao, limite_aprovado, limite_sugerido, justificativa, observacoes,
	data_inicio, data_fim, analista_responsavel, score_no_momento,
	motivo_desvio, parecer_crm, requer_aprovacao_gestor, created_at, updated_at`

// Criar persiste uma nova análise.
func (r *AnaliseRepo) Criar(ctx context.Context, analise *entity.Analise) error {
	query := `
		INSERT INTO analises (` + analiseColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(ctx, query,
		analise.ID, analise.PedidoID, analise.ClienteID, analise.GrupoEconomicoID,
		analise.Status, analise.TipoAnalista,
		analise.Decisao, analise.LimiteAprovado, analise.LimiteSugerido, analise.Justificativa, analise.Observacoes,
		analise.DataInicio, analise.DataFim, analise.AnalistaResponsavel, analise.ScoreNoMomento,
		analise.MotivoDesvio, analise.ParecerCRM, analise.RequerAprovacaoGestor,
		analise.CreatedAt, analise.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert analise: %w", err)
	}
	return nil
}

// BuscarPorID obtém uma análise por ID.
func (r *AnaliseRepo) BuscarPorID(ctx context.Context, id string) (*entity.Analise, error) {
	return r.buscar(ctx, `WHERE id = $1`, id)
}

// BuscarPorPedido obtém a análise do pedido (relação 1:1).
func (r *AnaliseRepo) BuscarPorPedido(ctx context.Context, pedidoID string) (*entity.Analise, error) {
	return r.buscar(ctx, `WHERE pedido_id = $1`, pedidoID)
}

// ListarPorStatus lista as análises em um status (colunas do kanban), mais antiga primeiro.
func (r *AnaliseRepo) ListarPorStatus(ctx context.Context, status workflow.Status) ([]*entity.Analise, error) {
	query := `SELECT ` + analiseColunas + ` FROM analises WHERE status = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("list analises: %w", err)
	}
	defer rows.Close()

	var analises []*entity.Analise
	for rows.Next() {
		a, err := scanAnalise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan analise: %w", err)
		}
		analises = append(analises, a)
	}
	return analises, rows.Err()
}

// Atualizar persiste o estado mutável da análise.
func (r *AnaliseRepo) Atualizar(ctx context.Context, analise *entity.Analise) error {
	query := `
		UPDATE analises SET
			status = $2, tipo_analista = $3, decisao = $4, limite_aprovado = $5, limite_sugerido = $6,
			justificativa = $7, observacoes = $8, data_inicio = $9, data_fim = $10,
			analista_responsavel = $11, score_no_momento = $12, motivo_desvio = $13,
			parecer_crm = $14, requer_aprovacao_gestor = $15, updated_at = $16
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		analise.ID, analise.Status, analise.TipoAnalista, analise.Decisao,
		analise.LimiteAprovado, analise.LimiteSugerido,
		analise.Justificativa, analise.Observacoes, analise.DataInicio, analise.DataFim,
		analise.AnalistaResponsavel, analise.ScoreNoMomento, analise.MotivoDesvio,
		analise.ParecerCRM, analise.RequerAprovacaoGestor, analise.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update analise: %w", err)
	}
	return nil
}

func (r *AnaliseRepo) buscar(ctx context.Context, where string, arg any) (*entity.Analise, error) {
	query := `SELECT ` + analiseColunas + ` FROM analises ` + where
	a, err := scanAnalise(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get analise: %w", err)
	}
	return a, nil
}

func scanAnalise(row rowScanner) (*entity.Analise, error) {
	var a entity.Analise
	err := row.Scan(
		&a.ID, &a.PedidoID, &a.ClienteID, &a.GrupoEconomicoID, &a.Status, &a.TipoAnalista,
		&a.Decisao, &a.LimiteAprovado, &a.LimiteSugerido, &a.Justificativa, &a.Observacoes,
		&a.DataInicio, &a.DataFim, &a.AnalistaResponsavel, &a.ScoreNoMomento,
		&a.MotivoDesvio, &a.ParecerCRM, &a.RequerAprovacaoGestor, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
