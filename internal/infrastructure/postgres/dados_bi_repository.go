package postgres

import (
	"context"
	"fmt"

	"github.com/seu-usuario/analise-credito/internal/domain"
	"github.com/seu-usuario/analise-credito/internal/domain/entity"
	"github.com/seu-usuario/analise-credito/internal/domain/repository"
)

var _ repository.DadosBIRepository = (*DadosBIRepo)(nil)

// DadosBIRepo implementação do porto DadosBIRepository sobre PostgreSQL.
type DadosBIRepo struct {
	q Querier
}

// NewDadosBIRepository constrói o adaptador de leitura de snapshots de BI.
func NewDadosBIRepository(q Querier) *DadosBIRepo {
	return &DadosBIRepo{q: q}
}

// ListarPorGrupo devolve os snapshots do grupo ordenados por coleção, mais recente primeiro.
func (r *DadosBIRepo) ListarPorGrupo(ctx context.Context, grupoID string) ([]*entity.DadosBI, error) {
	query := `
		SELECT id, grupo_economico_id, colecao, credito, score, created_at
		FROM dados_bi WHERE grupo_economico_id = $1 ORDER BY colecao DESC`
	rows, err := r.q.Query(ctx, query, grupoID)
	if err != nil {
		return nil, fmt.Errorf("list dados BI: %w", err)
	}
	defer rows.Close()

	var snapshots []*entity.DadosBI
	for rows.Next() {
		var d entity.DadosBI
		if err := rows.Scan(&d.ID, &d.GrupoEconomicoID, &d.Colecao, &d.Credito, &d.Score, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan dados BI: %w", err)
		}
		snapshots = append(snapshots, &d)
	}
	return snapshots, rows.Err()
}

// Criar persiste um snapshot de BI.
func (r *DadosBIRepo) Criar(ctx context.Context, dados *entity.DadosBI) error {
	query := `
		INSERT INTO dados_bi (id, grupo_economico_id, colecao, credito, score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		dados.ID, dados.GrupoEconomicoID, dados.Colecao, dados.Credito, dados.Score, dados.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert dados BI: %w", err)
	}
	return nil
}
