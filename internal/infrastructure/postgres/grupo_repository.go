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

var _ repository.GrupoEconomicoRepository = (*GrupoRepo)(nil)

// GrupoRepo implementação do porto GrupoEconomicoRepository sobre PostgreSQL.
type GrupoRepo struct {
	q Querier
}

// NewGrupoRepository constrói o adaptador de persistência de grupos econômicos.
func NewGrupoRepository(q Querier) *GrupoRepo {
	return &GrupoRepo{q: q}
}

// Criar persiste um novo grupo econômico.
func (r *GrupoRepo) Criar(ctx context.Context, grupo *entity.GrupoEconomico) error {
	query := `
		INSERT INTO grupos_economicos (id, codigo, nome, limite_aprovado, limite_disponivel, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		grupo.ID, grupo.Codigo, grupo.Nome, grupo.LimiteAprovado, grupo.LimiteDisponivel,
		grupo.CreatedAt, grupo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert grupo: %w", err)
	}
	return nil
}

// BuscarPorID obtém um grupo por ID.
func (r *GrupoRepo) BuscarPorID(ctx context.Context, id string) (*entity.GrupoEconomico, error) {
	return r.buscar(ctx, `WHERE id = $1`, id)
}

// BuscarPorCodigo obtém um grupo pelo código (CNPJ nos grupos singleton).
func (r *GrupoRepo) BuscarPorCodigo(ctx context.Context, codigo string) (*entity.GrupoEconomico, error) {
	return r.buscar(ctx, `WHERE codigo = $1`, codigo)
}

// Atualizar persiste limites e nome do grupo.
func (r *GrupoRepo) Atualizar(ctx context.Context, grupo *entity.GrupoEconomico) error {
	query := `
		UPDATE grupos_economicos
		SET nome = $2, limite_aprovado = $3, limite_disponivel = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		grupo.ID, grupo.Nome, grupo.LimiteAprovado, grupo.LimiteDisponivel, grupo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update grupo: %w", err)
	}
	return nil
}

func (r *GrupoRepo) buscar(ctx context.Context, where string, arg any) (*entity.GrupoEconomico, error) {
	query := `
		SELECT id, codigo, nome, limite_aprovado, limite_disponivel, created_at, updated_at
		FROM grupos_economicos ` + where
	var g entity.GrupoEconomico
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&g.ID, &g.Codigo, &g.Nome, &g.LimiteAprovado, &g.LimiteDisponivel, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get grupo: %w", err)
	}
	return &g, nil
}
