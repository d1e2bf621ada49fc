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

var _ repository.ConfiguracaoRepository = (*ConfiguracaoRepo)(nil)

// ConfiguracaoRepo implementação do porto ConfiguracaoRepository sobre PostgreSQL.
// A configuração é singleton: exatamente uma linha com id = 1.
type ConfiguracaoRepo struct {
	q Querier
}

// NewConfiguracaoRepository constrói o adaptador de persistência da configuração.
func NewConfiguracaoRepository(q Querier) *ConfiguracaoRepo {
	return &ConfiguracaoRepo{q: q}
}

// Carregar lê a linha singleton. Devolve domain.ErrConfiguracaoNaoEncontrada se não existir.
func (r *ConfiguracaoRepo) Carregar(ctx context.Context) (*entity.Configuracao, error) {
	query := `
		SELECT id, limite_simei, max_simeis_por_grupo, score_baixo_threshold,
		       score_alto_mult, score_medio_mult, score_normal_mult, score_baixo_mult,
		       valor_aprovacao_gestor, total_grupo_aprovacao_gestor, restricoes_aprovacao_gestor,
		       cnaes_permitidos, protesto_threshold_antecipado, restricao_threshold_antecipado,
		       meses_loja_threshold, meses_fundacao_threshold
		FROM configuracoes WHERE id = 1`
	var c entity.Configuracao
	err := r.q.QueryRow(ctx, query).Scan(
		&c.ID, &c.LimiteSimei, &c.MaxSimeisPorGrupo, &c.ScoreBaixoThreshold,
		&c.ScoreAltoMultiplicador, &c.ScoreMedioMultiplicador, &c.ScoreNormalMultiplicador, &c.ScoreBaixoMultiplicador,
		&c.ValorAprovacaoGestor, &c.TotalGrupoAprovacaoGestor, &c.RestricoesAprovacaoGestor,
		&c.CnaesPermitidos, &c.ProtestoThresholdAntecipado, &c.RestricaoThresholdAntecipado,
		&c.MesesLojaThreshold, &c.MesesFundacaoThreshold,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrConfiguracaoNaoEncontrada
		}
		return nil, fmt.Errorf("get configuracao: %w", err)
	}
	return &c, nil
}

// Salvar substitui o registro inteiro (upsert na linha id = 1).
func (r *ConfiguracaoRepo) Salvar(ctx context.Context, cfg *entity.Configuracao) error {
	query := `
		INSERT INTO configuracoes (id, limite_simei, max_simeis_por_grupo, score_baixo_threshold,
		       score_alto_mult, score_medio_mult, score_normal_mult, score_baixo_mult,
		       valor_aprovacao_gestor, total_grupo_aprovacao_gestor, restricoes_aprovacao_gestor,
		       cnaes_permitidos, protesto_threshold_antecipado, restricao_threshold_antecipado,
		       meses_loja_threshold, meses_fundacao_threshold)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
		       limite_simei = EXCLUDED.limite_simei,
		       max_simeis_por_grupo = EXCLUDED.max_simeis_por_grupo,
		       score_baixo_threshold = EXCLUDED.score_baixo_threshold,
		       score_alto_mult = EXCLUDED.score_alto_mult,
		       score_medio_mult = EXCLUDED.score_medio_mult,
		       score_normal_mult = EXCLUDED.score_normal_mult,
		       score_baixo_mult = EXCLUDED.score_baixo_mult,
		       valor_aprovacao_gestor = EXCLUDED.valor_aprovacao_gestor,
		       total_grupo_aprovacao_gestor = EXCLUDED.total_grupo_aprovacao_gestor,
		       restricoes_aprovacao_gestor = EXCLUDED.restricoes_aprovacao_gestor,
		       cnaes_permitidos = EXCLUDED.cnaes_permitidos,
		       protesto_threshold_antecipado = EXCLUDED.protesto_threshold_antecipado,
		       restricao_threshold_antecipado = EXCLUDED.restricao_threshold_antecipado,
		       meses_loja_threshold = EXCLUDED.meses_loja_threshold,
		       meses_fundacao_threshold = EXCLUDED.meses_fundacao_threshold`
	_, err := r.q.Exec(ctx, query,
		cfg.LimiteSimei, cfg.MaxSimeisPorGrupo, cfg.ScoreBaixoThreshold,
		cfg.ScoreAltoMultiplicador, cfg.ScoreMedioMultiplicador, cfg.ScoreNormalMultiplicador, cfg.ScoreBaixoMultiplicador,
		cfg.ValorAprovacaoGestor, cfg.TotalGrupoAprovacaoGestor, cfg.RestricoesAprovacaoGestor,
		cfg.CnaesPermitidos, cfg.ProtestoThresholdAntecipado, cfg.RestricaoThresholdAntecipado,
		cfg.MesesLojaThreshold, cfg.MesesFundacaoThreshold,
	)
	if err != nil {
		return fmt.Errorf("save configuracao: %w", err)
	}
	return nil
}
