// Package configuracao expõe leitura e substituição da configuração singleton.
package configuracao

import (
	"context"

	"github.com/seu-usuario/analise-credito/internal/application/dto"
	"github.com/seu-usuario/analise-credito/internal/domain/entity"
	"github.com/seu-usuario/analise-credito/internal/domain/repository"
)

// UseCase caso de uso da configuração.
type UseCase struct {
	repo repository.ConfiguracaoRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(repo repository.ConfiguracaoRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Carregar devolve a configuração vigente.
func (uc *UseCase) Carregar(ctx context.Context) (*entity.Configuracao, error) {
	return uc.repo.Carregar(ctx)
}

// Substituir troca o registro inteiro (versão por substituição, nunca patch de campo).
func (uc *UseCase) Substituir(ctx context.Context, in dto.ConfiguracaoRequest) (*entity.Configuracao, error) {
	cfg := &entity.Configuracao{
		ID:                           1,
		LimiteSimei:                  in.LimiteSimei,
		MaxSimeisPorGrupo:            in.MaxSimeisPorGrupo,
		ScoreBaixoThreshold:          in.ScoreBaixoThreshold,
		ScoreAltoMultiplicador:       in.ScoreAltoMultiplicador,
		ScoreMedioMultiplicador:      in.ScoreMedioMultiplicador,
		ScoreNormalMultiplicador:     in.ScoreNormalMultiplicador,
		ScoreBaixoMultiplicador:      in.ScoreBaixoMultiplicador,
		ValorAprovacaoGestor:         in.ValorAprovacaoGestor,
		TotalGrupoAprovacaoGestor:    in.TotalGrupoAprovacaoGestor,
		RestricoesAprovacaoGestor:    in.RestricoesAprovacaoGestor,
		CnaesPermitidos:              in.CnaesPermitidos,
		ProtestoThresholdAntecipado:  in.ProtestoThresholdAntecipado,
		RestricaoThresholdAntecipado: in.RestricaoThresholdAntecipado,
		MesesLojaThreshold:           in.MesesLojaThreshold,
		MesesFundacaoThreshold:       in.MesesFundacaoThreshold,
	}
	if err := uc.repo.Salvar(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
