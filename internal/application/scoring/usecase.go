// Package scoring calcula o limite de crédito sugerido de um grupo econômico.
//
// Algoritmo:
//  1. Busca as 2 coleções de BI mais recentes do grupo (menos é aceitável).
//  2. baseCredito = maior crédito entre as coleções obtidas.
//  3. scoreInterno = score da coleção MAIS RECENTE (não o maior).
//  4. Fator por faixa de score (800+/600+/400+/abaixo); score ausente = faixa normal.
//  5. limite = baseCredito × fator, em aritmética decimal exata.
//  6. Cap SIMEI: se algum cliente do grupo é SIMEI com pedido e o limite excede o
//     teto configurado, o limite é fixado no teto.
//
// Sem dados de BI o resultado é zero, sem erro. A ausência da configuração é fatal.
package scoring

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/analise-credito/internal/domain/repository"
)

// UseCase caso de uso de scoring.
type UseCase struct {
	configRepo  repository.ConfiguracaoRepository
	dadosBIRepo repository.DadosBIRepository
	clienteRepo repository.ClienteRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	configRepo repository.ConfiguracaoRepository,
	dadosBIRepo repository.DadosBIRepository,
	clienteRepo repository.ClienteRepository,
) *UseCase {
	return &UseCase{configRepo: configRepo, dadosBIRepo: dadosBIRepo, clienteRepo: clienteRepo}
}

// CalcularLimiteSugerido calcula o limite sugerido para o grupo econômico.
func (uc *UseCase) CalcularLimiteSugerido(ctx context.Context, grupoID string) (decimal.Decimal, error) {
	config, err := uc.configRepo.Carregar(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	snapshots, err := uc.dadosBIRepo.ListarPorGrupo(ctx, grupoID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("listar dados de BI: %w", err)
	}
	if len(snapshots) == 0 {
		return decimal.Zero, nil
	}
	if len(snapshots) > 2 {
		snapshots = snapshots[:2]
	}

	// Maior crédito entre as coleções; score da mais recente.
	maiorCredito := snapshots[0].Credito
	for _, s := range snapshots[1:] {
		if s.Credito.GreaterThan(maiorCredito) {
			maiorCredito = s.Credito
		}
	}
	fator := config.MultiplicadorPorScore(snapshots[0].Score)

	limite := maiorCredito.Mul(fator)

	temSimeiComPedido, err := uc.grupoTemSimeiComPedido(ctx, grupoID)
	if err != nil {
		return decimal.Zero, err
	}
	if temSimeiComPedido && limite.GreaterThan(config.LimiteSimei) {
		limite = config.LimiteSimei
	}

	return limite, nil
}

func (uc *UseCase) grupoTemSimeiComPedido(ctx context.Context, grupoID string) (bool, error) {
	n, err := uc.clienteRepo.ContarSimeisComPedido(ctx, grupoID)
	if err != nil {
		return false, fmt.Errorf("contar simeis com pedido: %w", err)
	}
	return n > 0, nil
}
