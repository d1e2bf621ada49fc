// Package alerta calcula os badges de risco exibidos nos cards do kanban.
//
// Os seis alertas são independentes (não exclusivos) e avaliados sempre na mesma
// ordem; a função é somente leitura e idempotente.
//
// Nota deliberada: TOTAL > LIMITE soma TODOS os pedidos do grupo, enquanto a regra
// de alçada soma apenas pedidos em aberto. As duas definições não devem ser unificadas.
package alerta

import (
	"context"
	"fmt"

	"github.com/seu-usuario/analise-credito/internal/domain"
	"github.com/seu-usuario/analise-credito/internal/domain/repository"
)

// UseCase caso de uso de alertas.
type UseCase struct {
	configRepo    repository.ConfiguracaoRepository
	clienteRepo   repository.ClienteRepository
	grupoRepo     repository.GrupoEconomicoRepository
	pedidoRepo    repository.PedidoRepository
	restricaoRepo repository.RestricaoRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	configRepo repository.ConfiguracaoRepository,
	clienteRepo repository.ClienteRepository,
	grupoRepo repository.GrupoEconomicoRepository,
	pedidoRepo repository.PedidoRepository,
	restricaoRepo repository.RestricaoRepository,
) *UseCase {
	return &UseCase{
		configRepo:    configRepo,
		clienteRepo:   clienteRepo,
		grupoRepo:     grupoRepo,
		pedidoRepo:    pedidoRepo,
		restricaoRepo: restricaoRepo,
	}
}

// CalcularAlertas devolve a lista ordenada de alertas aplicáveis ao pedido.
func (uc *UseCase) CalcularAlertas(ctx context.Context, pedidoID string) ([]string, error) {
	pedido, err := uc.pedidoRepo.BuscarPorID(ctx, pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNaoEncontrado, pedidoID)
	}
	cliente, err := uc.clienteRepo.BuscarPorID(ctx, pedido.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNaoEncontrado, pedido.ClienteID)
	}
	grupo, err := uc.grupoRepo.BuscarPorID(ctx, cliente.GrupoEconomicoID)
	if err != nil {
		return nil, err
	}
	if grupo == nil {
		return nil, fmt.Errorf("%w: grupo econômico %s", domain.ErrNaoEncontrado, cliente.GrupoEconomicoID)
	}
	config, err := uc.configRepo.Carregar(ctx)
	if err != nil {
		return nil, err
	}

	alertas := []string{}

	// 1. SIMEI > LIMITE
	if cliente.Simei && pedido.Valor.GreaterThan(config.LimiteSimei) {
		alertas = append(alertas, "SIMEI > LIMITE")
	}

	// 2. GRUPO > N SIMEIS
	simeisComPedido, err := uc.clienteRepo.ContarSimeisComPedido(ctx, grupo.ID)
	if err != nil {
		return nil, err
	}
	if simeisComPedido > config.MaxSimeisPorGrupo {
		alertas = append(alertas, fmt.Sprintf("GRUPO > %d SIMEIS", config.MaxSimeisPorGrupo))
	}

	// 3. PEDIDO > LIMITE
	if pedido.Valor.GreaterThan(grupo.LimiteAprovado) {
		alertas = append(alertas, "PEDIDO > LIMITE")
	}

	// 4. TOTAL > LIMITE (todos os pedidos do grupo, não só os abertos)
	totalPedidos, err := uc.pedidoRepo.SomarValoresPorGrupo(ctx, grupo.ID)
	if err != nil {
		return nil, err
	}
	if totalPedidos.GreaterThan(grupo.LimiteAprovado) {
		alertas = append(alertas, "TOTAL > LIMITE")
	}

	// 5. RESTRIÇÕES (X)
	restricoes, err := uc.restricaoRepo.ContarPorCliente(ctx, cliente.ID)
	if err != nil {
		return nil, err
	}
	if restricoes > 0 {
		alertas = append(alertas, fmt.Sprintf("RESTRIÇÕES (%d)", restricoes))
	}

	// 6. SCORE BAIXO
	if config.IsScoreBaixo(cliente.ScoreBoaVista) {
		alertas = append(alertas, "SCORE BAIXO")
	}

	return alertas, nil
}
