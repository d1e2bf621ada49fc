// Package analise contém o motor de transições do workflow de análise de crédito
// e a conclusão de decisão do analista.
//
// Uma transição acontece nesta ordem:
//  1. Validação contra a tabela do workflow (rejeição antes de qualquer mutação)
//  2. Registro do novo status e do analista responsável
//  3. Efeito colateral de entrada do estado de destino (timestamps, alçada,
//     reclassificação do cliente, commit do limite do grupo)
//  4. Persistência
//
// Finalizações concorrentes do mesmo grupo econômico são serializadas por um
// mutex por grupo: o commit do limite é read-then-write sobre a linha do grupo.
package analise

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/analise-credito/internal/domain"
	"github.com/seu-usuario/analise-credito/internal/domain/entity"
	"github.com/seu-usuario/analise-credito/internal/domain/repository"
	"github.com/seu-usuario/analise-credito/internal/domain/workflow"
)

// UseCase é o motor de workflow da análise.
type UseCase struct {
	configRepo    repository.ConfiguracaoRepository
	analiseRepo   repository.AnaliseRepository
	pedidoRepo    repository.PedidoRepository
	clienteRepo   repository.ClienteRepository
	grupoRepo     repository.GrupoEconomicoRepository
	restricaoRepo repository.RestricaoRepository

	// travas por grupo econômico para o commit de limite no FINALIZADO
	gruposEmFinalizacao sync.Map // grupoID -> *sync.Mutex

	agora func() time.Time
}

// NewUseCase constrói o motor.
func NewUseCase(
	configRepo repository.ConfiguracaoRepository,
	analiseRepo repository.AnaliseRepository,
	pedidoRepo repository.PedidoRepository,
	clienteRepo repository.ClienteRepository,
	grupoRepo repository.GrupoEconomicoRepository,
	restricaoRepo repository.RestricaoRepository,
) *UseCase {
	return &UseCase{
		configRepo:    configRepo,
		analiseRepo:   analiseRepo,
		pedidoRepo:    pedidoRepo,
		clienteRepo:   clienteRepo,
		grupoRepo:     grupoRepo,
		restricaoRepo: restricaoRepo,
		agora:         time.Now,
	}
}

// Transicionar muda a análise para o novo status, aplicando todas as regras de negócio.
// Devolve domain.ErrTransicaoInvalida (com a tripla atual→novo/workflow) quando a
// mudança não é permitida; nesse caso nada é mutado nem persistido.
func (uc *UseCase) Transicionar(ctx context.Context, analiseID string, novoStatus workflow.Status, analista string) (*entity.Analise, error) {
	analise, err := uc.buscarAnalise(ctx, analiseID)
	if err != nil {
		return nil, err
	}
	pedido, err := uc.buscarPedido(ctx, analise.PedidoID)
	if err != nil {
		return nil, err
	}

	if !workflow.TransicaoValida(analise.Status, novoStatus, pedido.Workflow) {
		return nil, fmt.Errorf("%w: de %s para %s no workflow %s",
			domain.ErrTransicaoInvalida, analise.Status, novoStatus, pedido.Workflow)
	}

	analise.Status = novoStatus
	analise.AnalistaResponsavel = analista

	if err := uc.aplicarEfeitoDeEntrada(ctx, analise, pedido, novoStatus); err != nil {
		return nil, err
	}

	analise.UpdatedAt = uc.agora()
	if err := uc.analiseRepo.Atualizar(ctx, analise); err != nil {
		return nil, fmt.Errorf("salvar análise: %w", err)
	}

	// O commit do limite do grupo só roda depois da análise persistida com dataFim,
	// para que o pedido finalizado não conte mais no total em aberto.
	if novoStatus == workflow.StatusFinalizado && analise.LimiteAprovado.IsPositive() {
		if err := uc.atualizarLimiteGrupo(ctx, analise); err != nil {
			return nil, err
		}
	}

	return analise, nil
}

// aplicarEfeitoDeEntrada executa o efeito colateral do estado de destino.
// Cada efeito é idempotente em relação a campos já preenchidos.
func (uc *UseCase) aplicarEfeitoDeEntrada(ctx context.Context, analise *entity.Analise, pedido *entity.Pedido, novo workflow.Status) error {
	switch novo {
	case workflow.StatusEmAnaliseFinanceiro, workflow.StatusEmAnaliseClienteNovo:
		if analise.DataInicio == nil {
			inicio := uc.agora()
			analise.DataInicio = &inicio
		}

	case workflow.StatusParecerAprovado, workflow.StatusParecerReprovado,
		workflow.StatusReanalisadoAprovado, workflow.StatusReanalisadoReprovado:
		requer, err := uc.RequerAprovacaoGestor(ctx, analise, pedido)
		if err != nil {
			return err
		}
		// Flag monotônica: nunca volta a false.
		if requer {
			analise.RequerAprovacaoGestor = true
		}

	case workflow.StatusSolicitarCancelamento:
		fim := uc.agora()
		analise.DataFim = &fim

	case workflow.StatusEncaminhadoAntecipado:
		fim := uc.agora()
		analise.DataFim = &fim
		if err := uc.reclassificarClienteAntecipado(ctx, analise.ClienteID); err != nil {
			return err
		}

	case workflow.StatusFinalizado:
		fim := uc.agora()
		analise.DataFim = &fim
	}
	return nil
}

// RequerAprovacaoGestor reavalia a regra de alçada. Qualquer condição basta:
//   - valor do pedido > valorAprovacaoGestor, OU
//   - total de pedidos EM ABERTO do grupo > totalGrupoAprovacaoGestor, OU
//   - número de restrições do cliente >= restricoesAprovacaoGestor.
//
// Sempre recalculada (nunca apenas lida) em toda transição de parecer/reanálise.
func (uc *UseCase) RequerAprovacaoGestor(ctx context.Context, analise *entity.Analise, pedido *entity.Pedido) (bool, error) {
	config, err := uc.configRepo.Carregar(ctx)
	if err != nil {
		return false, err
	}
	if _, err := uc.buscarGrupo(ctx, analise.GrupoEconomicoID); err != nil {
		return false, err
	}

	totalAbertos, err := uc.pedidoRepo.SomarValoresAbertosPorGrupo(ctx, analise.GrupoEconomicoID)
	if err != nil {
		return false, fmt.Errorf("somar pedidos em aberto: %w", err)
	}
	restricoes, err := uc.restricaoRepo.ContarPorCliente(ctx, analise.ClienteID)
	if err != nil {
		return false, fmt.Errorf("contar restrições: %w", err)
	}

	return config.RequerAprovacaoPorValor(pedido.Valor) ||
		config.RequerAprovacaoPorTotalGrupo(totalAbertos) ||
		config.RequerAprovacaoPorRestricoes(restricoes), nil
}

// Buscar devolve a análise por ID.
func (uc *UseCase) Buscar(ctx context.Context, analiseID string) (*entity.Analise, error) {
	return uc.buscarAnalise(ctx, analiseID)
}

// StatusPermitidos devolve os destinos válidos a partir do estado atual da análise.
func (uc *UseCase) StatusPermitidos(ctx context.Context, analiseID string) ([]workflow.Status, error) {
	analise, err := uc.buscarAnalise(ctx, analiseID)
	if err != nil {
		return nil, err
	}
	pedido, err := uc.buscarPedido(ctx, analise.PedidoID)
	if err != nil {
		return nil, err
	}
	return workflow.StatusPermitidos(analise.Status, pedido.Workflow), nil
}

// atualizarLimiteGrupo aplica o limite aprovado da análise como novo teto do grupo
// e recalcula o disponível: max(0, aprovado - total de pedidos em aberto).
// Serializado por grupo: duas finalizações simultâneas não intercalam read/write.
func (uc *UseCase) atualizarLimiteGrupo(ctx context.Context, analise *entity.Analise) error {
	mu := uc.travaDoGrupo(analise.GrupoEconomicoID)
	mu.Lock()
	defer mu.Unlock()

	grupo, err := uc.buscarGrupo(ctx, analise.GrupoEconomicoID)
	if err != nil {
		return err
	}

	grupo.LimiteAprovado = analise.LimiteAprovado

	totalAbertos, err := uc.pedidoRepo.SomarValoresAbertosPorGrupo(ctx, grupo.ID)
	if err != nil {
		return fmt.Errorf("somar pedidos em aberto: %w", err)
	}
	disponivel := analise.LimiteAprovado.Sub(totalAbertos)
	if disponivel.IsNegative() {
		disponivel = decimal.Zero
	}
	grupo.LimiteDisponivel = disponivel
	grupo.UpdatedAt = uc.agora()

	if err := uc.grupoRepo.Atualizar(ctx, grupo); err != nil {
		return fmt.Errorf("salvar grupo: %w", err)
	}
	return nil
}

func (uc *UseCase) travaDoGrupo(grupoID string) *sync.Mutex {
	mu, _ := uc.gruposEmFinalizacao.LoadOrStore(grupoID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (uc *UseCase) reclassificarClienteAntecipado(ctx context.Context, clienteID string) error {
	cliente, err := uc.clienteRepo.BuscarPorID(ctx, clienteID)
	if err != nil {
		return err
	}
	if cliente == nil {
		return fmt.Errorf("%w: cliente %s", domain.ErrNaoEncontrado, clienteID)
	}
	cliente.TipoCliente = entity.TipoClienteAntecipado
	cliente.UpdatedAt = uc.agora()
	return uc.clienteRepo.Atualizar(ctx, cliente)
}

func (uc *UseCase) buscarAnalise(ctx context.Context, id string) (*entity.Analise, error) {
	analise, err := uc.analiseRepo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if analise == nil {
		return nil, fmt.Errorf("%w: análise %s", domain.ErrNaoEncontrado, id)
	}
	return analise, nil
}

func (uc *UseCase) buscarPedido(ctx context.Context, id string) (*entity.Pedido, error) {
	pedido, err := uc.pedidoRepo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNaoEncontrado, id)
	}
	return pedido, nil
}

func (uc *UseCase) buscarGrupo(ctx context.Context, id string) (*entity.GrupoEconomico, error) {
	grupo, err := uc.grupoRepo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if grupo == nil {
		return nil, fmt.Errorf("%w: grupo econômico %s", domain.ErrNaoEncontrado, id)
	}
	return grupo, nil
}
