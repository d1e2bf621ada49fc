// Package cadastro cria clientes, grupos econômicos e pedidos.
//
// Invariantes preservados aqui:
//   - todo cliente pertence a exatamente um grupo; sem grupo designado, cria-se
//     o grupo singleton com codigo = CNPJ;
//   - o workflow do pedido é derivado do bloqueio UMA vez, na criação, e a
//     análise nasce em PENDENTE junto com o pedido.
package cadastro

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/seu-usuario/analise-credito/internal/application/dto"
	"github.com/seu-usuario/analise-credito/internal/domain"
	"github.com/seu-usuario/analise-credito/internal/domain/entity"
	"github.com/seu-usuario/analise-credito/internal/domain/repository"
	"github.com/seu-usuario/analise-credito/internal/domain/workflow"
)

// UseCase casos de uso de cadastro.
type UseCase struct {
	clienteRepo   repository.ClienteRepository
	grupoRepo     repository.GrupoEconomicoRepository
	restricaoRepo repository.RestricaoRepository
	tx            TxRunner
	agora         func() time.Time
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	clienteRepo repository.ClienteRepository,
	grupoRepo repository.GrupoEconomicoRepository,
	restricaoRepo repository.RestricaoRepository,
	tx TxRunner,
) *UseCase {
	return &UseCase{
		clienteRepo:   clienteRepo,
		grupoRepo:     grupoRepo,
		restricaoRepo: restricaoRepo,
		tx:            tx,
		agora:         time.Now,
	}
}

// CriarCliente cadastra o cliente, criando o grupo singleton quando necessário.
func (uc *UseCase) CriarCliente(ctx context.Context, in dto.CriarClienteRequest) (*entity.Cliente, error) {
	existente, err := uc.clienteRepo.BuscarPorCNPJ(ctx, in.CNPJ)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, fmt.Errorf("%w: cliente com CNPJ %s", domain.ErrDuplicado, in.CNPJ)
	}

	grupoID := in.GrupoEconomicoID
	if grupoID == "" {
		grupo, err := uc.criarGrupoSingleton(ctx, in.CNPJ, in.RazaoSocial)
		if err != nil {
			return nil, err
		}
		grupoID = grupo.ID
	} else {
		grupo, err := uc.grupoRepo.BuscarPorID(ctx, grupoID)
		if err != nil {
			return nil, err
		}
		if grupo == nil {
			return nil, fmt.Errorf("%w: grupo econômico %s", domain.ErrNaoEncontrado, grupoID)
		}
	}

	now := uc.agora()
	cliente := &entity.Cliente{
		ID:               uuid.New().String(),
		GrupoEconomicoID: grupoID,
		CNPJ:             in.CNPJ,
		RazaoSocial:      in.RazaoSocial,
		NomeFantasia:     in.NomeFantasia,
		Estado:           in.Estado,
		TipoCliente:      entity.TipoClienteNovo,
		Simei:            in.Simei,
		ScoreBoaVista:    in.ScoreBoaVista,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if in.DataFundacao != "" {
		fundacao, err := time.Parse("2006-01-02", in.DataFundacao)
		if err != nil {
			return nil, fmt.Errorf("%w: data de fundação inválida", domain.ErrValidacao)
		}
		cliente.DataFundacao = &fundacao
	}

	if err := uc.clienteRepo.Criar(ctx, cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

// CriarPedido abre o pedido com workflow derivado do bloqueio e a análise em PENDENTE.
func (uc *UseCase) CriarPedido(ctx context.Context, in dto.CriarPedidoRequest) (*entity.Pedido, *entity.Analise, error) {
	cliente, err := uc.clienteRepo.BuscarPorID(ctx, in.ClienteID)
	if err != nil {
		return nil, nil, err
	}
	if cliente == nil {
		return nil, nil, fmt.Errorf("%w: cliente %s", domain.ErrNaoEncontrado, in.ClienteID)
	}
	if !in.Valor.IsPositive() {
		return nil, nil, fmt.Errorf("%w: valor do pedido deve ser positivo", domain.ErrValidacao)
	}

	now := uc.agora()
	pedido := &entity.Pedido{
		ID:                uuid.New().String(),
		ClienteID:         cliente.ID,
		Numero:            in.Numero,
		Data:              now,
		Valor:             in.Valor,
		Marca:             in.Marca,
		Deposito:          in.Deposito,
		CondicaoPagamento: in.CondicaoPagamento,
		Colecao:           in.Colecao,
		Bloqueio:          in.Bloqueio,
		Workflow:          workflow.TipoPorBloqueio(in.Bloqueio),
		CreatedAt:         now,
	}
	analise := &entity.Analise{
		ID:               uuid.New().String(),
		PedidoID:         pedido.ID,
		ClienteID:        cliente.ID,
		GrupoEconomicoID: cliente.GrupoEconomicoID,
		Status:           workflow.StatusPendente,
		LimiteAprovado:   decimal.Zero,
		LimiteSugerido:   decimal.Zero,
		ScoreNoMomento:   cliente.ScoreBoaVista,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// Pedido e análise nascem na mesma transação: não existe pedido sem análise PENDENTE.
	err = uc.tx.Run(ctx, func(pedidoRepo repository.PedidoRepository, analiseRepo repository.AnaliseRepository) error {
		if err := pedidoRepo.Criar(ctx, pedido); err != nil {
			return err
		}
		return analiseRepo.Criar(ctx, analise)
	})
	if err != nil {
		return nil, nil, err
	}

	return pedido, analise, nil
}

// CriarRestricao cadastra um apontamento restritivo do cliente.
func (uc *UseCase) CriarRestricao(ctx context.Context, clienteID string, in dto.CriarRestricaoRequest) (*entity.Restricao, error) {
	cliente, err := uc.clienteRepo.BuscarPorID(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNaoEncontrado, clienteID)
	}
	data, err := time.Parse("2006-01-02", in.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: data da restrição inválida", domain.ErrValidacao)
	}

	restricao := &entity.Restricao{
		ID:        uuid.New().String(),
		ClienteID: clienteID,
		Tipo:      entity.TipoRestricao(in.Tipo),
		Valor:     in.Valor,
		Data:      data,
		Origem:    in.Origem,
		CreatedAt: uc.agora(),
	}
	if err := uc.restricaoRepo.Criar(ctx, restricao); err != nil {
		return nil, err
	}
	return restricao, nil
}

// ExcluirRestricao remove um apontamento restritivo.
func (uc *UseCase) ExcluirRestricao(ctx context.Context, id string) error {
	return uc.restricaoRepo.Excluir(ctx, id)
}

func (uc *UseCase) criarGrupoSingleton(ctx context.Context, cnpj, nome string) (*entity.GrupoEconomico, error) {
	if existente, err := uc.grupoRepo.BuscarPorCodigo(ctx, cnpj); err != nil {
		return nil, err
	} else if existente != nil {
		return existente, nil
	}

	now := uc.agora()
	grupo := &entity.GrupoEconomico{
		ID:               uuid.New().String(),
		Codigo:           cnpj,
		Nome:             nome,
		LimiteAprovado:   decimal.Zero,
		LimiteDisponivel: decimal.Zero,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.grupoRepo.Criar(ctx, grupo); err != nil {
		return nil, err
	}
	return grupo, nil
}
