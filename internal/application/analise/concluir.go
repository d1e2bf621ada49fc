package analise

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/analise-credito/internal/application/dto"
	"github.com/seu-usuario/analise-credito/internal/domain"
	"github.com/seu-usuario/analise-credito/internal/domain/entity"
	"github.com/seu-usuario/analise-credito/internal/domain/parecer"
	"github.com/seu-usuario/analise-credito/internal/domain/workflow"
)

// Concluir registra a decisão do analista e transiciona a análise para o parecer
// correspondente. Falhas de validação não produzem nenhuma mutação parcial.
//
// Regras de validação:
//   - decisão obrigatória (APROVADO, LIMITADO ou REPROVADO)
//   - LIMITADO exige limite aprovado positivo
//   - justificativa obrigatória
func (uc *UseCase) Concluir(ctx context.Context, analiseID string, in dto.ConcluirRequest) (*entity.Analise, error) {
	analise, err := uc.buscarAnalise(ctx, analiseID)
	if err != nil {
		return nil, err
	}
	pedido, err := uc.buscarPedido(ctx, analise.PedidoID)
	if err != nil {
		return nil, err
	}

	switch in.Decisao {
	case entity.DecisaoAprovado, entity.DecisaoLimitado, entity.DecisaoReprovado:
	case "":
		return nil, fmt.Errorf("%w: decisão é obrigatória", domain.ErrValidacao)
	default:
		return nil, fmt.Errorf("%w: decisão desconhecida %q", domain.ErrValidacao, in.Decisao)
	}
	if in.Decisao == entity.DecisaoLimitado && !in.LimiteAprovado.IsPositive() {
		return nil, fmt.Errorf("%w: limite aprovado é obrigatório quando decisão é LIMITADO", domain.ErrValidacao)
	}
	if strings.TrimSpace(in.Justificativa) == "" {
		return nil, fmt.Errorf("%w: justificativa é obrigatória", domain.ErrValidacao)
	}

	analise.Decisao = in.Decisao
	analise.Justificativa = in.Justificativa
	analise.Observacoes = in.Observacoes
	analise.AnalistaResponsavel = in.Analista
	fim := uc.agora()
	analise.DataFim = &fim
	analise.LimiteAprovado = limitePorDecisao(in, analise)

	if pedido.Workflow == workflow.TipoClienteNovo {
		texto, err := uc.formatarParecer(ctx, pedido.Workflow, analise)
		if err != nil {
			return nil, err
		}
		analise.ParecerCRM = texto
	}

	analise.UpdatedAt = uc.agora()
	if err := uc.analiseRepo.Atualizar(ctx, analise); err != nil {
		return nil, fmt.Errorf("salvar análise: %w", err)
	}

	return uc.Transicionar(ctx, analise.ID, statusPorDecisao(in.Decisao), in.Analista)
}

// GerarParecerCRM devolve o parecer formatado para o CRM, ou "" quando o workflow
// do pedido é BASE_PRAZO (não existe parecer nesse fluxo).
func (uc *UseCase) GerarParecerCRM(ctx context.Context, analiseID string) (string, error) {
	analise, err := uc.buscarAnalise(ctx, analiseID)
	if err != nil {
		return "", err
	}
	pedido, err := uc.buscarPedido(ctx, analise.PedidoID)
	if err != nil {
		return "", err
	}
	return uc.formatarParecer(ctx, pedido.Workflow, analise)
}

func (uc *UseCase) formatarParecer(ctx context.Context, tipo workflow.Tipo, analise *entity.Analise) (string, error) {
	if tipo != workflow.TipoClienteNovo {
		return "", nil
	}

	cliente, err := uc.clienteRepo.BuscarPorID(ctx, analise.ClienteID)
	if err != nil {
		return "", err
	}
	if cliente == nil {
		return "", fmt.Errorf("%w: cliente %s", domain.ErrNaoEncontrado, analise.ClienteID)
	}
	restricoes, err := uc.restricaoRepo.ContarPorCliente(ctx, cliente.ID)
	if err != nil {
		return "", err
	}
	socios, err := uc.clienteRepo.ContarSocios(ctx, cliente.ID)
	if err != nil {
		return "", err
	}
	participacoes, err := uc.clienteRepo.ContarParticipacoes(ctx, cliente.ID)
	if err != nil {
		return "", err
	}

	return parecer.GerarParecerCRM(tipo, analise, parecer.DadosCliente{
		RazaoSocial:      cliente.RazaoSocial,
		DataFundacao:     cliente.DataFundacao,
		Simei:            cliente.Simei,
		TotalRestricoes:  restricoes,
		ScoreBoaVista:    cliente.ScoreBoaVista,
		NumSocios:        socios,
		NumParticipacoes: participacoes,
	}), nil
}

// limitePorDecisao deriva o limite aprovado da decisão:
// APROVADO usa o limite sugerido, LIMITADO o valor do formulário, REPROVADO zero.
func limitePorDecisao(in dto.ConcluirRequest, analise *entity.Analise) decimal.Decimal {
	switch in.Decisao {
	case entity.DecisaoAprovado:
		return analise.LimiteSugerido
	case entity.DecisaoLimitado:
		return in.LimiteAprovado
	default:
		return decimal.Zero
	}
}

func statusPorDecisao(decisao string) workflow.Status {
	if decisao == entity.DecisaoReprovado {
		return workflow.StatusParecerReprovado
	}
	return workflow.StatusParecerAprovado
}
