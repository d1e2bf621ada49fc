package analise

import (
	"context"

	"github.com/seu-usuario/analise-credito/internal/application/dto"
	"github.com/seu-usuario/analise-credito/internal/domain/entity"
	"github.com/seu-usuario/analise-credito/internal/domain/workflow"
)

// CalculadoraDeAlertas é a fatia do avaliador de alertas usada pelo kanban.
type CalculadoraDeAlertas interface {
	CalcularAlertas(ctx context.Context, pedidoID string) ([]string, error)
}

// Kanban lista as análises de um status com os badges de alerta de cada pedido.
func (uc *UseCase) Kanban(ctx context.Context, status workflow.Status, alertas CalculadoraDeAlertas) ([]dto.KanbanCard, error) {
	lista, err := uc.analiseRepo.ListarPorStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	cards := make([]dto.KanbanCard, 0, len(lista))
	for _, a := range lista {
		badges, err := alertas.CalcularAlertas(ctx, a.PedidoID)
		if err != nil {
			return nil, err
		}
		cards = append(cards, dto.KanbanCard{Analise: ParaResponse(a), Alertas: badges})
	}
	return cards, nil
}

// ParaResponse converte a entidade para a visão da API.
func ParaResponse(a *entity.Analise) dto.AnaliseResponse {
	out := dto.AnaliseResponse{
		ID:                    a.ID,
		PedidoID:              a.PedidoID,
		ClienteID:             a.ClienteID,
		GrupoEconomicoID:      a.GrupoEconomicoID,
		Status:                string(a.Status),
		Decisao:               a.Decisao,
		LimiteSugerido:        a.LimiteSugerido,
		LimiteAprovado:        a.LimiteAprovado,
		Justificativa:         a.Justificativa,
		MotivoDesvio:          a.MotivoDesvio,
		ParecerCRM:            a.ParecerCRM,
		RequerAprovacaoGestor: a.RequerAprovacaoGestor,
		AnalistaResponsavel:   a.AnalistaResponsavel,
	}
	if a.DataInicio != nil {
		out.DataInicio = a.DataInicio.Format("2006-01-02T15:04:05Z07:00")
	}
	if a.DataFim != nil {
		out.DataFim = a.DataFim.Format("2006-01-02T15:04:05Z07:00")
	}
	return out
}
