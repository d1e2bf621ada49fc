package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/analise-credito/internal/application/alerta"
	"github.com/seu-usuario/analise-credito/internal/application/analise"
	"github.com/seu-usuario/analise-credito/internal/application/dto"
	"github.com/seu-usuario/analise-credito/internal/domain/workflow"
)

// AnaliseHandler trata as requisições HTTP do motor de análise.
type AnaliseHandler struct {
	uc      *analise.UseCase
	alertas *alerta.UseCase
}

// NewAnaliseHandler constrói o handler.
func NewAnaliseHandler(uc *analise.UseCase, alertas *alerta.UseCase) *AnaliseHandler {
	return &AnaliseHandler{uc: uc, alertas: alertas}
}

// GetByID devolve a análise por ID.
func (h *AnaliseHandler) GetByID(c *fiber.Ctx) error {
	a, err := h.uc.Buscar(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(analise.ParaResponse(a))
}

// Transicionar muda o status da análise segundo a tabela do workflow.
func (h *AnaliseHandler) Transicionar(c *fiber.Ctx) error {
	var in dto.TransicaoRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	novo := workflow.Status(in.NovoStatus)
	if !workflow.StatusConhecido(novo) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status desconhecido: " + in.NovoStatus})
	}
	a, err := h.uc.Transicionar(c.Context(), c.Params("id"), novo, in.Analista)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(analise.ParaResponse(a))
}

// Concluir registra a decisão do analista e move a análise para o parecer.
func (h *AnaliseHandler) Concluir(c *fiber.Ctx) error {
	var in dto.ConcluirRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	a, err := h.uc.Concluir(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(analise.ParaResponse(a))
}

// ParecerCRM devolve o texto do parecer para colar no CRM ("" em BASE_PRAZO).
func (h *AnaliseHandler) ParecerCRM(c *fiber.Ctx) error {
	texto, err := h.uc.GerarParecerCRM(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(fiber.Map{"parecer_crm": texto})
}

// Transicoes lista os destinos válidos a partir do estado atual.
func (h *AnaliseHandler) Transicoes(c *fiber.Ctx) error {
	permitidos, err := h.uc.StatusPermitidos(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(fiber.Map{"transicoes": permitidos})
}

// Kanban lista as análises de um status com os badges de alerta.
func (h *AnaliseHandler) Kanban(c *fiber.Ctx) error {
	status := workflow.Status(c.Query("status"))
	if !workflow.StatusConhecido(status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status desconhecido: " + c.Query("status")})
	}
	cards, err := h.uc.Kanban(c.Context(), status, h.alertas)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(fiber.Map{"total": len(cards), "cards": cards})
}
