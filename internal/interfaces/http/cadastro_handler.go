package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/analise-credito/internal/application/alerta"
	"github.com/seu-usuario/analise-credito/internal/application/analise"
	"github.com/seu-usuario/analise-credito/internal/application/cadastro"
	"github.com/seu-usuario/analise-credito/internal/application/dto"
	"github.com/seu-usuario/analise-credito/internal/application/scoring"
)

// CadastroHandler trata cadastro de clientes, pedidos e restrições.
type CadastroHandler struct {
	uc      *cadastro.UseCase
	scoring *scoring.UseCase
	alertas *alerta.UseCase
}

// NewCadastroHandler constrói o handler.
func NewCadastroHandler(uc *cadastro.UseCase, scoring *scoring.UseCase, alertas *alerta.UseCase) *CadastroHandler {
	return &CadastroHandler{uc: uc, scoring: scoring, alertas: alertas}
}

// CriarCliente cadastra um cliente (grupo singleton criado quando não informado).
func (h *CadastroHandler) CriarCliente(c *fiber.Ctx) error {
	var in dto.CriarClienteRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	cliente, err := h.uc.CriarCliente(c.Context(), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// CriarPedido abre um pedido e sua análise PENDENTE.
func (h *CadastroHandler) CriarPedido(c *fiber.Ctx) error {
	var in dto.CriarPedidoRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	pedido, a, err := h.uc.CriarPedido(c.Context(), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"pedido":  pedido,
		"analise": analise.ParaResponse(a),
	})
}

// Alertas devolve os badges calculados do pedido.
func (h *CadastroHandler) Alertas(c *fiber.Ctx) error {
	badges, err := h.alertas.CalcularAlertas(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(fiber.Map{"alertas": badges})
}

// LimiteSugerido devolve o limite calculado pelo motor de scoring para o grupo.
func (h *CadastroHandler) LimiteSugerido(c *fiber.Ctx) error {
	limite, err := h.scoring.CalcularLimiteSugerido(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(fiber.Map{"limite_sugerido": limite})
}

// CriarRestricao cadastra um apontamento restritivo do cliente.
func (h *CadastroHandler) CriarRestricao(c *fiber.Ctx) error {
	var in dto.CriarRestricaoRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	restricao, err := h.uc.CriarRestricao(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(restricao)
}

// ExcluirRestricao remove um apontamento restritivo.
func (h *CadastroHandler) ExcluirRestricao(c *fiber.Ctx) error {
	if err := h.uc.ExcluirRestricao(c.Context(), c.Params("id")); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
