package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/analise-credito/internal/application/clientenovo"
	"github.com/seu-usuario/analise-credito/internal/application/dto"
)

// ClienteNovoHandler trata as etapas do pipeline de cliente novo.
// Cada endpoint autoriza no máximo uma transição de estado.
type ClienteNovoHandler struct {
	uc *clientenovo.UseCase
}

// NewClienteNovoHandler constrói o handler.
func NewClienteNovoHandler(uc *clientenovo.UseCase) *ClienteNovoHandler {
	return &ClienteNovoHandler{uc: uc}
}

// Iniciar roda os gates automáticos a partir de PENDENTE.
func (h *ClienteNovoHandler) Iniciar(c *fiber.Ctx) error {
	var in dto.EtapaRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.IniciarPipeline(c.Context(), c.Params("id"), in.Analista)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Consultas registra os dados cadastrais e reavalia os gates.
func (h *ClienteNovoHandler) Consultas(c *fiber.Ctx) error {
	var in dto.ConsultasRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.RegistrarConsultas(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Protestos confirma a consulta de protestos e aplica o gate de valor.
func (h *ClienteNovoHandler) Protestos(c *fiber.Ctx) error {
	var in dto.EtapaRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.ConfirmarProtestos(c.Context(), c.Params("id"), in.Analista)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Loja registra a data de abertura da loja física e aplica o gate de idade.
func (h *ClienteNovoHandler) Loja(c *fiber.Ctx) error {
	var in dto.ConfirmarLojaRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	dataAbertura, err := time.Parse("2006-01-02", in.DataAberturaLoja)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data_abertura_loja inválida"})
	}
	out, err := h.uc.ConfirmarLoja(c.Context(), c.Params("id"), dataAbertura, in.Analista)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// ScoreRestricoes aplica o último gate (restrições acumuladas) e libera a análise manual.
func (h *ClienteNovoHandler) ScoreRestricoes(c *fiber.Ctx) error {
	var in dto.EtapaRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.ConfirmarScoreRestricoes(c.Context(), c.Params("id"), in.Analista)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}
