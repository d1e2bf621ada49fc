package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/analise-credito/internal/application/configuracao"
	"github.com/seu-usuario/analise-credito/internal/application/dto"
)

// ConfiguracaoHandler trata leitura e substituição da configuração singleton.
type ConfiguracaoHandler struct {
	uc *configuracao.UseCase
}

// NewConfiguracaoHandler constrói o handler.
func NewConfiguracaoHandler(uc *configuracao.UseCase) *ConfiguracaoHandler {
	return &ConfiguracaoHandler{uc: uc}
}

// Get devolve a configuração vigente.
func (h *ConfiguracaoHandler) Get(c *fiber.Ctx) error {
	cfg, err := h.uc.Carregar(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(cfg)
}

// Put substitui o registro inteiro da configuração.
func (h *ConfiguracaoHandler) Put(c *fiber.Ctx) error {
	var in dto.ConfiguracaoRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	cfg, err := h.uc.Substituir(c.Context(), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(cfg)
}
