package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/analise-credito/internal/application/configuracao"
	"github.com/seu-usuario/analise-credito/internal/domain"
	"github.com/seu-usuario/analise-credito/internal/domain/entity"
	apphttp "github.com/seu-usuario/analise-credito/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

type fakeConfigRepo struct {
	cfg *entity.Configuracao
}

func (f *fakeConfigRepo) Carregar(_ context.Context) (*entity.Configuracao, error) {
	if f.cfg == nil {
		return nil, domain.ErrConfiguracaoNaoEncontrada
	}
	return f.cfg, nil
}

func (f *fakeConfigRepo) Salvar(_ context.Context, cfg *entity.Configuracao) error {
	f.cfg = cfg
	return nil
}

// buildTestApp monta uma aplicação Fiber mínima só com as rotas de configuração.
func buildTestApp(repo *fakeConfigRepo) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewConfiguracaoHandler(configuracao.NewUseCase(repo))
	app.Get("/api/configuracao", handler.Get)
	app.Put("/api/configuracao", handler.Put)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, url string, body []byte) *http.Response {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/configuracao
// ──────────────────────────────────────────────────────────────────────────────

func TestGetConfiguracao(t *testing.T) {
	app := buildTestApp(&fakeConfigRepo{cfg: entity.ConfiguracaoPadrao()})
	resp := doRequest(t, app, http.MethodGet, "/api/configuracao", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "35000", body["LimiteSimei"], "o decimal deve serializar como string")
}

// Sem linha de configuração o erro sobe como 500 CONFIG_AUSENTE.
func TestGetConfiguracao_Ausente(t *testing.T) {
	app := buildTestApp(&fakeConfigRepo{})
	resp := doRequest(t, app, http.MethodGet, "/api/configuracao", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "CONFIG_AUSENTE", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// PUT /api/configuracao
// ──────────────────────────────────────────────────────────────────────────────

func TestPutConfiguracao_Substitui(t *testing.T) {
	repo := &fakeConfigRepo{cfg: entity.ConfiguracaoPadrao()}
	app := buildTestApp(repo)

	payload := []byte(`{
		"limite_simei": "40000",
		"max_simeis_por_grupo": 3,
		"score_baixo_threshold": 250,
		"score_alto_multiplicador": "1.5",
		"score_medio_multiplicador": "1.2",
		"score_normal_multiplicador": "1.0",
		"score_baixo_multiplicador": "0.7",
		"valor_aprovacao_gestor": "120000",
		"total_grupo_aprovacao_gestor": "250000",
		"restricoes_aprovacao_gestor": 4,
		"protesto_threshold_antecipado": "1000",
		"restricao_threshold_antecipado": "1000",
		"meses_loja_threshold": 10,
		"meses_fundacao_threshold": 12
	}`)
	resp := doRequest(t, app, http.MethodPut, "/api/configuracao", payload)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, repo.cfg)
	assert.EqualValues(t, 1, repo.cfg.ID, "a substituição preserva a linha singleton")
	assert.Equal(t, "40000", repo.cfg.LimiteSimei.String())
	assert.Equal(t, 3, repo.cfg.MaxSimeisPorGrupo)
}

func TestPutConfiguracao_CorpoInvalido(t *testing.T) {
	app := buildTestApp(&fakeConfigRepo{cfg: entity.ConfiguracaoPadrao()})
	resp := doRequest(t, app, http.MethodPut, "/api/configuracao", []byte(`{nope`))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INVALID_BODY", body["code"])
}

// Campos obrigatórios ausentes reprovam na validação do DTO.
func TestPutConfiguracao_CamposFaltando(t *testing.T) {
	app := buildTestApp(&fakeConfigRepo{cfg: entity.ConfiguracaoPadrao()})
	resp := doRequest(t, app, http.MethodPut, "/api/configuracao", []byte(`{"max_simeis_por_grupo": 2}`))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body["code"])
}
