package analise_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/analise-credito/internal/application/analise"
	"github.com/seu-usuario/analise-credito/internal/domain"
	"github.com/seu-usuario/analise-credito/internal/domain/entity"
	"github.com/seu-usuario/analise-credito/internal/domain/repository"
	"github.com/seu-usuario/analise-credito/internal/domain/workflow"
)

func data(ano int, mes time.Month, dia int) time.Time {
	return time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
}

// ──────────────────────────────────────────────────────────────────────────────
// Banco em memória compartilhado pelos fakes (seguro para testes concorrentes)
// ──────────────────────────────────────────────────────────────────────────────

type banco struct {
	mu        sync.Mutex
	cfg       *entity.Configuracao
	analises  map[string]*entity.Analise
	pedidos   map[string]*entity.Pedido
	clientes  map[string]*entity.Cliente
	grupos    map[string]*entity.GrupoEconomico
	restrs    int
	socios    int
	partics   int
}

func novoBanco() *banco {
	return &banco{
		cfg:      entity.ConfiguracaoPadrao(),
		analises: map[string]*entity.Analise{},
		pedidos:  map[string]*entity.Pedido{},
		clientes: map[string]*entity.Cliente{},
		grupos:   map[string]*entity.GrupoEconomico{},
	}
}

type bConfigRepo struct {
	repository.ConfiguracaoRepository
	db *banco
}

func (r *bConfigRepo) Carregar(_ context.Context) (*entity.Configuracao, error) {
	return r.db.cfg, nil
}

type bAnaliseRepo struct {
	repository.AnaliseRepository
	db *banco
}

func (r *bAnaliseRepo) BuscarPorID(_ context.Context, id string) (*entity.Analise, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	a, ok := r.db.analises[id]
	if !ok {
		return nil, nil
	}
	copia := *a
	return &copia, nil
}

func (r *bAnaliseRepo) ListarPorStatus(_ context.Context, status workflow.Status) ([]*entity.Analise, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.Analise
	for _, a := range r.db.analises {
		if a.Status == status {
			copia := *a
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *bAnaliseRepo) Atualizar(_ context.Context, a *entity.Analise) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	copia := *a
	r.db.analises[a.ID] = &copia
	return nil
}

type bPedidoRepo struct {
	repository.PedidoRepository
	db *banco
}

func (r *bPedidoRepo) BuscarPorID(_ context.Context, id string) (*entity.Pedido, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.pedidos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

// SomarValoresAbertosPorGrupo soma pedidos cuja análise ainda não tem data fim.
func (r *bPedidoRepo) SomarValoresAbertosPorGrupo(_ context.Context, grupoID string) (decimal.Decimal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	total := decimal.Zero
	for _, a := range r.db.analises {
		if a.GrupoEconomicoID == grupoID && a.DataFim == nil {
			if p, ok := r.db.pedidos[a.PedidoID]; ok {
				total = total.Add(p.Valor)
			}
		}
	}
	return total, nil
}

type bClienteRepo struct {
	repository.ClienteRepository
	db *banco
}

func (r *bClienteRepo) BuscarPorID(_ context.Context, id string) (*entity.Cliente, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c, ok := r.db.clientes[id]
	if !ok {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (r *bClienteRepo) Atualizar(_ context.Context, c *entity.Cliente) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	copia := *c
	r.db.clientes[c.ID] = &copia
	return nil
}

func (r *bClienteRepo) ContarSocios(_ context.Context, _ string) (int, error) {
	return r.db.socios, nil
}

func (r *bClienteRepo) ContarParticipacoes(_ context.Context, _ string) (int, error) {
	return r.db.partics, nil
}

type bGrupoRepo struct {
	repository.GrupoEconomicoRepository
	db *banco
}

func (r *bGrupoRepo) BuscarPorID(_ context.Context, id string) (*entity.GrupoEconomico, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	g, ok := r.db.grupos[id]
	if !ok {
		return nil, nil
	}
	copia := *g
	return &copia, nil
}

func (r *bGrupoRepo) Atualizar(_ context.Context, g *entity.GrupoEconomico) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	copia := *g
	r.db.grupos[g.ID] = &copia
	return nil
}

type bRestricaoRepo struct {
	repository.RestricaoRepository
	db *banco
}

func (r *bRestricaoRepo) ContarPorCliente(_ context.Context, _ string) (int, error) {
	return r.db.restrs, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Montagem do cenário
// ──────────────────────────────────────────────────────────────────────────────

func novoMotor(db *banco) *analise.UseCase {
	return analise.NewUseCase(
		&bConfigRepo{db: db},
		&bAnaliseRepo{db: db},
		&bPedidoRepo{db: db},
		&bClienteRepo{db: db},
		&bGrupoRepo{db: db},
		&bRestricaoRepo{db: db},
	)
}

// semeia um grupo, cliente, pedido e análise com os valores dados.
func semear(db *banco, analiseID, pedidoID string, tipo workflow.Tipo, status workflow.Status, valor string) {
	db.grupos["g1"] = &entity.GrupoEconomico{
		ID: "g1", Codigo: "11222333000144",
		LimiteAprovado:   decimal.Zero,
		LimiteDisponivel: decimal.Zero,
	}
	db.clientes["c1"] = &entity.Cliente{
		ID: "c1", GrupoEconomicoID: "g1",
		RazaoSocial: "LOJA TESTE LTDA",
		TipoCliente: entity.TipoClienteNovo,
	}
	bloqueio := "00"
	if tipo == workflow.TipoClienteNovo {
		bloqueio = "80"
	}
	db.pedidos[pedidoID] = &entity.Pedido{
		ID: pedidoID, ClienteID: "c1",
		Valor:    decimal.RequireFromString(valor),
		Bloqueio: bloqueio,
		Workflow: tipo,
	}
	db.analises[analiseID] = &entity.Analise{
		ID: analiseID, PedidoID: pedidoID, ClienteID: "c1", GrupoEconomicoID: "g1",
		Status:         status,
		LimiteAprovado: decimal.Zero,
		LimiteSugerido: decimal.Zero,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Transições
// ──────────────────────────────────────────────────────────────────────────────

func TestTransicionar_Valida(t *testing.T) {
	db := novoBanco()
	semear(db, "a1", "p1", workflow.TipoBasePrazo, workflow.StatusPendente, "1000")
	uc := novoMotor(db)

	out, err := uc.Transicionar(context.Background(), "a1", workflow.StatusEmAnaliseFinanceiro, "maria")
	require.NoError(t, err)

	assert.Equal(t, workflow.StatusEmAnaliseFinanceiro, out.Status)
	assert.Equal(t, "maria", out.AnalistaResponsavel)
	assert.NotNil(t, out.DataInicio, "a entrada em análise deve registrar o início")
	assert.Equal(t, workflow.StatusEmAnaliseFinanceiro, db.analises["a1"].Status, "o novo status deve ser persistido")
}

// Transição rejeitada: erro com a tripla e nenhum campo mutado.
func TestTransicionar_Invalida(t *testing.T) {
	db := novoBanco()
	semear(db, "a1", "p1", workflow.TipoBasePrazo, workflow.StatusPendente, "1000")
	uc := novoMotor(db)

	_, err := uc.Transicionar(context.Background(), "a1", workflow.StatusFinalizado, "maria")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransicaoInvalida)
	assert.Contains(t, err.Error(), "de PENDENTE para FINALIZADO no workflow BASE_PRAZO")

	guardada := db.analises["a1"]
	assert.Equal(t, workflow.StatusPendente, guardada.Status, "rejeição não pode mutar o status")
	assert.Empty(t, guardada.AnalistaResponsavel)
	assert.Nil(t, guardada.DataFim)
}

func TestTransicionar_AnaliseInexistente(t *testing.T) {
	uc := novoMotor(novoBanco())
	_, err := uc.Transicionar(context.Background(), "nao-existe", workflow.StatusEmAnaliseFinanceiro, "maria")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

// DataInicio só é preenchida na primeira entrada em análise.
func TestTransicionar_DataInicioUnica(t *testing.T) {
	db := novoBanco()
	semear(db, "a1", "p1", workflow.TipoBasePrazo, workflow.StatusPendente, "1000")
	inicio := data(2026, time.January, 2)
	db.analises["a1"].DataInicio = &inicio
	uc := novoMotor(db)

	out, err := uc.Transicionar(context.Background(), "a1", workflow.StatusEmAnaliseFinanceiro, "maria")
	require.NoError(t, err)
	assert.Equal(t, inicio, *out.DataInicio, "DataInicio já preenchida não pode ser sobrescrita")
}

// ──────────────────────────────────────────────────────────────────────────────
// Alçada (aprovação de gestor)
// ──────────────────────────────────────────────────────────────────────────────

func TestTransicionar_AlcadaPorValor(t *testing.T) {
	db := novoBanco()
	semear(db, "a1", "p1", workflow.TipoBasePrazo, workflow.StatusEmAnaliseFinanceiro, "150000")
	uc := novoMotor(db)

	out, err := uc.Transicionar(context.Background(), "a1", workflow.StatusParecerAprovado, "maria")
	require.NoError(t, err)
	assert.True(t, out.RequerAprovacaoGestor, "pedido acima de 100000 exige gestor")
}

func TestTransicionar_AlcadaPorRestricoes(t *testing.T) {
	db := novoBanco()
	semear(db, "a1", "p1", workflow.TipoBasePrazo, workflow.StatusEmAnaliseFinanceiro, "1000")
	db.restrs = 5 // >= threshold 5
	uc := novoMotor(db)

	out, err := uc.Transicionar(context.Background(), "a1", workflow.StatusParecerAprovado, "maria")
	require.NoError(t, err)
	assert.True(t, out.RequerAprovacaoGestor)
}

// A flag é monotônica: condições que deixaram de valer não a desligam.
func TestTransicionar_AlcadaMonotonica(t *testing.T) {
	db := novoBanco()
	semear(db, "a1", "p1", workflow.TipoBasePrazo, workflow.StatusEmAnaliseFinanceiro, "1000")
	db.analises["a1"].RequerAprovacaoGestor = true
	uc := novoMotor(db)

	out, err := uc.Transicionar(context.Background(), "a1", workflow.StatusParecerAprovado, "maria")
	require.NoError(t, err)
	assert.True(t, out.RequerAprovacaoGestor, "a flag nunca volta a false")
}

func TestTransicionar_SemAlcada(t *testing.T) {
	db := novoBanco()
	semear(db, "a1", "p1", workflow.TipoBasePrazo, workflow.StatusEmAnaliseFinanceiro, "1000")
	uc := novoMotor(db)

	out, err := uc.Transicionar(context.Background(), "a1", workflow.StatusParecerAprovado, "maria")
	require.NoError(t, err)
	assert.False(t, out.RequerAprovacaoGestor)
}

// ──────────────────────────────────────────────────────────────────────────────
// Efeitos terminais
// ──────────────────────────────────────────────────────────────────────────────

// ENCAMINHADO_ANTECIPADO encerra a análise e reclassifica o cliente.
func TestTransicionar_EncaminhadoAntecipado(t *testing.T) {
	db := novoBanco()
	semear(db, "a1", "p1", workflow.TipoClienteNovo, workflow.StatusPendente, "1000")
	uc := novoMotor(db)

	out, err := uc.Transicionar(context.Background(), "a1", workflow.StatusEncaminhadoAntecipado, "maria")
	require.NoError(t, err)
	assert.NotNil(t, out.DataFim)
	assert.Equal(t, entity.TipoClienteAntecipado, db.clientes["c1"].TipoCliente,
		"o cliente deve virar ANTECIPADO")
}

func TestTransicionar_SolicitarCancelamento(t *testing.T) {
	db := novoBanco()
	semear(db, "a1", "p1", workflow.TipoClienteNovo, workflow.StatusPendente, "1000")
	uc := novoMotor(db)

	out, err := uc.Transicionar(context.Background(), "a1", workflow.StatusSolicitarCancelamento, "maria")
	require.NoError(t, err)
	assert.NotNil(t, out.DataFim)
	assert.Equal(t, entity.TipoClienteNovo, db.clientes["c1"].TipoCliente,
		"cancelamento não reclassifica o cliente")
}

// FINALIZADO com limite aprovado positivo: o teto do grupo é atualizado e o
// disponível recalculado sem contar o pedido recém-finalizado.
func TestTransicionar_FinalizadoAtualizaGrupo(t *testing.T) {
	db := novoBanco()
	semear(db, "a1", "p1", workflow.TipoBasePrazo, workflow.StatusParecerAprovado, "8000")
	db.analises["a1"].LimiteAprovado = decimal.NewFromInt(50000)
	uc := novoMotor(db)

	_, err := uc.Transicionar(context.Background(), "a1", workflow.StatusFinalizado, "maria")
	require.NoError(t, err)

	grupo := db.grupos["g1"]
	assert.True(t, decimal.NewFromInt(50000).Equal(grupo.LimiteAprovado))
	assert.True(t, decimal.NewFromInt(50000).Equal(grupo.LimiteDisponivel),
		"sem outros pedidos abertos o disponível é o teto inteiro, obtido %s", grupo.LimiteDisponivel)
}

// Disponível nunca fica negativo.
func TestTransicionar_FinalizadoDisponivelNaoNegativo(t *testing.T) {
	db := novoBanco()
	semear(db, "a1", "p1", workflow.TipoBasePrazo, workflow.StatusParecerAprovado, "8000")
	db.analises["a1"].LimiteAprovado = decimal.NewFromInt(10000)
	// Outro pedido do grupo ainda em aberto, maior que o teto.
	db.pedidos["p2"] = &entity.Pedido{ID: "p2", ClienteID: "c1", Valor: decimal.NewFromInt(15000), Workflow: workflow.TipoBasePrazo}
	db.analises["a2"] = &entity.Analise{
		ID: "a2", PedidoID: "p2", ClienteID: "c1", GrupoEconomicoID: "g1",
		Status: workflow.StatusEmAnaliseFinanceiro,
		LimiteAprovado: decimal.Zero, LimiteSugerido: decimal.Zero,
	}
	uc := novoMotor(db)

	_, err := uc.Transicionar(context.Background(), "a1", workflow.StatusFinalizado, "maria")
	require.NoError(t, err)

	grupo := db.grupos["g1"]
	assert.True(t, decimal.NewFromInt(10000).Equal(grupo.LimiteAprovado))
	assert.True(t, grupo.LimiteDisponivel.IsZero(),
		"10000 - 15000 em aberto deve truncar em zero, obtido %s", grupo.LimiteDisponivel)
}

// FINALIZADO sem limite aprovado (reprovação) não toca o grupo.
func TestTransicionar_FinalizadoSemLimiteNaoTocaGrupo(t *testing.T) {
	db := novoBanco()
	semear(db, "a1", "p1", workflow.TipoBasePrazo, workflow.StatusParecerReprovado, "8000")
	db.grupos["g1"].LimiteAprovado = decimal.NewFromInt(77000)
	db.grupos["g1"].LimiteDisponivel = decimal.NewFromInt(30000)
	uc := novoMotor(db)

	_, err := uc.Transicionar(context.Background(), "a1", workflow.StatusFinalizado, "maria")
	require.NoError(t, err)

	grupo := db.grupos["g1"]
	assert.True(t, decimal.NewFromInt(77000).Equal(grupo.LimiteAprovado))
	assert.True(t, decimal.NewFromInt(30000).Equal(grupo.LimiteDisponivel))
}

// ──────────────────────────────────────────────────────────────────────────────
// Finalizações concorrentes do mesmo grupo
// ──────────────────────────────────────────────────────────────────────────────

// Duas análises do mesmo grupo finalizadas ao mesmo tempo: o commit do limite é
// serializado e o estado final do grupo fica consistente (disponível coerente com
// o teto gravado, nenhum pedido aberto restante).
func TestTransicionar_FinalizacoesConcorrentes(t *testing.T) {
	db := novoBanco()
	semear(db, "a1", "p1", workflow.TipoBasePrazo, workflow.StatusParecerAprovado, "8000")
	db.analises["a1"].LimiteAprovado = decimal.NewFromInt(40000)
	db.pedidos["p2"] = &entity.Pedido{ID: "p2", ClienteID: "c1", Valor: decimal.NewFromInt(5000), Bloqueio: "00", Workflow: workflow.TipoBasePrazo}
	db.analises["a2"] = &entity.Analise{
		ID: "a2", PedidoID: "p2", ClienteID: "c1", GrupoEconomicoID: "g1",
		Status:         workflow.StatusParecerAprovado,
		LimiteAprovado: decimal.NewFromInt(60000),
		LimiteSugerido: decimal.Zero,
	}
	uc := novoMotor(db)

	var wg sync.WaitGroup
	erros := make(chan error, 2)
	for _, id := range []string{"a1", "a2"} {
		wg.Add(1)
		go func(analiseID string) {
			defer wg.Done()
			_, err := uc.Transicionar(context.Background(), analiseID, workflow.StatusFinalizado, "maria")
			erros <- err
		}(id)
	}
	wg.Wait()
	close(erros)
	for err := range erros {
		require.NoError(t, err)
	}

	db.mu.Lock()
	grupo := db.grupos["g1"]
	a1, a2 := db.analises["a1"], db.analises["a2"]
	db.mu.Unlock()

	assert.True(t, a1.Finalizada())
	assert.True(t, a2.Finalizada())

	// O teto final é o de uma das duas finalizações (a última a comitar).
	ehDe1 := decimal.NewFromInt(40000).Equal(grupo.LimiteAprovado)
	ehDe2 := decimal.NewFromInt(60000).Equal(grupo.LimiteAprovado)
	assert.True(t, ehDe1 || ehDe2, "teto final inesperado: %s", grupo.LimiteAprovado)

	// Consistência: sem pedidos abertos, disponível == teto gravado.
	assert.True(t, grupo.LimiteDisponivel.Equal(grupo.LimiteAprovado),
		"disponível (%s) deve ser coerente com o teto (%s)", grupo.LimiteDisponivel, grupo.LimiteAprovado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Destinos permitidos
// ──────────────────────────────────────────────────────────────────────────────

// alertasFixos devolve sempre os mesmos badges, só para o card.
type alertasFixos struct{ badges []string }

func (a *alertasFixos) CalcularAlertas(_ context.Context, _ string) ([]string, error) {
	return a.badges, nil
}

func TestKanban(t *testing.T) {
	db := novoBanco()
	semear(db, "a1", "p1", workflow.TipoBasePrazo, workflow.StatusEmAnaliseFinanceiro, "1000")
	uc := novoMotor(db)

	cards, err := uc.Kanban(context.Background(), workflow.StatusEmAnaliseFinanceiro, &alertasFixos{badges: []string{"SCORE BAIXO"}})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "a1", cards[0].Analise.ID)
	assert.Equal(t, []string{"SCORE BAIXO"}, cards[0].Alertas)

	vazio, err := uc.Kanban(context.Background(), workflow.StatusFinalizado, &alertasFixos{})
	require.NoError(t, err)
	assert.Empty(t, vazio)
}

func TestStatusPermitidos_DoMotor(t *testing.T) {
	db := novoBanco()
	semear(db, "a1", "p1", workflow.TipoClienteNovo, workflow.StatusPendente, "1000")
	uc := novoMotor(db)

	destinos, err := uc.StatusPermitidos(context.Background(), "a1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []workflow.Status{
		workflow.StatusFazerConsultas,
		workflow.StatusConsultaProtestos,
		workflow.StatusSolicitarCancelamento,
		workflow.StatusEncaminhadoAntecipado,
	}, destinos)
}
