package clientenovo

import (
	"context"
	"time"

	"github.com/seu-usuario/analise-credito/internal/application/dto"
	"github.com/seu-usuario/analise-credito/internal/domain"
	"github.com/seu-usuario/analise-credito/internal/domain/entity"
	"github.com/seu-usuario/analise-credito/internal/domain/repository"
	"github.com/seu-usuario/analise-credito/internal/domain/workflow"
)

// Transicionador é a fatia do motor de workflow que o pipeline usa: cada etapa
// autoriza no máximo UMA transição de estado.
type Transicionador interface {
	Transicionar(ctx context.Context, analiseID string, novoStatus workflow.Status, analista string) (*entity.Analise, error)
}

// UseCase orquestra as etapas do pipeline de cliente novo.
type UseCase struct {
	configRepo    repository.ConfiguracaoRepository
	analiseRepo   repository.AnaliseRepository
	clienteRepo   repository.ClienteRepository
	restricaoRepo repository.RestricaoRepository
	motor         Transicionador
	agora         func() time.Time
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	configRepo repository.ConfiguracaoRepository,
	analiseRepo repository.AnaliseRepository,
	clienteRepo repository.ClienteRepository,
	restricaoRepo repository.RestricaoRepository,
	motor Transicionador,
) *UseCase {
	return &UseCase{
		configRepo:    configRepo,
		analiseRepo:   analiseRepo,
		clienteRepo:   clienteRepo,
		restricaoRepo: restricaoRepo,
		motor:         motor,
		agora:         time.Now,
	}
}

// IniciarPipeline roda os gates automáticos em cascata a partir de PENDENTE:
// dados de consulta → cadastral → fundação. Para no primeiro desvio.
func (uc *UseCase) IniciarPipeline(ctx context.Context, analiseID, analista string) (*dto.EtapaResponse, error) {
	analise, cliente, config, err := uc.carregar(ctx, analiseID)
	if err != nil {
		return nil, err
	}

	// Gate 1: dados de consulta preenchidos?
	if !TemDadosConsulta(cliente) {
		return uc.transicionar(ctx, analise, workflow.StatusFazerConsultas, analista, "")
	}
	return uc.validarCadastralEFundacao(ctx, analise, cliente, config, analista)
}

// RegistrarConsultas persiste os dados cadastrais informados pelo analista e roda
// os gates cadastral + fundação em cascata.
func (uc *UseCase) RegistrarConsultas(ctx context.Context, analiseID string, in dto.ConsultasRequest) (*dto.EtapaResponse, error) {
	analise, cliente, config, err := uc.carregar(ctx, analiseID)
	if err != nil {
		return nil, err
	}

	cliente.StatusReceita = in.StatusReceita
	cliente.StatusSimples = in.StatusSimples
	cliente.Sintegra = in.Sintegra
	cliente.Cnae = in.Cnae
	cliente.UpdatedAt = uc.agora()
	if err := uc.clienteRepo.Atualizar(ctx, cliente); err != nil {
		return nil, err
	}

	return uc.validarCadastralEFundacao(ctx, analise, cliente, config, in.Analista)
}

// ConfirmarProtestos roda o gate de severidade de protestos.
func (uc *UseCase) ConfirmarProtestos(ctx context.Context, analiseID, analista string) (*dto.EtapaResponse, error) {
	analise, cliente, config, err := uc.carregar(ctx, analiseID)
	if err != nil {
		return nil, err
	}

	protestos, err := uc.restricaoRepo.ListarPorClienteETipo(ctx, cliente.ID, entity.RestricaoProtesto)
	if err != nil {
		return nil, err
	}
	if ProtestoAcima(protestos, config) {
		return uc.transicionar(ctx, analise, workflow.StatusEncaminhadoAntecipado, analista, motivoProtestoAcima)
	}
	return uc.transicionar(ctx, analise, workflow.StatusVerificacaoLojaFisica, analista, "")
}

// ConfirmarLoja persiste a data de abertura da loja e roda o gate de loja recente.
func (uc *UseCase) ConfirmarLoja(ctx context.Context, analiseID string, dataAbertura time.Time, analista string) (*dto.EtapaResponse, error) {
	analise, cliente, config, err := uc.carregar(ctx, analiseID)
	if err != nil {
		return nil, err
	}

	cliente.DataAberturaLoja = &dataAbertura
	cliente.UpdatedAt = uc.agora()
	if err := uc.clienteRepo.Atualizar(ctx, cliente); err != nil {
		return nil, err
	}

	if LojaRecente(cliente, config, uc.agora()) {
		return uc.transicionar(ctx, analise, workflow.StatusEncaminhadoAntecipado, analista, motivoLojaRecente)
	}
	return uc.transicionar(ctx, analise, workflow.StatusConsultaScoreRestricoes, analista, "")
}

// ConfirmarScoreRestricoes roda o gate de total de restrições (Pefin + Protesto)
// e, passando, libera a análise manual de cliente novo.
func (uc *UseCase) ConfirmarScoreRestricoes(ctx context.Context, analiseID, analista string) (*dto.EtapaResponse, error) {
	analise, cliente, config, err := uc.carregar(ctx, analiseID)
	if err != nil {
		return nil, err
	}

	total, err := uc.restricaoRepo.SomarValoresPorTipos(ctx, cliente.ID, entity.RestricaoPefin, entity.RestricaoProtesto)
	if err != nil {
		return nil, err
	}
	if RestricaoAcima(total, config) {
		return uc.transicionar(ctx, analise, workflow.StatusEncaminhadoAntecipado, analista, motivoRestricaoAcima)
	}
	return uc.transicionar(ctx, analise, workflow.StatusEmAnaliseClienteNovo, analista, "")
}

func (uc *UseCase) validarCadastralEFundacao(ctx context.Context, analise *entity.Analise, cliente *entity.Cliente, config *entity.Configuracao, analista string) (*dto.EtapaResponse, error) {
	if motivo := ValidarCadastral(cliente, config); motivo != "" {
		return uc.transicionar(ctx, analise, workflow.StatusSolicitarCancelamento, analista, motivo)
	}
	if FundacaoRecente(cliente, config, uc.agora()) {
		return uc.transicionar(ctx, analise, workflow.StatusEncaminhadoAntecipado, analista, motivoFundacaoRecente)
	}
	return uc.transicionar(ctx, analise, workflow.StatusConsultaProtestos, analista, "")
}

// transicionar registra o motivo de desvio (quando houver) e delega a única
// mudança de estado da etapa ao motor de workflow.
func (uc *UseCase) transicionar(ctx context.Context, analise *entity.Analise, novo workflow.Status, analista, motivo string) (*dto.EtapaResponse, error) {
	if motivo != "" {
		analise.MotivoDesvio = motivo
		analise.UpdatedAt = uc.agora()
		if err := uc.analiseRepo.Atualizar(ctx, analise); err != nil {
			return nil, err
		}
	}
	atualizada, err := uc.motor.Transicionar(ctx, analise.ID, novo, analista)
	if err != nil {
		return nil, err
	}
	return &dto.EtapaResponse{Status: string(atualizada.Status), MotivoDesvio: atualizada.MotivoDesvio}, nil
}

func (uc *UseCase) carregar(ctx context.Context, analiseID string) (*entity.Analise, *entity.Cliente, *entity.Configuracao, error) {
	analise, err := uc.analiseRepo.BuscarPorID(ctx, analiseID)
	if err != nil {
		return nil, nil, nil, err
	}
	if analise == nil {
		return nil, nil, nil, domain.ErrNaoEncontrado
	}
	cliente, err := uc.clienteRepo.BuscarPorID(ctx, analise.ClienteID)
	if err != nil {
		return nil, nil, nil, err
	}
	if cliente == nil {
		return nil, nil, nil, domain.ErrNaoEncontrado
	}
	config, err := uc.configRepo.Carregar(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return analise, cliente, config, nil
}
