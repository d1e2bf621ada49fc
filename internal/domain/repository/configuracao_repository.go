package repository

import (
	"context"

	"github.com/seu-usuario/analise-credito/internal/domain/entity"
)

// ConfiguracaoRepository define o porto de persistência da configuração singleton (linha id=1).
// Carregar devolve domain.ErrConfiguracaoNaoEncontrada quando a linha não existe.
type ConfiguracaoRepository interface {
	Carregar(ctx context.Context) (*entity.Configuracao, error)
	// Salvar substitui o registro inteiro (replace-in-place, nunca patch de campo).
	Salvar(ctx context.Context, cfg *entity.Configuracao) error
}
