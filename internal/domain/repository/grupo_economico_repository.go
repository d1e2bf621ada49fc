package repository

import (
	"context"

	"github.com/seu-usuario/analise-credito/internal/domain/entity"
)

// GrupoEconomicoRepository define o porto de persistência de GrupoEconomico.
type GrupoEconomicoRepository interface {
	Criar(ctx context.Context, grupo *entity.GrupoEconomico) error
	BuscarPorID(ctx context.Context, id string) (*entity.GrupoEconomico, error)
	BuscarPorCodigo(ctx context.Context, codigo string) (*entity.GrupoEconomico, error)
	Atualizar(ctx context.Context, grupo *entity.GrupoEconomico) error
}
