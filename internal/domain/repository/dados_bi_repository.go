package repository

import (
	"context"

	"github.com/seu-usuario/analise-credito/internal/domain/entity"
)

// DadosBIRepository define o porto de leitura dos snapshots de BI.
type DadosBIRepository interface {
	// ListarPorGrupo devolve os snapshots do grupo ordenados por coleção, mais recente primeiro.
	ListarPorGrupo(ctx context.Context, grupoID string) ([]*entity.DadosBI, error)
	Criar(ctx context.Context, dados *entity.DadosBI) error
}
