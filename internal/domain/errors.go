package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	// ErrNaoEncontrado indica referência (cliente, grupo, pedido, análise) que não resolve.
	ErrNaoEncontrado = errors.New("recurso não encontrado")

	// ErrConfiguracaoNaoEncontrada é fatal para a operação: nenhuma regra avalia sem a configuração.
	ErrConfiguracaoNaoEncontrada = errors.New("configuração não encontrada")

	// ErrTransicaoInvalida é uma rejeição esperada, não um bug. A mensagem embrulhada
	// carrega a tripla (status atual, novo status, workflow).
	ErrTransicaoInvalida = errors.New("transição de workflow inválida")

	// ErrValidacao indica entrada do analista que precisa ser corrigida (nenhuma mutação parcial ocorre).
	ErrValidacao = errors.New("entrada inválida")

	ErrDuplicado = errors.New("recurso duplicado")
)
