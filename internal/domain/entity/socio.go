package entity

import "time"

// Socio é um sócio da pessoa jurídica (usado na contagem do parecer CRM).
type Socio struct {
	ID        string
	ClienteID string
	Nome      string
	CPF       string
	CreatedAt time.Time
}

// Participacao é uma participação societária do cliente em outra empresa.
type Participacao struct {
	ID        string
	ClienteID string
	CNPJ      string
	Empresa   string
	CreatedAt time.Time
}
