package company

import "github.com/healthplan/healthplan/pkg/civil"

type CompanyRequest struct {
	CNPJ     *string `json:"cnpj" validate:"required,max=20"`
	Nome     *string `json:"nome" validate:"required,max=100"`
	Tipo     *string `json:"tipo" validate:"required,max=100"`
	Telefone *string `json:"telefone" validate:"required,max=20"`
	Email    *string `json:"email" validate:"required,max=100"`
}

func (r CompanyRequest) Model() *Company {
	return &Company{
		CNPJ:     *r.CNPJ,
		Nome:     *r.Nome,
		Tipo:     *r.Tipo,
		Telefone: *r.Telefone,
		Email:    *r.Email,
	}
}

type InsurancePlanRequest struct {
	EmpresaID   *int64      `json:"empresa_id" validate:"required,gt=0"`
	Nome        *string     `json:"nome" validate:"required,max=100"`
	Valor       *float64    `json:"valor" validate:"required"`
	TipoServico *string     `json:"tipo_servico" validate:"required,max=100"`
	Cobertura   *string     `json:"cobertura" validate:"required,max=100"`
	Contato     *string     `json:"contato" validate:"required,max=100"`
	Validade    *civil.Date `json:"validade" validate:"required"`
}

func (r InsurancePlanRequest) Model() *InsurancePlan {
	return &InsurancePlan{
		EmpresaID:   *r.EmpresaID,
		Nome:        *r.Nome,
		Valor:       *r.Valor,
		TipoServico: *r.TipoServico,
		Cobertura:   *r.Cobertura,
		Contato:     *r.Contato,
		Validade:    *r.Validade,
	}
}
