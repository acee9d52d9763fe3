package company

import "github.com/healthplan/healthplan/pkg/civil"

// Company is an employer or operator identified by its CNPJ.
type Company struct {
	ID       int64  `db:"id" json:"id"`
	CNPJ     string `db:"cnpj" json:"cnpj"`
	Nome     string `db:"nome" json:"nome"`
	Tipo     string `db:"tipo" json:"tipo"`
	Telefone string `db:"telefone" json:"telefone"`
	Email    string `db:"email" json:"email"`
}

func (Company) TableName() string { return "empresa" }

func (Company) Columns() []string {
	return []string{"cnpj", "nome", "tipo", "telefone", "email"}
}

func (c *Company) Values() []any {
	return []any{c.CNPJ, c.Nome, c.Tipo, c.Telefone, c.Email}
}

// InsurancePlan (convenio) is a plan offered by a Company.
type InsurancePlan struct {
	ID          int64      `db:"id" json:"id"`
	EmpresaID   int64      `db:"empresa_id" json:"empresa_id"`
	Nome        string     `db:"nome" json:"nome"`
	Valor       float64    `db:"valor" json:"valor"`
	TipoServico string     `db:"tipo_servico" json:"tipo_servico"`
	Cobertura   string     `db:"cobertura" json:"cobertura"`
	Contato     string     `db:"contato" json:"contato"`
	Validade    civil.Date `db:"validade" json:"validade"`
}

func (InsurancePlan) TableName() string { return "convenio" }

func (InsurancePlan) Columns() []string {
	return []string{"empresa_id", "nome", "valor", "tipo_servico", "cobertura", "contato", "validade"}
}

func (p *InsurancePlan) Values() []any {
	return []any{p.EmpresaID, p.Nome, p.Valor, p.TipoServico, p.Cobertura, p.Contato, p.Validade}
}
