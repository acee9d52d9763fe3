package client

import "github.com/healthplan/healthplan/pkg/civil"

type MaritalStatus struct {
	ID   int64  `db:"id" json:"id"`
	Nome string `db:"nome" json:"nome"`
}

func (MaritalStatus) TableName() string { return "estado_civil" }

func (MaritalStatus) Columns() []string { return []string{"nome"} }

func (m *MaritalStatus) Values() []any { return []any{m.Nome} }

// Client (cliente) is a plan member enrolled in one insurance plan.
type Client struct {
	ID             int64      `db:"id" json:"id"`
	RG             string     `db:"rg" json:"rg"`
	Nome           string     `db:"nome" json:"nome"`
	Sexo           string     `db:"sexo" json:"sexo"`
	Telefone       string     `db:"telefone" json:"telefone"`
	Email          string     `db:"email" json:"email"`
	DataNascimento civil.Date `db:"data_nascimento" json:"data_nascimento"`
	CPF            string     `db:"cpf" json:"cpf"`
	ConvenioID     int64      `db:"convenio_id" json:"convenio_id"`
	EstadoCivilID  int64      `db:"estado_civil_id" json:"estado_civil_id"`
}

func (Client) TableName() string { return "cliente" }

func (Client) Columns() []string {
	return []string{
		"rg", "nome", "sexo", "telefone", "email",
		"data_nascimento", "cpf", "convenio_id", "estado_civil_id",
	}
}

func (c *Client) Values() []any {
	return []any{
		c.RG, c.Nome, c.Sexo, c.Telefone, c.Email,
		c.DataNascimento, c.CPF, c.ConvenioID, c.EstadoCivilID,
	}
}

// Address is the single home address of a client.
type Address struct {
	ID        int64  `db:"id" json:"id"`
	ClienteID int64  `db:"cliente_id" json:"cliente_id"`
	Rua       string `db:"rua" json:"rua"`
	Numero    string `db:"numero" json:"numero"`
	CEP       string `db:"cep" json:"cep"`
	CidadeID  int64  `db:"cidade_id" json:"cidade_id"`
}

func (Address) TableName() string { return "endereco_cliente" }

func (Address) Columns() []string {
	return []string{"cliente_id", "rua", "numero", "cep", "cidade_id"}
}

func (a *Address) Values() []any {
	return []any{a.ClienteID, a.Rua, a.Numero, a.CEP, a.CidadeID}
}

type Comorbidity struct {
	ID   int64  `db:"id" json:"id"`
	Nome string `db:"nome" json:"nome"`
}

func (Comorbidity) TableName() string { return "comorbidade" }

func (Comorbidity) Columns() []string { return []string{"nome"} }

func (c *Comorbidity) Values() []any { return []any{c.Nome} }

// HealthHistory records a client's comorbidity and smoking status. Fuma is
// stored as an integer flag.
type HealthHistory struct {
	ID            int64      `db:"id" json:"id"`
	ClienteID     int64      `db:"cliente_id" json:"cliente_id"`
	ComorbidadeID int64      `db:"comorbidade_id" json:"comorbidade_id"`
	DataRegistro  civil.Date `db:"data_registro" json:"data_registro"`
	Fuma          int        `db:"fuma" json:"fuma"`
	Observacoes   string     `db:"observacoes" json:"observacoes"`
}

func (HealthHistory) TableName() string { return "historico_saude_cliente" }

func (HealthHistory) Columns() []string {
	return []string{"cliente_id", "comorbidade_id", "data_registro", "fuma", "observacoes"}
}

func (h *HealthHistory) Values() []any {
	return []any{h.ClienteID, h.ComorbidadeID, h.DataRegistro, h.Fuma, h.Observacoes}
}

type HospitalHistory struct {
	ID                     int64      `db:"id" json:"id"`
	ClienteID              int64      `db:"cliente_id" json:"cliente_id"`
	DataRegistro           civil.Date `db:"data_registro" json:"data_registro"`
	HistoricoMedico        string     `db:"historico_medico" json:"historico_medico"`
	ExamesRealizados       string     `db:"exames_realizados" json:"exames_realizados"`
	MedicamentosPrescritos string     `db:"medicamentos_prescritos" json:"medicamentos_prescritos"`
	Observacoes            string     `db:"observacoes" json:"observacoes"`
}

func (HospitalHistory) TableName() string { return "historico_hospital_cliente" }

func (HospitalHistory) Columns() []string {
	return []string{
		"cliente_id", "data_registro", "historico_medico",
		"exames_realizados", "medicamentos_prescritos", "observacoes",
	}
}

func (h *HospitalHistory) Values() []any {
	return []any{
		h.ClienteID, h.DataRegistro, h.HistoricoMedico,
		h.ExamesRealizados, h.MedicamentosPrescritos, h.Observacoes,
	}
}
