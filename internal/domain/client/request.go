package client

import "github.com/healthplan/healthplan/pkg/civil"

type MaritalStatusRequest struct {
	Nome *string `json:"nome" validate:"required,max=20"`
}

func (r MaritalStatusRequest) Model() *MaritalStatus {
	return &MaritalStatus{Nome: *r.Nome}
}

type ClientRequest struct {
	RG             *string     `json:"rg" validate:"required,max=20"`
	Nome           *string     `json:"nome" validate:"required,max=100"`
	Sexo           *string     `json:"sexo" validate:"required,len=1"`
	Telefone       *string     `json:"telefone" validate:"required,max=20"`
	Email          *string     `json:"email" validate:"required,max=100"`
	DataNascimento *civil.Date `json:"data_nascimento" validate:"required"`
	CPF            *string     `json:"cpf" validate:"required,max=20"`
	ConvenioID     *int64      `json:"convenio_id" validate:"required,gt=0"`
	EstadoCivilID  *int64      `json:"estado_civil_id" validate:"required,gt=0"`
}

func (r ClientRequest) Model() *Client {
	return &Client{
		RG:             *r.RG,
		Nome:           *r.Nome,
		Sexo:           *r.Sexo,
		Telefone:       *r.Telefone,
		Email:          *r.Email,
		DataNascimento: *r.DataNascimento,
		CPF:            *r.CPF,
		ConvenioID:     *r.ConvenioID,
		EstadoCivilID:  *r.EstadoCivilID,
	}
}

type AddressRequest struct {
	ClienteID *int64  `json:"cliente_id" validate:"required,gt=0"`
	Rua       *string `json:"rua" validate:"required,max=100"`
	Numero    *string `json:"numero" validate:"required,max=10"`
	CEP       *string `json:"cep" validate:"required,max=20"`
	CidadeID  *int64  `json:"cidade_id" validate:"required,gt=0"`
}

func (r AddressRequest) Model() *Address {
	return &Address{
		ClienteID: *r.ClienteID,
		Rua:       *r.Rua,
		Numero:    *r.Numero,
		CEP:       *r.CEP,
		CidadeID:  *r.CidadeID,
	}
}

type ComorbidityRequest struct {
	Nome *string `json:"nome" validate:"required,max=100"`
}

func (r ComorbidityRequest) Model() *Comorbidity {
	return &Comorbidity{Nome: *r.Nome}
}

type HealthHistoryRequest struct {
	ClienteID     *int64      `json:"cliente_id" validate:"required,gt=0"`
	ComorbidadeID *int64      `json:"comorbidade_id" validate:"required,gt=0"`
	DataRegistro  *civil.Date `json:"data_registro" validate:"required"`
	Fuma          *int        `json:"fuma" validate:"required"`
	Observacoes   *string     `json:"observacoes" validate:"required,max=100"`
}

func (r HealthHistoryRequest) Model() *HealthHistory {
	return &HealthHistory{
		ClienteID:     *r.ClienteID,
		ComorbidadeID: *r.ComorbidadeID,
		DataRegistro:  *r.DataRegistro,
		Fuma:          *r.Fuma,
		Observacoes:   *r.Observacoes,
	}
}

type HospitalHistoryRequest struct {
	ClienteID              *int64      `json:"cliente_id" validate:"required,gt=0"`
	DataRegistro           *civil.Date `json:"data_registro" validate:"required"`
	HistoricoMedico        *string     `json:"historico_medico" validate:"required,max=100"`
	ExamesRealizados       *string     `json:"exames_realizados" validate:"required,max=100"`
	MedicamentosPrescritos *string     `json:"medicamentos_prescritos" validate:"required,max=100"`
	Observacoes            *string     `json:"observacoes" validate:"required,max=100"`
}

func (r HospitalHistoryRequest) Model() *HospitalHistory {
	return &HospitalHistory{
		ClienteID:              *r.ClienteID,
		DataRegistro:           *r.DataRegistro,
		HistoricoMedico:        *r.HistoricoMedico,
		ExamesRealizados:       *r.ExamesRealizados,
		MedicamentosPrescritos: *r.MedicamentosPrescritos,
		Observacoes:            *r.Observacoes,
	}
}
