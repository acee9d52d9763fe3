package facility

type ServiceAreaRequest struct {
	Nome *string `json:"nome" validate:"required,max=100"`
}

func (r ServiceAreaRequest) Model() *ServiceArea {
	return &ServiceArea{Nome: *r.Nome}
}

type UnitRequest struct {
	EmpresaID     *int64  `json:"empresa_id" validate:"required,gt=0"`
	AreaAtuacaoID *int64  `json:"area_atuacao_id" validate:"required,gt=0"`
	Nome          *string `json:"nome" validate:"required,max=100"`
	Telefone      *string `json:"telefone" validate:"required,max=20"`
	Email         *string `json:"email" validate:"required,max=100"`
	Tipo          *string `json:"tipo" validate:"required,max=100"`
	Capacidade    *int    `json:"capacidade" validate:"required"`
}

func (r UnitRequest) Model() *Unit {
	return &Unit{
		EmpresaID:     *r.EmpresaID,
		AreaAtuacaoID: *r.AreaAtuacaoID,
		Nome:          *r.Nome,
		Telefone:      *r.Telefone,
		Email:         *r.Email,
		Tipo:          *r.Tipo,
		Capacidade:    *r.Capacidade,
	}
}

type UnitAddressRequest struct {
	UnidadeID *int64  `json:"unidade_id" validate:"required,gt=0"`
	Rua       *string `json:"rua" validate:"required,max=100"`
	Numero    *string `json:"numero" validate:"required,max=10"`
	CEP       *string `json:"cep" validate:"required,max=20"`
	CidadeID  *int64  `json:"cidade_id" validate:"required,gt=0"`
}

func (r UnitAddressRequest) Model() *UnitAddress {
	return &UnitAddress{
		UnidadeID: *r.UnidadeID,
		Rua:       *r.Rua,
		Numero:    *r.Numero,
		CEP:       *r.CEP,
		CidadeID:  *r.CidadeID,
	}
}
