package doctor

type DoctorRequest struct {
	Nome          *string `json:"nome" validate:"required,max=100"`
	Telefone      *string `json:"telefone" validate:"required,max=20"`
	Email         *string `json:"email" validate:"required,max=100"`
	Especialidade *string `json:"especialidade" validate:"required,max=100"`
	CRM           *string `json:"crm" validate:"required,max=20"`
}

func (r DoctorRequest) Model() *Doctor {
	return &Doctor{
		Nome:          *r.Nome,
		Telefone:      *r.Telefone,
		Email:         *r.Email,
		Especialidade: *r.Especialidade,
		CRM:           *r.CRM,
	}
}

type UnitAssignmentRequest struct {
	MedicoID           *int64  `json:"medico_id" validate:"required,gt=0"`
	UnidadeID          *int64  `json:"unidade_id" validate:"required,gt=0"`
	HorarioAtendimento *string `json:"horario_atendimento" validate:"required,max=100"`
}

func (r UnitAssignmentRequest) Model() *UnitAssignment {
	return &UnitAssignment{
		MedicoID:           *r.MedicoID,
		UnidadeID:          *r.UnidadeID,
		HorarioAtendimento: *r.HorarioAtendimento,
	}
}
