package doctor

// Doctor (medico) is identified for the plan by its CRM registration.
type Doctor struct {
	ID            int64  `db:"id" json:"id"`
	Nome          string `db:"nome" json:"nome"`
	Telefone      string `db:"telefone" json:"telefone"`
	Email         string `db:"email" json:"email"`
	Especialidade string `db:"especialidade" json:"especialidade"`
	CRM           string `db:"crm" json:"crm"`
}

func (Doctor) TableName() string { return "medico" }

func (Doctor) Columns() []string {
	return []string{"nome", "telefone", "email", "especialidade", "crm"}
}

func (d *Doctor) Values() []any {
	return []any{d.Nome, d.Telefone, d.Email, d.Especialidade, d.CRM}
}

// UnitAssignment (medico_unidade) links a doctor to a unit with the hours
// the doctor attends there. A doctor may work in many units.
type UnitAssignment struct {
	ID                 int64  `db:"id" json:"id"`
	MedicoID           int64  `db:"medico_id" json:"medico_id"`
	UnidadeID          int64  `db:"unidade_id" json:"unidade_id"`
	HorarioAtendimento string `db:"horario_atendimento" json:"horario_atendimento"`
}

func (UnitAssignment) TableName() string { return "medico_unidade" }

func (UnitAssignment) Columns() []string {
	return []string{"medico_id", "unidade_id", "horario_atendimento"}
}

func (a *UnitAssignment) Values() []any {
	return []any{a.MedicoID, a.UnidadeID, a.HorarioAtendimento}
}
