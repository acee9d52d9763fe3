package facility

// ServiceArea (area de atuacao) classifies what a Unit does.
type ServiceArea struct {
	ID   int64  `db:"id" json:"id"`
	Nome string `db:"nome" json:"nome"`
}

func (ServiceArea) TableName() string { return "area_atuacao" }

func (ServiceArea) Columns() []string { return []string{"nome"} }

func (a *ServiceArea) Values() []any { return []any{a.Nome} }

// Unit is a care facility run by a company in one service area.
type Unit struct {
	ID            int64  `db:"id" json:"id"`
	EmpresaID     int64  `db:"empresa_id" json:"empresa_id"`
	AreaAtuacaoID int64  `db:"area_atuacao_id" json:"area_atuacao_id"`
	Nome          string `db:"nome" json:"nome"`
	Telefone      string `db:"telefone" json:"telefone"`
	Email         string `db:"email" json:"email"`
	Tipo          string `db:"tipo" json:"tipo"`
	Capacidade    int    `db:"capacidade" json:"capacidade"`
}

func (Unit) TableName() string { return "unidade" }

func (Unit) Columns() []string {
	return []string{"empresa_id", "area_atuacao_id", "nome", "telefone", "email", "tipo", "capacidade"}
}

func (u *Unit) Values() []any {
	return []any{u.EmpresaID, u.AreaAtuacaoID, u.Nome, u.Telefone, u.Email, u.Tipo, u.Capacidade}
}

// UnitAddress is the single address of a Unit.
type UnitAddress struct {
	ID        int64  `db:"id" json:"id"`
	UnidadeID int64  `db:"unidade_id" json:"unidade_id"`
	Rua       string `db:"rua" json:"rua"`
	Numero    string `db:"numero" json:"numero"`
	CEP       string `db:"cep" json:"cep"`
	CidadeID  int64  `db:"cidade_id" json:"cidade_id"`
}

func (UnitAddress) TableName() string { return "endereco_unidade" }

func (UnitAddress) Columns() []string {
	return []string{"unidade_id", "rua", "numero", "cep", "cidade_id"}
}

func (a *UnitAddress) Values() []any {
	return []any{a.UnidadeID, a.Rua, a.Numero, a.CEP, a.CidadeID}
}
