package geo

// State is a federative unit (estado).
type State struct {
	ID   int64  `db:"id" json:"id"`
	Nome string `db:"nome" json:"nome"`
}

func (State) TableName() string { return "estado" }

func (State) Columns() []string { return []string{"nome"} }

func (s *State) Values() []any { return []any{s.Nome} }

// City belongs to exactly one State.
type City struct {
	ID       int64  `db:"id" json:"id"`
	Nome     string `db:"nome" json:"nome"`
	EstadoID int64  `db:"estado_id" json:"estado_id"`
}

func (City) TableName() string { return "cidade" }

func (City) Columns() []string { return []string{"nome", "estado_id"} }

func (c *City) Values() []any { return []any{c.Nome, c.EstadoID} }
