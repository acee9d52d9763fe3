package geo

type StateRequest struct {
	Nome *string `json:"nome" validate:"required,max=20"`
}

func (r StateRequest) Model() *State {
	return &State{Nome: *r.Nome}
}

type CityRequest struct {
	Nome     *string `json:"nome" validate:"required,max=20"`
	EstadoID *int64  `json:"estado_id" validate:"required,gt=0"`
}

func (r CityRequest) Model() *City {
	return &City{Nome: *r.Nome, EstadoID: *r.EstadoID}
}
