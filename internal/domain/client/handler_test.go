package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"

	"github.com/healthplan/healthplan/internal/platform/apitest"
	"github.com/healthplan/healthplan/internal/platform/repository/repotest"
	"github.com/healthplan/healthplan/internal/platform/sqlerr"
	"github.com/healthplan/healthplan/pkg/civil"
)

const clientBody = `{"rg":"12.345.678-9","nome":"João Souza","sexo":"M","telefone":"11988887777","email":"joao@example.com","data_nascimento":"1985-04-23","cpf":"123.456.789-00","convenio_id":1,"estado_civil_id":2}`

type testStores struct {
	maritalStatuses   *repotest.Store[MaritalStatus]
	clients           *repotest.Store[Client]
	addresses         *repotest.Store[Address]
	comorbidities     *repotest.Store[Comorbidity]
	healthHistories   *repotest.Store[HealthHistory]
	hospitalHistories *repotest.Store[HospitalHistory]
}

func newTestServer() (*echo.Echo, testStores) {
	s := testStores{
		maritalStatuses:   repotest.New[MaritalStatus]("estado_civil", func(m *MaritalStatus) *int64 { return &m.ID }),
		clients:           repotest.New[Client]("cliente", func(c *Client) *int64 { return &c.ID }),
		addresses:         repotest.New[Address]("endereco_cliente", func(a *Address) *int64 { return &a.ID }),
		comorbidities:     repotest.New[Comorbidity]("comorbidade", func(c *Comorbidity) *int64 { return &c.ID }),
		healthHistories:   repotest.New[HealthHistory]("historico_saude_cliente", func(h *HealthHistory) *int64 { return &h.ID }),
		hospitalHistories: repotest.New[HospitalHistory]("historico_hospital_cliente", func(h *HospitalHistory) *int64 { return &h.ID }),
	}
	h := NewHandler(Repos{
		MaritalStatuses:   s.maritalStatuses,
		Clients:           s.clients,
		Addresses:         s.addresses,
		Comorbidities:     s.comorbidities,
		HealthHistories:   s.healthHistories,
		HospitalHistories: s.hospitalHistories,
	})
	return apitest.NewServer(h.RegisterRoutes), s
}

func TestClients_Create(t *testing.T) {
	e, s := newTestServer()

	rec := apitest.Do(e, http.MethodPost, "/clientes", clientBody)
	apitest.AssertStatus(t, rec, http.StatusCreated)

	var got Client
	apitest.Decode(t, rec, &got)
	if got.ID != 1 || got.Sexo != "M" || got.EstadoCivilID != 2 {
		t.Errorf("unexpected client: %+v", got)
	}
	if !got.DataNascimento.Equal(civil.NewDate(1985, 4, 23)) {
		t.Errorf("expected birth date 1985-04-23, got %s", got.DataNascimento)
	}
	if s.clients.Len() != 1 {
		t.Errorf("expected 1 stored client, got %d", s.clients.Len())
	}
}

func TestClients_SexoMustBeOneCharacter(t *testing.T) {
	e, s := newTestServer()

	rec := apitest.Do(e, http.MethodPost, "/clientes",
		`{"rg":"1","nome":"A","sexo":"MF","telefone":"1","email":"a@b.com","data_nascimento":"1990-01-01","cpf":"1","convenio_id":1,"estado_civil_id":1}`)
	apitest.AssertStatus(t, rec, http.StatusBadRequest)
	body := apitest.DecodeError(t, rec)
	if len(body.Errors) != 1 || body.Errors[0].Field != "sexo" {
		t.Errorf("expected sexo field error, got %+v", body.Errors)
	}
	if s.clients.Len() != 0 {
		t.Error("invalid client must not be stored")
	}
}

func TestClients_MissingFieldsReported(t *testing.T) {
	e, _ := newTestServer()

	rec := apitest.Do(e, http.MethodPost, "/clientes", `{"nome":"A"}`)
	apitest.AssertStatus(t, rec, http.StatusBadRequest)
	body := apitest.DecodeError(t, rec)

	fields := map[string]bool{}
	for _, fe := range body.Errors {
		fields[fe.Field] = true
	}
	for _, want := range []string{"rg", "sexo", "telefone", "email", "data_nascimento", "cpf", "convenio_id", "estado_civil_id"} {
		if !fields[want] {
			t.Errorf("expected error for %s, got %+v", want, body.Errors)
		}
	}
}

func TestClients_UnknownPlan(t *testing.T) {
	e, s := newTestServer()
	s.clients.Err = sqlerr.Wrap("cliente", &pgconn.PgError{
		Code:           "23503",
		TableName:      "cliente",
		ConstraintName: "cliente_convenio_id_fkey",
		Detail:         `Key (convenio_id)=(1) is not present in table "convenio".`,
	})

	rec := apitest.Do(e, http.MethodPost, "/clientes", clientBody)
	apitest.AssertStatus(t, rec, http.StatusBadRequest)
	if body := apitest.DecodeError(t, rec); body.Code != "CLIENTE_INVALID_REFERENCE" {
		t.Errorf("unexpected code %s", body.Code)
	}
}

func TestClients_UpdateWritesIncomingValues(t *testing.T) {
	e, s := newTestServer()
	s.clients.Seed(Client{Nome: "Old", Sexo: "F", ConvenioID: 1, EstadoCivilID: 1})

	rec := apitest.Do(e, http.MethodPut, "/clientes/1", clientBody)
	apitest.AssertStatus(t, rec, http.StatusOK)

	stored, err := s.clients.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Nome != "João Souza" || stored.Sexo != "M" || stored.EstadoCivilID != 2 {
		t.Errorf("expected overwritten client, got %+v", stored)
	}
}

func TestClientAddresses_OnePerClient(t *testing.T) {
	e, s := newTestServer()
	s.addresses.Err = sqlerr.Wrap("endereco_cliente", &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "endereco_cliente_cliente_id_key",
		Detail:         "Key (cliente_id)=(1) already exists.",
	})

	rec := apitest.Do(e, http.MethodPost, "/enderecos_cliente",
		`{"cliente_id":1,"rua":"Rua das Flores","numero":"100","cep":"01310-100","cidade_id":1}`)
	apitest.AssertStatus(t, rec, http.StatusConflict)
	if body := apitest.DecodeError(t, rec); body.Code != "ENDERECO_CLIENTE_ALREADY_EXISTS" {
		t.Errorf("unexpected code %s", body.Code)
	}
}

func TestHealthHistory_NonSmokerIsValid(t *testing.T) {
	e, s := newTestServer()

	rec := apitest.Do(e, http.MethodPost, "/historicos_saude_cliente",
		`{"cliente_id":1,"comorbidade_id":3,"data_registro":"2024-06-01","fuma":0,"observacoes":"Sem queixas"}`)
	apitest.AssertStatus(t, rec, http.StatusCreated)

	stored, err := s.healthHistories.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Fuma != 0 || stored.ComorbidadeID != 3 || !stored.DataRegistro.Equal(civil.NewDate(2024, 6, 1)) {
		t.Errorf("unexpected history: %+v", stored)
	}
}

func TestHealthHistory_AnyIntegerFuma(t *testing.T) {
	e, s := newTestServer()

	rec := apitest.Do(e, http.MethodPost, "/historicos_saude_cliente",
		`{"cliente_id":1,"comorbidade_id":3,"data_registro":"2024-06-01","fuma":-2,"observacoes":""}`)
	apitest.AssertStatus(t, rec, http.StatusCreated)

	stored, err := s.healthHistories.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Fuma != -2 || stored.Observacoes != "" {
		t.Errorf("unexpected history: %+v", stored)
	}
}

func TestHealthHistory_MissingFuma(t *testing.T) {
	e, _ := newTestServer()

	rec := apitest.Do(e, http.MethodPost, "/historicos_saude_cliente",
		`{"cliente_id":1,"comorbidade_id":3,"data_registro":"2024-06-01","observacoes":"x"}`)
	apitest.AssertStatus(t, rec, http.StatusBadRequest)
	body := apitest.DecodeError(t, rec)
	if len(body.Errors) != 1 || body.Errors[0].Field != "fuma" {
		t.Errorf("expected fuma field error, got %+v", body.Errors)
	}
}

func TestHospitalHistory_InvalidDate(t *testing.T) {
	e, s := newTestServer()

	rec := apitest.Do(e, http.MethodPost, "/historicos_hospital_cliente",
		`{"cliente_id":1,"data_registro":"01/06/2024","historico_medico":"a","exames_realizados":"b","medicamentos_prescritos":"c","observacoes":"d"}`)
	apitest.AssertStatus(t, rec, http.StatusBadRequest)
	if s.hospitalHistories.Len() != 0 {
		t.Error("invalid history must not be stored")
	}
}

func TestHospitalHistory_CRUD(t *testing.T) {
	e, _ := newTestServer()
	body := `{"cliente_id":1,"data_registro":"2024-06-01","historico_medico":"Apendicectomia","exames_realizados":"Hemograma","medicamentos_prescritos":"Dipirona","observacoes":"Alta em 2 dias"}`

	rec := apitest.Do(e, http.MethodPost, "/historicos_hospital_cliente", body)
	apitest.AssertStatus(t, rec, http.StatusCreated)

	rec = apitest.Do(e, http.MethodGet, "/historicos_hospital_cliente/1", "")
	apitest.AssertStatus(t, rec, http.StatusOK)
	var got HospitalHistory
	apitest.Decode(t, rec, &got)
	if got.HistoricoMedico != "Apendicectomia" || got.MedicamentosPrescritos != "Dipirona" {
		t.Errorf("unexpected history: %+v", got)
	}

	rec = apitest.Do(e, http.MethodDelete, "/historicos_hospital_cliente/1", "")
	apitest.AssertStatus(t, rec, http.StatusOK)

	rec = apitest.Do(e, http.MethodGet, "/historicos_hospital_cliente/1", "")
	apitest.AssertStatus(t, rec, http.StatusNotFound)
	if body := apitest.DecodeError(t, rec); body.Code != "HISTORICO_HOSPITAL_CLIENTE_NOT_FOUND" {
		t.Errorf("unexpected code %s", body.Code)
	}
}

func TestDeleteMessages(t *testing.T) {
	e, s := newTestServer()
	s.maritalStatuses.Seed(MaritalStatus{Nome: "Solteiro"})
	s.clients.Seed(Client{Nome: "A"})
	s.addresses.Seed(Address{Rua: "Rua A"})
	s.comorbidities.Seed(Comorbidity{Nome: "Diabetes"})
	s.healthHistories.Seed(HealthHistory{Observacoes: "x"})
	s.hospitalHistories.Seed(HospitalHistory{Observacoes: "x"})

	tests := []struct {
		path string
		want string
	}{
		{"/estados_civis/1", "Estado civil deletado com sucesso"},
		{"/clientes/1", "Cliente deletado com sucesso"},
		{"/enderecos_cliente/1", "Endereço do cliente deletado com sucesso"},
		{"/comorbidades/1", "Comorbidade deletada com sucesso"},
		{"/historicos_saude_cliente/1", "Histórico de saúde do cliente deletado com sucesso"},
		{"/historicos_hospital_cliente/1", "Histórico hospitalar do cliente deletado com sucesso"},
	}
	for _, tt := range tests {
		rec := apitest.Do(e, http.MethodDelete, tt.path, "")
		apitest.AssertStatus(t, rec, http.StatusOK)
		var msg map[string]string
		apitest.Decode(t, rec, &msg)
		if msg["message"] != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.path, tt.want, msg["message"])
		}
	}
}

func TestMaritalStatus_NameTooLong(t *testing.T) {
	e, _ := newTestServer()

	rec := apitest.Do(e, http.MethodPost, "/estados_civis", `{"nome":"Solteiro com mais de vinte"}`)
	apitest.AssertStatus(t, rec, http.StatusBadRequest)
}
