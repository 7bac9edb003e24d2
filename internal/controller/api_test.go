package controller_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unclebandit/customer-records/internal/controller"
	"github.com/unclebandit/customer-records/internal/db"
	"github.com/unclebandit/customer-records/internal/metrics"
	"github.com/unclebandit/customer-records/internal/model"
	"github.com/unclebandit/customer-records/internal/repository"
	"github.com/unclebandit/customer-records/internal/service"
)

// newAPI wires the real service and repository over a temporary SQLite database.
func newAPI(t *testing.T) (*httptest.Server, *sql.DB) {
	t.Helper()
	conn, err := db.Open(context.Background(), db.Config{
		Driver: "sqlite3",
		URL:    filepath.Join(t.TempDir(), "customers.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	svc := &service.CustomerService{CustomerRepo: &repository.CustomerRepository{DB: conn}}
	c := &controller.CustomerController{CustomerService: svc, Logger: zap.NewNop()}
	srv := httptest.NewServer(controller.NewRouter(c, metrics.New(), zap.NewNop()))
	t.Cleanup(srv.Close)
	return srv, conn
}

func post(t *testing.T, srv *httptest.Server, dto model.CustomerDTO) *http.Response {
	t.Helper()
	b, err := json.Marshal(dto)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+"/api/customers/saveCustomer", "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, srv *httptest.Server, ref string) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + "/api/customers/" + ref)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestCreateThenFetch(t *testing.T) {
	srv, _ := newAPI(t)

	resp := post(t, srv, carlDTO())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, srv, "123")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got model.CustomerDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, carlDTO(), got)
}

func TestFetchNeverWritten(t *testing.T) {
	srv, _ := newAPI(t)

	resp := get(t, srv, "999")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body controller.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, controller.ErrorResponse{StatusCode: 404, Message: "Customer not found with id: 999"}, body)
}

func TestSecondCreateOverwrites(t *testing.T) {
	srv, _ := newAPI(t)

	require.Equal(t, http.StatusOK, post(t, srv, carlDTO()).StatusCode)
	second := model.CustomerDTO{CustomerRef: "123", CustomerName: "Carla Carver", Town: "Sheffield"}
	require.Equal(t, http.StatusOK, post(t, srv, second).StatusCode)

	var got model.CustomerDTO
	require.NoError(t, json.NewDecoder(get(t, srv, "123").Body).Decode(&got))
	assert.Equal(t, second, got)
}

func TestStoreFaultOnSave(t *testing.T) {
	srv, conn := newAPI(t)
	_, err := conn.Exec(`
		CREATE TRIGGER reject_bad BEFORE INSERT ON customers
		WHEN NEW.customer_ref = '99889'
		BEGIN SELECT RAISE(ABORT, 'rejected'); END`)
	require.NoError(t, err)

	resp := post(t, srv, model.CustomerDTO{CustomerRef: "99889", CustomerName: "Failed Customer"})
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body controller.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, controller.ErrorResponse{StatusCode: 500, Message: controller.MessageUnexpected}, body)

	assert.Equal(t, http.StatusNotFound, get(t, srv, "99889").StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newAPI(t)
	get(t, srv, "nobody")

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
