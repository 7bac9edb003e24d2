package loader_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unclebandit/customer-records/internal/controller"
	"github.com/unclebandit/customer-records/internal/db"
	"github.com/unclebandit/customer-records/internal/loader"
	"github.com/unclebandit/customer-records/internal/model"
	"github.com/unclebandit/customer-records/internal/repository"
	"github.com/unclebandit/customer-records/internal/service"
)

func TestClientPostsJSON(t *testing.T) {
	var got model.CustomerDTO
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, loader.SavePath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(controller.SaveSuccessMessage))
	}))
	defer srv.Close()

	err := loader.NewClient(srv.URL).SaveCustomer(context.Background(), model.CustomerDTO{CustomerRef: "1", Town: "York"})
	require.NoError(t, err)
	assert.Equal(t, model.CustomerDTO{CustomerRef: "1", Town: "York"}, got)
}

func TestClientNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		controller.WriteErrorResponse(w, http.StatusInternalServerError, controller.MessageUnexpected)
	}))
	defer srv.Close()

	err := loader.NewClient(srv.URL).SaveCustomer(context.Background(), model.CustomerDTO{CustomerRef: "1"})

	var se *loader.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Contains(t, se.Body, controller.MessageUnexpected)
}

func TestClientNetworkFault(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := loader.NewClient(url).SaveCustomer(context.Background(), model.CustomerDTO{CustomerRef: "1"})
	assert.Error(t, err)
}

// Replays a file through the real API and reads the rows back.
func TestLoaderAgainstAPI(t *testing.T) {
	conn, err := db.Open(context.Background(), db.Config{
		Driver: "sqlite3",
		URL:    filepath.Join(t.TempDir(), "customers.db"),
	})
	require.NoError(t, err)
	defer conn.Close()

	svc := &service.CustomerService{CustomerRepo: &repository.CustomerRepository{DB: conn}}
	api := controller.NewRouter(&controller.CustomerController{CustomerService: svc}, nil, zap.NewNop())
	srv := httptest.NewServer(api)
	defer srv.Close()

	input := strings.Join([]string{
		"123,Carl Carver,50 Spital lane,Spital,Chesterfield,England,Derbyshire,S410HJ",
		"124,Jane Smith,1 High St,,Leeds,West Yorkshire,England,LS11AA",
		"123,Carl Carver,51 Spital lane,Spital,Chesterfield,England,Derbyshire,S410HJ",
	}, "\n")

	l := &loader.Loader{Saver: loader.NewClient(srv.URL), Logger: zap.NewNop()}
	sent, err := l.Run(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, sent)

	got, err := svc.GetByReference(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, "51 Spital lane", got.AddressLine1)

	got, err = svc.GetByReference(context.Background(), "124")
	require.NoError(t, err)
	assert.Equal(t, "Leeds", got.Town)
}

func TestLoaderStopsOnRejectedRow(t *testing.T) {
	conn, err := db.Open(context.Background(), db.Config{
		Driver: "sqlite3",
		URL:    filepath.Join(t.TempDir(), "customers.db"),
	})
	require.NoError(t, err)
	defer conn.Close()

	svc := &service.CustomerService{CustomerRepo: &repository.CustomerRepository{DB: conn}}
	srv := httptest.NewServer(controller.NewRouter(&controller.CustomerController{CustomerService: svc}, nil, zap.NewNop()))
	defer srv.Close()

	// the empty reference is rejected with a 400
	input := ",No Ref,a,b,c,d,e,f\n200,Never Sent,a,b,c,d,e,f\n"
	l := &loader.Loader{Saver: loader.NewClient(srv.URL), Logger: zap.NewNop()}
	sent, err := l.Run(context.Background(), strings.NewReader(input))

	var se *loader.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
	assert.Zero(t, sent)

	_, err = svc.GetByReference(context.Background(), "200")
	assert.Error(t, err)
}
