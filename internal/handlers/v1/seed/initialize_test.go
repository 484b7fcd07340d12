package seed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSeeder struct {
	mock.Mock
}

func (m *mockSeeder) Initialize(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func newSeedTestAPI(t *testing.T, svc seeder) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewInitializeHandler(svc).Register(api)
	return api
}

func TestHTTP_Initialize_Success(t *testing.T) {
	mockSvc := new(mockSeeder)
	mockSvc.On("Initialize", mock.Anything).Return(60, nil)

	resp := newSeedTestAPI(t, mockSvc).Get("/initialize")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body InitializeResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "database initialized with 60 transactions", body.Message)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Initialize_Failure(t *testing.T) {
	mockSvc := new(mockSeeder)
	mockSvc.On("Initialize", mock.Anything).Return(0, errors.New("fetch seed feed: connection refused"))

	resp := newSeedTestAPI(t, mockSvc).Get("/initialize")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
