package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kantorkita/presensi-backend-go/internal/domain/presence"
	"github.com/kantorkita/presensi-backend-go/internal/pkg/validator"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHandleError_WrappedStoreFailure(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(rec, fmt.Errorf("failed to record entry: %w", errors.New("connection refused")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "failed to record entry", body["message"])
	assert.Equal(t, "connection refused", body["errors"])
}

func TestHandleError_UnwrappedFailure(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(rec, errors.New("something odd"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "something odd", body["errors"])
}

func TestHandleError_DomainErrorKeepsItsStatus(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(rec, presence.ErrAlreadyExited)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleError_ValidationFieldMap(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(rec, validator.ValidationErrors{
		{Field: "time", Message: "time is required"},
	})

	assert.Equal(t, http.StatusNotAcceptable, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "time is required", body["time"])
}