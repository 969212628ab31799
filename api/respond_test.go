package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anborhan/blog-backend/errs"
)

func TestWriteErrorTranslatesApiErrs(t *testing.T) {
	responder := NewResponder(zerolog.Nop())
	recorder := httptest.NewRecorder()

	responder.WriteError(recorder, errs.NewInvalidFieldError("id", "body id does not match path id"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "error", response.Status)
	assert.Equal(t, "id", response.Field)
	assert.NotEmpty(t, response.Error)
}

func TestWriteErrorFallsBackToInternalError(t *testing.T) {
	responder := NewResponder(zerolog.Nop())
	recorder := httptest.NewRecorder()

	responder.WriteError(recorder, errors.New("something unexpected"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Internal Server Error", response.Error)
	assert.Equal(t, "error", response.Status)
	assert.Empty(t, response.Field)
}
