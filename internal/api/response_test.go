package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"league_system/internal/transfer"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode unpacks the response envelope written to the recorder
func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestFailEngineMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        *transfer.Error
		wantStatus int
		wantCode   float64
	}{
		{
			name:       "not found maps to 404",
			err:        &transfer.Error{Kind: transfer.KindNotFound, Message: "Player not found."},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "forbidden maps to 403",
			err:        &transfer.Error{Kind: transfer.KindForbidden, Message: "Permission Error"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "validation maps to 400",
			err:        &transfer.Error{Kind: transfer.KindValidation, Message: "Price must be a positive amount."},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "conflict maps to 422 with its custom code",
			err:        &transfer.Error{Kind: transfer.KindConflict, Code: transfer.CodePriceMismatch, Message: "Offered price does not match the sale price."},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   transfer.CodePriceMismatch,
		},
		{
			name:       "internal maps to 500",
			err:        &transfer.Error{Kind: transfer.KindInternal, Message: "Something went wrong"},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			failEngine(c, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.err.Message, body["message"])
			assert.Equal(t, float64(tc.wantStatus), body["status"])
			assert.Equal(t, tc.wantCode, body["custom_code"])
		})
	}

	t.Run("untyped errors map to 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		failEngine(c, assert.AnError)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Something went wrong", body["message"])
	})
}

func TestEnvelopeShape(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success envelope carries data", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		ok(c, "success", gin.H{"id": 1})

		body := decode(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "success", body["message"])
		assert.Contains(t, body, "data")
		assert.NotContains(t, body, "errors")
	})

	t.Run("failure envelope omits data", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		fail(c, "Bad Request", http.StatusBadRequest, 0)

		body := decode(t, rec)
		assert.Equal(t, false, body["success"])
		assert.NotContains(t, body, "data")
	})
}
