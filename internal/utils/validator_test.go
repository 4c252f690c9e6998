package utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type promptRequest struct {
	Prompt string `json:"prompt" binding:"required,notblank"`
	Size   string `json:"size" binding:"omitempty,oneof=256x256 512x512"`
}

func bind(t *testing.T, body string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterValidators()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req promptRequest
	return w, BindAndValidate(c, &req)
}

func decodeDetails(t *testing.T, w *httptest.ResponseRecorder) []ValidationErrorDetail {
	t.Helper()
	var resp struct {
		Data ValidationErrorData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.Errors
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		ok        bool
		field     string
		wantMatch string
	}{
		{"valid", `{"prompt":"Say hi"}`, true, "", ""},
		{"missing prompt", `{}`, false, "prompt", "is required"},
		{"whitespace prompt", `{"prompt":"   \n\t"}`, false, "prompt", "must not be empty"},
		{"bad size", `{"prompt":"x","size":"9x9"}`, false, "size", "must be one of"},
		{"wrong type", `{"prompt":5}`, false, "prompt", "invalid type"},
		{"malformed", `{"prompt":`, false, "body", "Malformed JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := bind(t, tt.body)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				return
			}
			assert.Equal(t, http.StatusBadRequest, w.Code)
			details := decodeDetails(t, w)
			require.NotEmpty(t, details)
			assert.Equal(t, tt.field, details[0].Field)
			assert.Contains(t, details[0].Message, tt.wantMatch)
		})
	}
}
