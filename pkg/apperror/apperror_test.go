package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMatchesWrappedSentinel(t *testing.T) {
	sentinel := NotFound(http.StatusNotFound, "There is no post for this id")
	wrapped := fmt.Errorf("loading post: %w", sentinel)

	assert.True(t, errors.Is(wrapped, sentinel))
	assert.False(t, errors.Is(wrapped, NotFound(http.StatusNotFound, "Comment not found!")))
}

func TestFromTreatsUnknownAsInternal(t *testing.T) {
	cause := errors.New("connection reset")
	got := From(cause)

	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.ErrorIs(t, got, cause)
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "single message",
			err:        Forbidden("User not authorized"),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"msg":"User not authorized"}`,
		},
		{
			name:       "listed",
			err:        Listed(KindDuplicate, http.StatusBadRequest, "User already exists"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":[{"msg":"User already exists"}]}`,
		},
		{
			name:       "validation",
			err:        Validation([]FieldError{{Msg: "Text is required", Param: "text"}}),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":[{"msg":"Text is required","param":"text"}]}`,
		},
		{
			name:       "internal hides cause",
			err:        errors.New("pq: relation does not exist"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"msg":"Server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			Respond(c, tt.err)

			require.Equal(t, tt.wantStatus, w.Code)
			var got, want any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			require.NoError(t, json.Unmarshal([]byte(tt.wantBody), &want))
			assert.Equal(t, want, got)
			assert.True(t, c.IsAborted())
		})
	}
}
