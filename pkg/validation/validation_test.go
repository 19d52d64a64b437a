package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devconnector-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5"`
}

var signupMessages = Messages{
	"name":         "Your name is required",
	"email":        "Please to enter a valid email",
	"password.min": "Password must be at least 5 characters",
}

func bindBody(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req signupRequest
	return Bind(c, &req, signupMessages)
}

func TestBindOrdersFieldErrors(t *testing.T) {
	err := bindBody(t, `{"email":"nope","password":"123"}`)
	require.Error(t, err)

	appErr := apperror.From(err)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, []apperror.FieldError{
		{Msg: "Your name is required", Param: "name"},
		{Msg: "Please to enter a valid email", Param: "email"},
		{Msg: "Password must be at least 5 characters", Param: "password"},
	}, appErr.Fields)
}

func TestBindFallsBackForUnknownTag(t *testing.T) {
	err := bindBody(t, `{"name":"A","email":"a@x.com"}`)
	require.Error(t, err)

	appErr := apperror.From(err)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "Invalid value for password", appErr.Fields[0].Msg)
}

func TestBindMalformedBody(t *testing.T) {
	err := bindBody(t, `{"name":`)
	require.Error(t, err)
	assert.Equal(t, []apperror.FieldError{{Msg: "Invalid request body"}}, apperror.From(err).Fields)
}

func TestBindValid(t *testing.T) {
	assert.NoError(t, bindBody(t, `{"name":"A","email":"a@x.com","password":"12345"}`))
}
