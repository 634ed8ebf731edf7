package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWith_ResultWinsOverPayload(t *testing.T) {
	body := With(Done, gin.H{"result": "ignored", "id": 4})
	assert.Equal(t, Done, body["result"])
	assert.Equal(t, 4, body["id"])
}

func TestAbort_AlwaysOK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Abort(c, NoAuth)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, c.IsAborted())
	assert.Equal(t, NoAuth, c.GetString(ContextKey))

	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, map[string]string{"result": NoAuth}, got)
}
