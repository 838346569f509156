package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"NovaCom/internal/handler"
	"NovaCom/internal/middleware"
	"NovaCom/internal/service"
	"NovaCom/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// atDegreeCtx 构造一个已登录的请求上下文，d 为路径参数
func atDegreeCtx(t *testing.T, userID uint64, d string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/graph/connections/"+d, nil)
	c.Set(middleware.ContextUserIDKey, userID)
	c.Params = gin.Params{{Key: "d", Value: d}}
	return c, w
}

func TestAtDegreeZeroReturnsSelf(t *testing.T) {
	st := store.New()
	id, err := st.CreateUser("alice", "a@example.com", "hash", "", nil)
	require.NoError(t, err)
	h := handler.NewGraphHandler(service.NewGraphService(st))

	c, w := atDegreeCtx(t, id, "0")
	h.AtDegree(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		List []struct {
			ID uint64 `json:"id"`
		} `json:"list"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.List, 1)
	assert.Equal(t, id, resp.List[0].ID)
}

func TestAtDegreeRejectsInvalid(t *testing.T) {
	st := store.New()
	id, err := st.CreateUser("alice", "a@example.com", "hash", "", nil)
	require.NoError(t, err)
	h := handler.NewGraphHandler(service.NewGraphService(st))

	c, w := atDegreeCtx(t, id, "-1")
	h.AtDegree(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = atDegreeCtx(t, id, "abc")
	h.AtDegree(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
