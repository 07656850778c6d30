package ordersvc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("OTP_TEST_MODE", "true")
	gin.SetMode(gin.TestMode)

	h := NewHandler(NewService(NewMemoryRepository()))
	r := gin.New()
	r.GET("/webhook", h.HandleAction)
	r.POST("/webhook", h.HandlePlaceOrder)
	return r
}

func doGET(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHandleActionSendOtp(t *testing.T) {
	r := newTestRouter(t)

	w := doGET(r, "/webhook?action=sendOtp&phone=9876543210")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])
	assert.NotEmpty(t, resp["sessionId"])
	assert.NotEmpty(t, resp["testOtp"])
}

func TestHandleActionUnknown(t *testing.T) {
	r := newTestRouter(t)

	w := doGET(r, "/webhook?action=teleport")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["ok"])
	assert.Equal(t, "unknown action", resp["error"])
}

func TestHandleActionJSONPCallback(t *testing.T) {
	r := newTestRouter(t)

	w := doGET(r, "/webhook?action=sendOtp&phone=9876543210&callback=cb123")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/javascript")

	body := w.Body.String()
	require.True(t, strings.HasPrefix(body, "cb123("), body)
	require.True(t, strings.HasSuffix(body, ")"), body)

	var resp map[string]any
	inner := strings.TrimSuffix(strings.TrimPrefix(body, "cb123("), ")")
	require.NoError(t, json.Unmarshal([]byte(inner), &resp))
	assert.Equal(t, true, resp["ok"])
}

func TestHandleActionRejectsScriptCallback(t *testing.T) {
	r := newTestRouter(t)

	// Non-identifier callback names fall back to plain JSON so the query
	// value never reaches the script body.
	w := doGET(r, "/webhook?action=sendOtp&phone=9876543210&callback="+
		"%3Cscript%3Ealert(1)%3C/script%3E")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.NotContains(t, w.Body.String(), "<script>")

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])
}

func TestHandlePlaceOrderValidation(t *testing.T) {
	r := newTestRouter(t)

	// Missing action field.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"sessionId":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown session is a forbidden write.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/webhook",
		strings.NewReader(`{"action":"placeOrder","requireOtp":true,"sessionId":"ghost","order":{"id":"LAD-1-AAAAA"}}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
