package order

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankurdhir/laddu/internal/ordersvc"
)

// newWebhookServer stands up the real order-service handler behind an
// httptest server, so these tests exercise the wire contract end to end.
func newWebhookServer(t *testing.T) *httptest.Server {
	t.Helper()
	t.Setenv("OTP_TEST_MODE", "true")
	gin.SetMode(gin.TestMode)

	h := ordersvc.NewHandler(ordersvc.NewService(ordersvc.NewMemoryRepository()))
	r := gin.New()
	r.GET("/webhook", h.HandleAction)
	r.POST("/webhook", h.HandlePlaceOrder)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPClientOtpFlow(t *testing.T) {
	srv := newWebhookServer(t)
	c := NewHTTPClient(srv.URL + "/webhook")
	ctx := context.Background()

	res, err := c.SendOTP(ctx, "9876543210")
	require.NoError(t, err)
	assert.NotEmpty(t, res.SessionID)
	require.Regexp(t, `^\d{6}$`, res.TestOTP)

	err = c.VerifyOTP(ctx, res.SessionID, "000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incorrect OTP")

	require.NoError(t, c.VerifyOTP(ctx, res.SessionID, res.TestOTP))
}

func TestHTTPClientPlaceAndConfirm(t *testing.T) {
	srv := newWebhookServer(t)
	c := NewHTTPClient(srv.URL + "/webhook")
	ctx := context.Background()

	res, err := c.SendOTP(ctx, "9876543210")
	require.NoError(t, err)
	require.NoError(t, c.VerifyOTP(ctx, res.SessionID, res.TestOTP))

	payload := Payload{
		ID:   "LAD-TEST1-ABCDE",
		Date: "2025-06-01T12:00:00Z",
		User: UserDetails{Name: "Asha", Phone: "9876543210"},
		Product: Product{
			Type: "Custom Laddoo", Name: "Custom Mix",
			Quantity: "1kg", TotalPrice: 1195,
		},
	}

	found, err := c.CheckOrder(ctx, res.SessionID, payload.ID)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.PlaceOrder(ctx, res.SessionID, payload))

	found, err = c.CheckOrder(ctx, res.SessionID, payload.ID)
	require.NoError(t, err)
	assert.True(t, found)

	orders, err := c.Orders(ctx, res.SessionID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Custom Mix", orders[0].ProductName)
	assert.Equal(t, 1195, orders[0].Total)
}

func TestHTTPClientUnverifiedPlaceLeavesDiagnostic(t *testing.T) {
	srv := newWebhookServer(t)
	c := NewHTTPClient(srv.URL + "/webhook")
	ctx := context.Background()

	res, err := c.SendOTP(ctx, "9876543210")
	require.NoError(t, err)

	// Fire-and-forget: the write itself reports no error even though the
	// service refused it. The refusal shows up in the diagnostic channel.
	payload := Payload{ID: "LAD-TEST2-ABCDE", Product: Product{Name: "X", Quantity: "1kg"}}
	require.NoError(t, c.PlaceOrder(ctx, res.SessionID, payload))

	found, err := c.CheckOrder(ctx, res.SessionID, payload.ID)
	require.NoError(t, err)
	assert.False(t, found)

	msg, err := c.LastError(ctx, res.SessionID)
	require.NoError(t, err)
	assert.Contains(t, msg, "not verified")
}

func TestHTTPClientServiceErrorMessage(t *testing.T) {
	srv := newWebhookServer(t)
	c := NewHTTPClient(srv.URL + "/webhook")

	err := c.VerifyOTP(context.Background(), "no-such-session", "123456")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown or expired session"), err.Error())
}
