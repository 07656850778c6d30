package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankurdhir/laddu/internal/cart"
	"github.com/ankurdhir/laddu/internal/catalog"
	"github.com/ankurdhir/laddu/internal/configurator"
)

// fakeClient is a scriptable in-memory order service.
type fakeClient struct {
	sendErr     error
	verifyErr   error
	placeErr    error
	checkAfter  int // confirmations return true after this many CheckOrder calls
	checkCalls  int
	lastErrMsg  string
	placedCalls int
	orders      []Summary
	sentPhone   string
}

func (f *fakeClient) SendOTP(_ context.Context, phone string) (SendOTPResult, error) {
	if f.sendErr != nil {
		return SendOTPResult{}, f.sendErr
	}
	f.sentPhone = phone
	return SendOTPResult{SessionID: "sess-1", TestOTP: "123456"}, nil
}

func (f *fakeClient) VerifyOTP(_ context.Context, sessionID, otp string) error {
	return f.verifyErr
}

func (f *fakeClient) PlaceOrder(_ context.Context, sessionID string, payload Payload) error {
	f.placedCalls++
	return f.placeErr
}

func (f *fakeClient) CheckOrder(_ context.Context, sessionID, orderID string) (bool, error) {
	f.checkCalls++
	return f.checkCalls >= f.checkAfter && f.checkAfter > 0, nil
}

func (f *fakeClient) LastError(_ context.Context, sessionID string) (string, error) {
	return f.lastErrMsg, nil
}

func (f *fakeClient) Orders(_ context.Context, sessionID string) ([]Summary, error) {
	return f.orders, nil
}

func newTestAggregator(client Client) (*Aggregator, *configurator.Engine, *cart.Cart) {
	cat := catalog.Load()
	engine := configurator.NewEngine(cat)
	c := cart.NewCart(cart.NewMemoryStore())
	agg := NewAggregator(client, cat, engine, c)
	agg.SetPollPolicy(3, time.Millisecond)
	return agg, engine, c
}

func verify(t *testing.T, agg *Aggregator) {
	t.Helper()
	_, err := agg.RequestOTP(context.Background(), "9876543210")
	require.NoError(t, err)
	require.NoError(t, agg.VerifyOTP(context.Background(), "9876543210", "123456"))
	require.Equal(t, PhasePhoneVerified, agg.Phase())
}

func TestRequestOTP(t *testing.T) {
	fc := &fakeClient{}
	agg, _, _ := newTestAggregator(fc)

	res, err := agg.RequestOTP(context.Background(), " 9876543210 ")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", res.SessionID)
	assert.Equal(t, "9876543210", fc.sentPhone)
	assert.Equal(t, PhaseOtpSent, agg.Phase())
}

func TestRequestOTPFailureRollsBack(t *testing.T) {
	fc := &fakeClient{sendErr: errors.New("sms gateway down")}
	agg, _, _ := newTestAggregator(fc)

	_, err := agg.RequestOTP(context.Background(), "9876543210")
	assert.ErrorIs(t, err, ErrOtpSend)
	assert.Equal(t, PhaseIdle, agg.Phase())

	_, err = agg.RequestOTP(context.Background(), "")
	assert.ErrorIs(t, err, ErrOtpSend)
}

func TestVerifyOTPFormatCheckedLocally(t *testing.T) {
	fc := &fakeClient{}
	agg, _, _ := newTestAggregator(fc)
	_, err := agg.RequestOTP(context.Background(), "9876543210")
	require.NoError(t, err)

	for _, code := range []string{"12345", "1234567", "12a456", ""} {
		err := agg.VerifyOTP(context.Background(), "9876543210", code)
		assert.ErrorIs(t, err, ErrInvalidOtpFormat, "code %q", code)
	}
	assert.Equal(t, PhaseOtpSent, agg.Phase())
}

func TestVerifyOTPWithoutSession(t *testing.T) {
	agg, _, _ := newTestAggregator(&fakeClient{})
	err := agg.VerifyOTP(context.Background(), "9876543210", "123456")
	assert.ErrorIs(t, err, ErrOtpVerify)
}

func TestVerifyOTPRejectionStaysRetryable(t *testing.T) {
	fc := &fakeClient{verifyErr: errors.New("wrong code")}
	agg, _, _ := newTestAggregator(fc)
	_, err := agg.RequestOTP(context.Background(), "9876543210")
	require.NoError(t, err)

	err = agg.VerifyOTP(context.Background(), "9876543210", "000000")
	assert.ErrorIs(t, err, ErrOtpVerify)
	assert.Equal(t, PhaseOtpSent, agg.Phase())

	fc.verifyErr = nil
	require.NoError(t, agg.VerifyOTP(context.Background(), "9876543210", "123456"))
	assert.Equal(t, PhasePhoneVerified, agg.Phase())
}

func TestSubmitRequiresVerification(t *testing.T) {
	agg, _, _ := newTestAggregator(&fakeClient{})
	_, err := agg.Submit(context.Background(), UserDetails{Name: "A"}, 1)
	assert.ErrorIs(t, err, ErrNotVerified)
}

func TestSubmitCustomConfirmed(t *testing.T) {
	fc := &fakeClient{checkAfter: 2}
	agg, engine, _ := newTestAggregator(fc)
	engine.ToggleIngredient("badam")
	engine.ToggleIngredient("kaju")
	verify(t, agg)

	payload, err := agg.Submit(context.Background(), UserDetails{Name: "Asha", Phone: "9876543210"}, 1)
	require.NoError(t, err)
	assert.Equal(t, PhaseConfirmed, agg.Phase())
	assert.Equal(t, 1, fc.placedCalls)
	assert.Equal(t, "Custom Laddoo", payload.Product.Type)
	assert.Equal(t, "1kg", payload.Product.Quantity)
	assert.Equal(t, 1195, payload.Product.TotalPrice)
	assert.Regexp(t, `^LAD-[0-9A-Z]+-[0-9A-Z]{5}$`, payload.ID)
}

func TestSubmitPreset(t *testing.T) {
	fc := &fakeClient{checkAfter: 1}
	agg, _, _ := newTestAggregator(fc)
	require.NoError(t, agg.SetContext(KindPreset, "badam-energy"))
	verify(t, agg)

	payload, err := agg.Submit(context.Background(), UserDetails{Name: "Asha"}, 2)
	require.NoError(t, err)
	assert.Equal(t, "Signature Laddoo", payload.Product.Type)
	assert.Equal(t, "Badam Energy Laddoo", payload.Product.Name)
	assert.Equal(t, "2kg", payload.Product.Quantity)
	assert.Equal(t, 2200, payload.Product.TotalPrice)
	assert.Equal(t, 1100, payload.Product.UnitPrice)
}

func TestSetContextUnknownPreset(t *testing.T) {
	agg, _, _ := newTestAggregator(&fakeClient{})
	err := agg.SetContext(KindPreset, "no-such-preset")
	assert.ErrorIs(t, err, ErrPresetNotFound)
}

func TestSubmitCartClearsOnConfirm(t *testing.T) {
	fc := &fakeClient{checkAfter: 1}
	agg, _, basket := newTestAggregator(fc)
	basket.AddPreset(catalog.Preset{ID: "a", Name: "A", PricePerKg: 850}, 1)
	basket.AddPreset(catalog.Preset{ID: "b", Name: "B", PricePerKg: 1100}, 0.5)
	require.NoError(t, agg.SetContext(KindCart, ""))
	verify(t, agg)

	payload, err := agg.Submit(context.Background(), UserDetails{Name: "Asha"}, 0)
	require.NoError(t, err)
	assert.Equal(t, "Cart Order", payload.Product.Type)
	assert.Len(t, payload.Items, 2)
	assert.Equal(t, 850+550, payload.Product.TotalPrice)
	assert.Empty(t, basket.Items(), "confirmed cart order should clear the cart")
}

func TestSubmitEmptyCartFailsBeforeNetwork(t *testing.T) {
	fc := &fakeClient{}
	agg, _, _ := newTestAggregator(fc)
	require.NoError(t, agg.SetContext(KindCart, ""))
	verify(t, agg)

	_, err := agg.Submit(context.Background(), UserDetails{}, 0)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, fc.placedCalls, "empty cart must not reach the service")
	assert.Equal(t, PhasePhoneVerified, agg.Phase())
}

func TestSubmitHardFailure(t *testing.T) {
	fc := &fakeClient{placeErr: errors.New("connection refused")}
	agg, engine, _ := newTestAggregator(fc)
	engine.ToggleIngredient("badam")
	verify(t, agg)

	_, err := agg.Submit(context.Background(), UserDetails{}, 1)
	assert.ErrorIs(t, err, ErrSubmitFailed)
	assert.Equal(t, PhaseFailed, agg.Phase())
}

func TestSubmitUnconfirmed(t *testing.T) {
	fc := &fakeClient{checkAfter: 0, lastErrMsg: "sheet quota exceeded"}
	agg, engine, basket := newTestAggregator(fc)
	engine.ToggleIngredient("badam")
	verify(t, agg)

	_, err := agg.Submit(context.Background(), UserDetails{}, 1)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Contains(t, err.Error(), "sheet quota exceeded")
	assert.Equal(t, PhasePhoneVerified, agg.Phase(), "unconfirmed submit stays retryable")
	assert.Equal(t, 3, fc.checkCalls)
	assert.Empty(t, basket.Items()) // nothing was added; just confirming no panic path
}

func TestSubmitCanceledContext(t *testing.T) {
	fc := &fakeClient{checkAfter: 0}
	agg, engine, _ := newTestAggregator(fc)
	agg.SetPollPolicy(10, 50*time.Millisecond)
	engine.ToggleIngredient("badam")
	verify(t, agg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := agg.Submit(ctx, UserDetails{}, 1)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Equal(t, PhasePhoneVerified, agg.Phase())
}

func TestFetchOrders(t *testing.T) {
	fc := &fakeClient{orders: []Summary{{ID: "LAD-X-YYYYY", ProductName: "Gond Laddoo", Quantity: 1, Total: 1200}}}
	agg, _, _ := newTestAggregator(fc)

	_, err := agg.FetchOrders(context.Background())
	assert.ErrorIs(t, err, ErrNotVerified)

	verify(t, agg)
	orders, err := agg.FetchOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Gond Laddoo", orders[0].ProductName)

	fc.orders = nil
	orders, err = agg.FetchOrders(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, orders, "nil service result surfaces as an empty slice")
}

func TestReset(t *testing.T) {
	fc := &fakeClient{}
	agg, _, _ := newTestAggregator(fc)
	verify(t, agg)

	agg.Reset()
	assert.Equal(t, PhaseIdle, agg.Phase())
	_, err := agg.Submit(context.Background(), UserDetails{}, 1)
	assert.ErrorIs(t, err, ErrNotVerified)
}
