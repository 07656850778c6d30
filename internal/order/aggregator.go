package order

import (
	"context"
	"fmt"
	"log"
	"math"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/ankurdhir/laddu/internal/cart"
	"github.com/ankurdhir/laddu/internal/catalog"
	"github.com/ankurdhir/laddu/internal/configurator"
)

// Phase is the order-submission session state.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhasePhonePending  Phase = "phone_pending"
	PhaseOtpSent       Phase = "otp_sent"
	PhasePhoneVerified Phase = "phone_verified"
	PhaseSubmitting    Phase = "submitting"
	PhaseConfirmed     Phase = "confirmed"
	PhaseFailed        Phase = "failed"
)

// Kind selects which data source populates the order payload.
type Kind string

const (
	KindCustom Kind = "custom"
	KindPreset Kind = "preset"
	KindCart   Kind = "cart"
)

var otpPattern = regexp.MustCompile(`^\d{6}$`)

const (
	defaultPollAttempts = 6
	defaultPollInterval = 700 * time.Millisecond
)

// Aggregator coordinates one OTP-gated order-submission session over the
// configurator, cart and order-service client. Submission is an explicit
// two-phase protocol: a fire-and-forget write followed by a bounded
// confirmation poll (fixed 6 attempts at ~700ms, not a backoff strategy;
// known limitation carried over from the storefront).
type Aggregator struct {
	mu     sync.Mutex
	client Client
	cat    *catalog.Catalog
	engine *configurator.Engine
	cart   *cart.Cart

	phase         Phase
	kind          Kind
	presetID      string
	sessionID     string
	verifiedPhone string

	pollAttempts int
	pollInterval time.Duration
	now          func() time.Time
}

func NewAggregator(client Client, cat *catalog.Catalog, engine *configurator.Engine, c *cart.Cart) *Aggregator {
	return &Aggregator{
		client:       client,
		cat:          cat,
		engine:       engine,
		cart:         c,
		phase:        PhaseIdle,
		kind:         KindCustom,
		pollAttempts: defaultPollAttempts,
		pollInterval: defaultPollInterval,
		now:          time.Now,
	}
}

// SetPollPolicy overrides the confirmation-poll budget.
func (a *Aggregator) SetPollPolicy(attempts int, interval time.Duration) {
	a.mu.Lock()
	a.pollAttempts = attempts
	a.pollInterval = interval
	a.mu.Unlock()
}

func (a *Aggregator) Phase() Phase {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.phase
}

// SetContext chooses the payload source. A preset context must resolve in
// the catalog; cart emptiness is checked at submission time, not here.
func (a *Aggregator) SetContext(kind Kind, presetID string) error {
	if kind == KindPreset {
		if _, ok := a.cat.FindPreset(presetID); !ok {
			return fmt.Errorf("%w: %s", ErrPresetNotFound, presetID)
		}
	}
	a.mu.Lock()
	a.kind = kind
	a.presetID = presetID
	a.mu.Unlock()
	return nil
}

// Reset returns the session to Idle for a fresh attempt, discarding any OTP
// progress.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	a.phase = PhaseIdle
	a.sessionID = ""
	a.verifiedPhone = ""
	a.mu.Unlock()
}

// RequestOTP sends phone to the service. Success stores the opaque session
// id and moves to OtpSent; failure rolls back to the pre-request phase.
func (a *Aggregator) RequestOTP(ctx context.Context, phone string) (SendOTPResult, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return SendOTPResult{}, fmt.Errorf("%w: missing phone number", ErrOtpSend)
	}

	a.mu.Lock()
	prev := a.phase
	a.phase = PhasePhonePending
	a.mu.Unlock()

	res, err := a.client.SendOTP(ctx, phone)
	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.phase = prev
		return SendOTPResult{}, fmt.Errorf("%w: %v", ErrOtpSend, err)
	}

	a.sessionID = res.SessionID
	a.verifiedPhone = ""
	a.phase = PhaseOtpSent
	return res, nil
}

// VerifyOTP checks the code format locally first; a malformed code never
// reaches the network. Service rejection keeps the session in OtpSent so the
// user can retry.
func (a *Aggregator) VerifyOTP(ctx context.Context, phone, code string) error {
	a.mu.Lock()
	sessionID := a.sessionID
	a.mu.Unlock()

	if sessionID == "" {
		return fmt.Errorf("%w: request an OTP first", ErrOtpVerify)
	}
	if !otpPattern.MatchString(code) {
		return ErrInvalidOtpFormat
	}

	if err := a.client.VerifyOTP(ctx, sessionID, code); err != nil {
		return fmt.Errorf("%w: %v", ErrOtpVerify, err)
	}

	a.mu.Lock()
	a.verifiedPhone = strings.TrimSpace(phone)
	a.phase = PhasePhoneVerified
	a.mu.Unlock()
	return nil
}

// Submit builds the payload for the current context, writes it to the order
// service, and polls for confirmation. On the first confirmed response the
// session moves to Confirmed and a cart-context order clears the cart.
// A hard send failure moves to Failed; an unobserved write rolls back to
// PhoneVerified and returns ErrNotConfirmed so the caller can retry later.
func (a *Aggregator) Submit(ctx context.Context, user UserDetails, qtyKg float64) (Payload, error) {
	a.mu.Lock()
	if a.phase != PhasePhoneVerified {
		a.mu.Unlock()
		return Payload{}, ErrNotVerified
	}
	kind := a.kind
	presetID := a.presetID
	sessionID := a.sessionID
	attempts := a.pollAttempts
	interval := a.pollInterval
	a.phase = PhaseSubmitting
	a.mu.Unlock()

	payload, err := a.buildPayload(kind, presetID, user, qtyKg)
	if err != nil {
		a.setPhase(PhasePhoneVerified)
		return Payload{}, err
	}

	if err := a.client.PlaceOrder(ctx, sessionID, payload); err != nil {
		a.setPhase(PhaseFailed)
		return Payload{}, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	for i := 0; i < attempts; i++ {
		found, err := a.client.CheckOrder(ctx, sessionID, payload.ID)
		if err == nil && found {
			a.setPhase(PhaseConfirmed)
			if kind == KindCart {
				a.cart.Clear()
			}
			return payload, nil
		}
		select {
		case <-ctx.Done():
			a.setPhase(PhasePhoneVerified)
			return Payload{}, fmt.Errorf("%w: %v", ErrNotConfirmed, ctx.Err())
		case <-time.After(interval):
		}
	}

	// Not observed within the poll budget. Surface the service's last
	// diagnostic when one exists; the write may still have landed.
	a.setPhase(PhasePhoneVerified)
	if msg, err := a.client.LastError(ctx, sessionID); err == nil && msg != "" {
		return Payload{}, fmt.Errorf("%w: server error: %s", ErrNotConfirmed, msg)
	}
	return Payload{}, ErrNotConfirmed
}

// FetchOrders lists the orders recorded against the verified phone session.
// An empty list is a valid result.
func (a *Aggregator) FetchOrders(ctx context.Context) ([]Summary, error) {
	a.mu.Lock()
	sessionID := a.sessionID
	verified := a.verifiedPhone != ""
	a.mu.Unlock()

	if sessionID == "" || !verified {
		return nil, ErrNotVerified
	}
	orders, err := a.client.Orders(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []Summary{}
	}
	return orders, nil
}

func (a *Aggregator) setPhase(p Phase) {
	a.mu.Lock()
	a.phase = p
	a.mu.Unlock()
}

func (a *Aggregator) buildPayload(kind Kind, presetID string, user UserDetails, qtyKg float64) (Payload, error) {
	p := Payload{
		ID:   NewOrderID(a.now()),
		Date: a.now().UTC().Format(time.RFC3339),
		User: user,
	}

	switch kind {
	case KindCart:
		snap := a.cart.Snapshot()
		if len(snap.Items) == 0 {
			return Payload{}, ErrEmptyCart
		}
		p.Items = snap.Items

		var lines []string
		for _, it := range snap.Items {
			lines = append(lines, fmt.Sprintf("%s (%s) ₹%d", it.Name, formatKg(it.QtyKg), it.TotalPrice))
		}
		nutrition := "Ingredient-based benefits"
		if rich := cartRichIn(snap.Items); len(rich) > 0 {
			nutrition = "Rich in: " + strings.Join(rich, ", ")
		}
		p.Product = Product{
			Type:        "Cart Order",
			Name:        fmt.Sprintf("Cart (%d items)", len(snap.Items)),
			Quantity:    formatKg(snap.Totals.TotalKg),
			Ingredients: strings.Join(lines, " | "),
			Nutrition:   nutrition,
			TotalPrice:  snap.Totals.TotalPrice,
		}

	case KindPreset:
		preset, ok := a.cat.FindPreset(presetID)
		if !ok {
			return Payload{}, fmt.Errorf("%w: %s", ErrPresetNotFound, presetID)
		}
		q := cart.ClampQtyKg(defaultQty(qtyKg, 1))
		p.Product = Product{
			Type:        "Signature Laddoo",
			Name:        preset.Name,
			Quantity:    formatKg(q),
			Ingredients: formatPresetIngredients(a.cat, preset),
			Nutrition:   "Approx. values (per 100g) shown on site",
			TotalPrice:  roundPrice(float64(preset.PricePerKg) * q),
			UnitPrice:   preset.PricePerKg,
		}

	default: // custom
		state := a.engine.Snapshot()
		unitPrice := a.engine.Price()
		highlights := a.engine.Highlights()
		q := cart.ClampQtyKg(defaultQty(qtyKg, state.QuantityKg))

		ingredients := []string{
			"Base: " + state.Base,
			"Fat: " + state.Fat,
			"Sweetener: " + state.Sweetener,
		}
		ingredients = append(ingredients, highlights.SelectedNames...)

		nutrition := "Ingredient-based benefits"
		if len(highlights.RichIn) > 0 {
			nutrition = "Rich in: " + strings.Join(highlights.RichIn, ", ")
		}
		p.Product = Product{
			Type:        "Custom Laddoo",
			Name:        "Custom Mix",
			Quantity:    formatKg(q),
			Ingredients: strings.Join(ingredients, ", "),
			Nutrition:   nutrition,
			TotalPrice:  roundPrice(float64(unitPrice) * q),
			UnitPrice:   unitPrice,
		}
	}

	log.Printf("order: built payload id=%s kind=%s total=%d", p.ID, kind, p.Product.TotalPrice)
	return p, nil
}

func defaultQty(q, fallback float64) float64 {
	if q <= 0 {
		return fallback
	}
	return q
}

func roundPrice(v float64) int {
	return int(math.Round(v))
}
