package ordersvc

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
)

// Handler serves the webhook-style action contract the storefront client
// speaks: GET with an `action` query parameter (plus optional JSONP
// `callback` for legacy script-injection transports) and POST for the
// placeOrder write.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleAction dispatches GET ?action=... calls.
func (h *Handler) HandleAction(c *gin.Context) {
	action := c.Query("action")

	var resp gin.H
	switch action {
	case "sendOtp":
		sessionID, testOtp, err := h.service.SendOTP(c.Request.Context(), c.Query("phone"))
		if err != nil {
			resp = gin.H{"ok": false, "error": err.Error()}
			break
		}
		resp = gin.H{"ok": true, "sessionId": sessionID}
		if testOtp != "" {
			resp["testOtp"] = testOtp
		}

	case "verifyOtp":
		err := h.service.VerifyOTP(c.Request.Context(), c.Query("sessionId"), c.Query("otp"))
		if err != nil {
			resp = gin.H{"ok": false, "error": err.Error()}
			break
		}
		resp = gin.H{"ok": true}

	case "checkOrder":
		found, err := h.service.CheckOrder(c.Request.Context(), c.Query("sessionId"), c.Query("orderId"))
		if err != nil {
			resp = gin.H{"ok": false, "error": err.Error()}
			break
		}
		resp = gin.H{"ok": true, "found": found}

	case "getLastError":
		msg, _ := h.service.LastError(c.Request.Context(), c.Query("sessionId"))
		resp = gin.H{"ok": true}
		if msg != "" {
			resp["message"] = msg
		}

	case "getOrders":
		orders, err := h.service.Orders(c.Request.Context(), c.Query("sessionId"))
		if err != nil {
			resp = gin.H{"ok": false, "error": err.Error()}
			break
		}
		resp = gin.H{"ok": true, "orders": orders}

	default:
		resp = gin.H{"ok": false, "error": "unknown action"}
	}

	h.respond(c, resp)
}

type placeOrderRequest struct {
	Action     string          `json:"action"`
	RequireOtp bool            `json:"requireOtp"`
	SessionID  string          `json:"sessionId"`
	Order      json.RawMessage `json:"order"`
}

// HandlePlaceOrder accepts the POSTed order write. The client treats this as
// fire-and-forget and confirms via checkOrder, but errors are still reported
// for transports that read the response.
func (h *Handler) HandlePlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Action != "placeOrder" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request"})
		return
	}

	if err := h.service.PlaceOrder(c.Request.Context(), req.SessionID, req.Order); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrSessionUnknown) || errors.Is(err, ErrNotVerified) {
			status = http.StatusForbidden
		}
		c.JSON(status, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// HandleAllOrders serves the admin order listing.
func (h *Handler) HandleAllOrders(c *gin.Context) {
	orders, err := h.service.AllOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// jsonpCallback restricts callback names to identifier characters so the
// query value can never inject script into the response body.
var jsonpCallback = regexp.MustCompile(`^[A-Za-z0-9_.$]+$`)

// respond writes JSON, or a JSONP script when a valid callback is requested.
func (h *Handler) respond(c *gin.Context, resp gin.H) {
	if cb := c.Query("callback"); cb != "" && jsonpCallback.MatchString(cb) {
		body, err := json.Marshal(resp)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "text/javascript; charset=utf-8",
			[]byte(fmt.Sprintf("%s(%s)", cb, body)))
		return
	}
	c.JSON(http.StatusOK, resp)
}
