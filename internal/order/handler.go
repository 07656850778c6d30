package order

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	agg *Aggregator
}

func NewHandler(agg *Aggregator) *Handler {
	return &Handler{agg: agg}
}

func (h *Handler) GetPhase(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"phase": h.agg.Phase()})
}

func (h *Handler) SetContext(c *gin.Context) {
	var req struct {
		Kind     string `json:"kind"`
		PresetID string `json:"presetId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.agg.SetContext(Kind(req.Kind), req.PresetID); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrPresetNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"phase": h.agg.Phase()})
}

func (h *Handler) Reset(c *gin.Context) {
	h.agg.Reset()
	c.JSON(http.StatusOK, gin.H{"phase": h.agg.Phase()})
}

func (h *Handler) SendOtp(c *gin.Context) {
	var req struct {
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res, err := h.agg.RequestOTP(c.Request.Context(), req.Phone)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"phase": h.agg.Phase()}
	if res.TestOTP != "" {
		resp["testOtp"] = res.TestOTP
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) VerifyOtp(c *gin.Context) {
	var req struct {
		Phone string `json:"phone"`
		Code  string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.agg.VerifyOTP(c.Request.Context(), req.Phone, req.Code); err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, ErrInvalidOtpFormat) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"phase": h.agg.Phase()})
}

func (h *Handler) Submit(c *gin.Context) {
	var req struct {
		Name    string  `json:"name"`
		Phone   string  `json:"phone"`
		Address string  `json:"address"`
		Pincode string  `json:"pincode"`
		QtyKg   float64 `json:"qtyKg"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	payload, err := h.agg.Submit(c.Request.Context(), UserDetails{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Pincode: req.Pincode,
	}, req.QtyKg)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotVerified):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, ErrEmptyCart), errors.Is(err, ErrPresetNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNotConfirmed):
			// Not a definite failure: the write may have landed. The caller
			// should retry later rather than resubmit immediately.
			c.JSON(http.StatusAccepted, gin.H{"status": "unconfirmed", "error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"phase":   h.agg.Phase(),
		"order":   payload,
		"helpUrl": WhatsAppHelpURL(businessPhone(), payload),
	})
}

// businessPhone is the support contact used in the post-order help link.
func businessPhone() string {
	if p := os.Getenv("WHATSAPP_BUSINESS_PHONE"); p != "" {
		return p
	}
	return "919811150234"
}

func (h *Handler) History(c *gin.Context) {
	orders, err := h.agg.FetchOrders(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNotVerified) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
