package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OtpSent counts OTP send attempts by outcome.
	OtpSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "laddu_otp_sent_total",
		Help: "OTP send attempts by outcome",
	}, []string{"outcome"})

	// OtpVerified counts OTP verification attempts by outcome.
	OtpVerified = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "laddu_otp_verified_total",
		Help: "OTP verification attempts by outcome",
	}, []string{"outcome"})

	// OrdersPlaced counts orders written to the sheet by product type.
	OrdersPlaced = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "laddu_orders_placed_total",
		Help: "Orders recorded by product type",
	}, []string{"type"})
)
