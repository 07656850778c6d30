package ordersvc

import "time"

// OtpSession is one phone-verification session. The session id is the
// opaque handle clients carry through verification and submission.
type OtpSession struct {
	ID        string
	Phone     string
	Code      string
	Verified  bool
	Attempts  int
	CreatedAt time.Time
	ExpiresAt time.Time
}

// StoredOrder is one row of the order sheet.
type StoredOrder struct {
	OrderID     string
	SessionID   string
	Phone       string
	ProductName string
	QuantityKg  float64
	Total       int
	Date        string
	Payload     []byte // full order JSON as received
	CreatedAt   time.Time
}
