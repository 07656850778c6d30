package ordersvc

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	SaveSession(ctx context.Context, s *OtpSession) error
	FindSession(ctx context.Context, id string) (*OtpSession, error)
	UpdateSession(ctx context.Context, s *OtpSession) error

	SaveOrder(ctx context.Context, o *StoredOrder) error
	HasOrder(ctx context.Context, orderID string) (bool, error)
	OrdersByPhone(ctx context.Context, phone string) ([]StoredOrder, error)
	AllOrders(ctx context.Context) ([]StoredOrder, error)

	SetLastError(ctx context.Context, sessionID, message string) error
	LastError(ctx context.Context, sessionID string) (string, error)
}
