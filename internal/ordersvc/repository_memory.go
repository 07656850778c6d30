package ordersvc

import (
	"context"
	"errors"
	"sort"
	"sync"
)

var errSessionNotFound = errors.New("session not found")

// MemoryRepository keeps sessions and orders in process memory. Used in
// tests and single-node deployments without a database.
type MemoryRepository struct {
	mu         sync.Mutex
	sessions   map[string]OtpSession
	orders     []StoredOrder
	lastErrors map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sessions:   make(map[string]OtpSession),
		lastErrors: make(map[string]string),
	}
}

func (r *MemoryRepository) SaveSession(_ context.Context, s *OtpSession) error {
	r.mu.Lock()
	r.sessions[s.ID] = *s
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepository) FindSession(_ context.Context, id string) (*OtpSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, errSessionNotFound
	}
	copy := s
	return &copy, nil
}

func (r *MemoryRepository) UpdateSession(_ context.Context, s *OtpSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.ID]; !ok {
		return errSessionNotFound
	}
	r.sessions[s.ID] = *s
	return nil
}

func (r *MemoryRepository) SaveOrder(_ context.Context, o *StoredOrder) error {
	r.mu.Lock()
	r.orders = append(r.orders, *o)
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepository) HasOrder(_ context.Context, orderID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.OrderID == orderID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) OrdersByPhone(_ context.Context, phone string) ([]StoredOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []StoredOrder
	for _, o := range r.orders {
		if o.Phone == phone {
			out = append(out, o)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *MemoryRepository) AllOrders(_ context.Context) ([]StoredOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]StoredOrder{}, r.orders...)
	sortNewestFirst(out)
	return out, nil
}

func (r *MemoryRepository) SetLastError(_ context.Context, sessionID, message string) error {
	r.mu.Lock()
	r.lastErrors[sessionID] = message
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepository) LastError(_ context.Context, sessionID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErrors[sessionID], nil
}

func sortNewestFirst(orders []StoredOrder) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
