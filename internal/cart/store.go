package cart

// Store persists the full item list wholesale under a fixed key.
// Cart depends ONLY on this interface.
type Store interface {
	Load() ([]Item, error)
	Save(items []Item) error
}

// storageKey matches the record shape the storefront persisted:
// { "items": [...] } under a single fixed key.
const storageKey = "laddoo_cart_v1"

type storedCart struct {
	Items []Item `json:"items"`
}
