package order

import (
	"fmt"
	"math/rand"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ankurdhir/laddu/internal/cart"
	"github.com/ankurdhir/laddu/internal/catalog"
)

// UserDetails are the customer contact fields collected at checkout.
type UserDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Pincode string `json:"pincode"`
}

// Product is the flat order descriptor written to the order sheet.
type Product struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Quantity    string `json:"quantity"`
	Ingredients string `json:"ingredients"`
	Nutrition   string `json:"nutrition"`
	TotalPrice  int    `json:"totalPrice"`
	UnitPrice   int    `json:"unitPrice,omitempty"`
}

// Payload is the order snapshot assembled at submission time and never
// mutated afterwards. Cart orders additionally carry normalized line items.
type Payload struct {
	ID      string      `json:"id"`
	Date    string      `json:"date"`
	User    UserDetails `json:"user"`
	Product Product     `json:"product"`
	Items   []cart.Item `json:"items,omitempty"`
}

const orderIDPrefix = "LAD"

// NewOrderID builds a short human-shareable token:
// PREFIX-<base36 ms timestamp>-<5-char base36 random>, uppercased. Unique
// with overwhelming probability but not guaranteed; the confirmation poll is
// the only integrity check.
func NewOrderID(now time.Time) string {
	ts := strconv.FormatInt(now.UnixMilli(), 36)
	suffix := randBase36(5)
	return strings.ToUpper(fmt.Sprintf("%s-%s-%s", orderIDPrefix, ts, suffix))
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func randBase36(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.Intn(len(base36))]
	}
	return string(b)
}

// formatKg renders quantities the way the sheet expects: "1kg", "1.5kg".
func formatKg(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64) + "kg"
}

// formatPresetIngredients renders the historical preset recipe, binder slots
// first, then percentage entries in catalog order for a stable string.
func formatPresetIngredients(cat *catalog.Catalog, p catalog.Preset) string {
	if len(p.Config.Ingredients) == 0 {
		return "Standard recipe"
	}
	var parts []string
	if p.Config.Base != "" {
		parts = append(parts, "Base: "+p.Config.Base)
	}
	if p.Config.Fat != "" {
		parts = append(parts, "Fat: "+p.Config.Fat)
	}
	if p.Config.Sweetener != "" {
		parts = append(parts, "Sweetener: "+p.Config.Sweetener)
	}
	for _, ing := range cat.Pickables() {
		if pct := p.Config.Ingredients[ing.ID]; pct > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d%%", ing.ID, pct))
		}
	}
	return strings.Join(parts, ", ")
}

// cartRichIn aggregates a cart-level "rich in" summary: the union of each
// item's leading highlight tags, capped at 8.
func cartRichIn(items []cart.Item) []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range items {
		if it.Highlights == nil {
			continue
		}
		lead := it.Highlights.RichIn
		if len(lead) > 3 {
			lead = lead[:3]
		}
		for _, tag := range lead {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	if len(out) > 8 {
		out = out[:8]
	}
	return out
}

// WhatsAppHelpURL builds a pre-filled support chat link for a submitted
// order.
func WhatsAppHelpURL(businessPhone string, p Payload) string {
	var b strings.Builder
	b.WriteString("Hi! I need help with my order.\n\n")
	fmt.Fprintf(&b, "Order ID: %s\n", p.ID)
	fmt.Fprintf(&b, "Name: %s\n", p.User.Name)
	fmt.Fprintf(&b, "Phone: %s\n\n", p.User.Phone)
	fmt.Fprintf(&b, "%s: %s (%s)\n", p.Product.Type, p.Product.Name, p.Product.Quantity)
	if len(p.Items) > 0 {
		b.WriteString("\nItems:\n")
		for _, it := range p.Items {
			fmt.Fprintf(&b, "- %s (%skg) ₹%d\n", it.Name, strconv.FormatFloat(it.QtyKg, 'f', -1, 64), it.TotalPrice)
		}
	}
	fmt.Fprintf(&b, "\nTotal: ₹%d\n", p.Product.TotalPrice)
	return "https://wa.me/" + businessPhone + "?text=" + url.QueryEscape(b.String())
}
