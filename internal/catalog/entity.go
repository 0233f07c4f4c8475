package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Entity is the category label a method belongs to. It drives the badge
// color in the API reference table.
type Entity string

// Known entity labels, in the order they appear on the page.
const (
	EntityWallet            Entity = "Wallet"
	EntityCharge            Entity = "Charge"
	EntityStaticCharge      Entity = "Static Charge"
	EntityWithdrawalRequest Entity = "Withdrawal Request"
	EntityLightningAddress  Entity = "Lightning Address"
	EntityGamertag          Entity = "ZBD Gamertag"
	EntityUtility           Entity = "Utility"
	EntityKeysend           Entity = "Keysend"
	EntityPayment           Entity = "Payment"
)

var entities = []Entity{
	EntityWallet,
	EntityCharge,
	EntityStaticCharge,
	EntityWithdrawalRequest,
	EntityLightningAddress,
	EntityGamertag,
	EntityUtility,
	EntityKeysend,
	EntityPayment,
}

// Entities returns the known entity labels in page order.
func Entities() []Entity {
	out := make([]Entity, len(entities))
	copy(out, entities)
	return out
}

// Known reports whether e is one of the fixed entity labels.
func (e Entity) Known() bool {
	for _, known := range entities {
		if e == known {
			return true
		}
	}
	return false
}

// Slug returns the URL form of the label, e.g. "static-charge".
func (e Entity) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(e)), " ", "-")
}

func (e Entity) String() string {
	return string(e)
}

// Color is an RGBA display color.
type Color struct {
	R, G, B uint8
	A       float64
}

// String renders the color in CSS rgba() notation.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

// Hex renders the color as #rrggbb, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// DefaultColor is used for any label outside the known set.
var DefaultColor = Color{R: 82, G: 82, B: 82, A: 1}

// EntityColor maps an entity label to its badge color. Unknown labels get
// DefaultColor.
func EntityColor(e Entity) Color {
	switch e {
	case EntityWallet:
		return Color{R: 82, G: 82, B: 82, A: 1}
	case EntityCharge:
		return Color{R: 121, G: 91, B: 6, A: 1}
	case EntityStaticCharge:
		return Color{R: 20, G: 78, B: 6, A: 1}
	case EntityWithdrawalRequest:
		return Color{R: 58, G: 56, B: 108, A: 1}
	case EntityLightningAddress:
		return Color{R: 124, G: 78, B: 134, A: 1}
	case EntityGamertag:
		return Color{R: 121, G: 33, B: 33, A: 1}
	case EntityUtility:
		return Color{R: 104, G: 123, B: 27, A: 1}
	case EntityKeysend:
		return Color{R: 27, G: 106, B: 128, A: 1}
	case EntityPayment:
		return Color{R: 120, G: 37, B: 151, A: 1}
	default:
		return DefaultColor
	}
}

// ParseEntity resolves a label or slug to a known entity, ignoring case.
func ParseEntity(s string) (Entity, error) {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(s))
	for _, e := range entities {
		if needle == fold.String(string(e)) || needle == fold.String(e.Slug()) {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEntity, s)
}
