package blazebook

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"
)

// ConfirmationRecord is the parsed result of a completed purchase. Created
// once per booking, read-only thereafter.
type ConfirmationRecord struct {
	TransactionID string
	Status        string
	Amount        string
	Currency      string
	CardNumber    string
	AuthCode      string
	Date          string
}

// amountPattern splits the combined "555 USD" cell into number and currency.
var amountPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([A-Z]{3})`)

// nonAmount matches everything that cannot be part of a numeric amount.
var nonAmount = regexp.MustCompile(`[^\d.]`)

// splitAmount extracts amount and currency from the combined cell text. When
// no three-letter currency token is present, digits are kept as-is and the
// currency defaults to USD — the demo site only ever renders USD, so the
// fallback is a documented assumption, not a guarantee.
func splitAmount(text string) (amount, currency string) {
	if m := amountPattern.FindStringSubmatch(text); m != nil {
		return m[1], m[2]
	}
	return nonAmount.ReplaceAllString(text, ""), "USD"
}

// successText is the sole success predicate for a booking; no HTTP status or
// other signal is consulted.
const successText = "Thank you for your purchase"

// ConfirmationView models the post-booking receipt.
type ConfirmationView struct {
	dom DomAccessor
	log *slog.Logger

	heading    string
	table      string
	idCell     string
	statusCell string
	amountCell string
	cardCell   string
	authCell   string
	dateCell   string
	jsonBlock  string
}

func NewConfirmationView(dom DomAccessor) *ConfirmationView {
	return &ConfirmationView{
		dom:        dom,
		log:        slog.Default(),
		heading:    `h1`,
		table:      `table`,
		idCell:     `tr:has-text("Id") td:nth-child(2)`,
		statusCell: `tr:has-text("Status") td:nth-child(2)`,
		amountCell: `tr:has-text("Amount") td:nth-child(2)`,
		cardCell:   `tr:has-text("Card Number") td:nth-child(2)`,
		authCell:   `tr:has-text("Auth Code") td:nth-child(2)`,
		dateCell:   `tr:has-text("Date") td:nth-child(2)`,
		jsonBlock:  `pre`,
	}
}

// Loaded reports whether the receipt heading is visible.
func (c *ConfirmationView) Loaded() bool { return c.dom.IsShown(c.heading) }

// Heading returns the receipt heading text.
func (c *ConfirmationView) Heading() string { return c.dom.ReadText(c.heading) }

// Confirmed reports whether the heading carries the fixed thank-you text.
func (c *ConfirmationView) Confirmed() bool {
	return strings.Contains(c.Heading(), successText)
}

// Extract reads the six labeled cells and splits the combined amount/currency
// field. A reshaped table or renamed label degrades to empty fields rather
// than failing here; callers must assert non-emptiness explicitly.
func (c *ConfirmationView) Extract() ConfirmationRecord {
	amount, currency := splitAmount(c.dom.ReadText(c.amountCell))
	return ConfirmationRecord{
		TransactionID: c.dom.ReadText(c.idCell),
		Status:        c.dom.ReadText(c.statusCell),
		Amount:        amount,
		Currency:      currency,
		CardNumber:    c.dom.ReadText(c.cardCell),
		AuthCode:      c.dom.ReadText(c.authCell),
		Date:          c.dom.ReadText(c.dateCell),
	}
}

// EmbeddedJSON parses the last preformatted block on the page. Missing or
// malformed blocks come back as (nil, false) with a diagnostic log entry;
// parse errors never propagate.
func (c *ConfirmationView) EmbeddedJSON() (map[string]any, bool) {
	text, ok := c.dom.LastText(c.jsonBlock)
	if !ok {
		c.log.Debug("confirmation page has no JSON block")
		return nil, false
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		c.log.Warn("embedded JSON did not parse", "err", err)
		return nil, false
	}
	return payload, true
}

// Evidence bundles the captures taken for one confirmed booking.
type Evidence struct {
	FullPage []byte
	Table    []byte
	Record   ConfirmationRecord
}

// CaptureEvidence stores a full-page and a table-scoped screenshot next to
// the extracted record. Side-effecting convenience for reports, not for
// assertions.
func (c *ConfirmationView) CaptureEvidence(label string) (Evidence, error) {
	full, err := c.dom.Capture("confirmation-" + label)
	if err != nil {
		return Evidence{}, err
	}
	table, err := c.dom.CaptureElement(c.table, "confirmation-table-"+label)
	if err != nil {
		return Evidence{}, err
	}
	return Evidence{FullPage: full, Table: table, Record: c.Extract()}, nil
}
