package blazebook

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Offer is one row of the flight results table.
type Offer struct {
	FlightNumber string
	Airline      string
	Departure    string
	Arrival      string
	Price        string
}

// ResultsList models the search-results table.
type ResultsList struct {
	dom     DomAccessor
	heading string
	rows    string
	choose  string
}

func NewResultsList(dom DomAccessor) *ResultsList {
	return &ResultsList{
		dom:     dom,
		heading: `h3`,
		rows:    `table tbody tr`,
		choose:  `input[value="Choose This Flight"]`,
	}
}

// Loaded reports whether the results heading is visible.
func (r *ResultsList) Loaded() bool { return r.dom.IsShown(r.heading) }

// Heading returns the "Flights from X to Y" heading text.
func (r *ResultsList) Heading() string { return r.dom.ReadText(r.heading) }

// Count returns the number of result rows.
func (r *ResultsList) Count() int { return r.dom.Count(r.rows) }

// Offers reads the table fresh on every call, one Offer per row in document
// order. Cell positions are fixed: 1=flight number, 2=airline, 3=departure,
// 4=arrival, 5=price. A zero-row page yields an empty slice, not an error.
func (r *ResultsList) Offers() []Offer {
	count := r.Count()
	offers := make([]Offer, 0, count)
	for i := 0; i < count; i++ {
		offers = append(offers, Offer{
			FlightNumber: r.cell(i, 1),
			Airline:      r.cell(i, 2),
			Departure:    r.cell(i, 3),
			Arrival:      r.cell(i, 4),
			Price:        r.cell(i, 5),
		})
	}
	return offers
}

func (r *ResultsList) cell(row, col int) string {
	return r.dom.ReadText(fmt.Sprintf("table tbody tr:nth-child(%d) td:nth-child(%d)", row+1, col+1))
}

// Cheapest returns the index and offer with the lowest numeric price. Ties
// keep the earliest row. An empty listing yields ErrEmptyListing.
func (r *ResultsList) Cheapest() (int, Offer, error) {
	return cheapestOffer(r.Offers())
}

func cheapestOffer(offers []Offer) (int, Offer, error) {
	if len(offers) == 0 {
		return 0, Offer{}, ErrEmptyListing
	}
	best := 0
	bestPrice := priceValue(offers[0].Price)
	for i := 1; i < len(offers); i++ {
		if p := priceValue(offers[i].Price); p < bestPrice {
			best, bestPrice = i, p
		}
	}
	return best, offers[best], nil
}

// priceValue strips a leading currency symbol and parses the remainder.
// Unparseable prices compare as +Inf so they never win the scan.
func priceValue(s string) float64 {
	s = strings.TrimLeft(strings.TrimSpace(s), "$€£")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.Inf(1)
	}
	return v
}

// Choose clicks the row's "Choose This Flight" control and waits for the
// purchase page to settle.
func (r *ResultsList) Choose(index int) error {
	count := r.Count()
	if index < 0 || index >= count {
		return &IndexOutOfRangeError{Index: index, Count: count}
	}
	if err := r.dom.ClickNth(r.choose, index); err != nil {
		return err
	}
	return r.dom.AwaitStable()
}

// ChooseCheapest picks the cheapest offer and selects it.
func (r *ResultsList) ChooseCheapest() (Offer, error) {
	index, offer, err := r.Cheapest()
	if err != nil {
		return Offer{}, err
	}
	if err := r.Choose(index); err != nil {
		return Offer{}, err
	}
	return offer, nil
}
