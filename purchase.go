package blazebook

import "strings"

// CustomerRecord is the payment form input. Values pass through unchanged;
// any validation happens on the remote application.
type CustomerRecord struct {
	Name        string `yaml:"name"`
	Address     string `yaml:"address"`
	City        string `yaml:"city"`
	State       string `yaml:"state"`
	ZipCode     string `yaml:"zipCode"`
	CardType    string `yaml:"cardType"`
	CardNumber  string `yaml:"cardNumber"`
	ExpiryMonth string `yaml:"expiryMonth"`
	ExpiryYear  string `yaml:"expiryYear"`
	NameOnCard  string `yaml:"nameOnCard"`
}

// OfferSummary is the flight recap rendered on the purchase page.
type OfferSummary struct {
	Airline      string
	FlightNumber string
	Price        string
	Fees         string
	TotalCost    string
}

// PurchaseForm models the payment/booking form.
type PurchaseForm struct {
	dom        DomAccessor
	heading    string
	paragraphs string
	total      string
	name       string
	address    string
	city       string
	state      string
	zip        string
	cardType   string
	cardNumber string
	month      string
	year       string
	nameOnCard string
	remember   string
	submit     string
}

func NewPurchaseForm(dom DomAccessor) *PurchaseForm {
	return &PurchaseForm{
		dom:        dom,
		heading:    `h2`,
		paragraphs: `p`,
		total:      `em`,
		name:       `input[name="inputName"]`,
		address:    `input[name="address"]`,
		city:       `input[name="city"]`,
		state:      `input[name="state"]`,
		zip:        `input[name="zipCode"]`,
		cardType:   `select[name="cardType"]`,
		cardNumber: `input[name="creditCardNumber"]`,
		month:      `input[name="creditCardMonth"]`,
		year:       `input[name="creditCardYear"]`,
		nameOnCard: `input[name="nameOnCard"]`,
		remember:   `input[name="rememberMe"]`,
		submit:     `input[type="submit"]`,
	}
}

// Loaded reports whether the purchase heading is visible.
func (p *PurchaseForm) Loaded() bool { return p.dom.IsShown(p.heading) }

// Heading returns the purchase page heading text.
func (p *PurchaseForm) Heading() string { return p.dom.ReadText(p.heading) }

// Summary scans the page's paragraphs for the four labeled lines and reads
// the separately rendered total. A missing label yields an empty field, never
// an error; downstream assertions decide whether that matters.
func (p *PurchaseForm) Summary() OfferSummary {
	lines := p.dom.Texts(p.paragraphs)
	return OfferSummary{
		Airline:      labeledValue(lines, "Airline:"),
		FlightNumber: labeledValue(lines, "Flight Number:"),
		Price:        labeledValue(lines, "Price:"),
		Fees:         labeledValue(lines, "Arbitrary Fees and Taxes:"),
		TotalCost:    p.dom.ReadText(p.total),
	}
}

// labeledValue finds the first line carrying the label and strips it.
func labeledValue(lines []string, label string) string {
	for _, line := range lines {
		if i := strings.Index(line, label); i >= 0 {
			return strings.TrimSpace(line[i+len(label):])
		}
	}
	return ""
}

// Fill clears then sets each field in a fixed order. Card type is a
// selection, not free text.
func (p *PurchaseForm) Fill(c CustomerRecord) error {
	fields := []struct{ selector, value string }{
		{p.name, c.Name},
		{p.address, c.Address},
		{p.city, c.City},
		{p.state, c.State},
		{p.zip, c.ZipCode},
	}
	for _, f := range fields {
		if err := p.dom.Fill(f.selector, f.value); err != nil {
			return err
		}
	}
	if err := p.dom.SelectValue(p.cardType, c.CardType); err != nil {
		return err
	}
	fields = []struct{ selector, value string }{
		{p.cardNumber, c.CardNumber},
		{p.month, c.ExpiryMonth},
		{p.year, c.ExpiryYear},
		{p.nameOnCard, c.NameOnCard},
	}
	for _, f := range fields {
		if err := p.dom.Fill(f.selector, f.value); err != nil {
			return err
		}
	}
	return nil
}

// Values reads back the current state of every form field, in fill order.
func (p *PurchaseForm) Values() (CustomerRecord, error) {
	var c CustomerRecord
	reads := []struct {
		selector string
		dst      *string
	}{
		{p.name, &c.Name},
		{p.address, &c.Address},
		{p.city, &c.City},
		{p.state, &c.State},
		{p.zip, &c.ZipCode},
		{p.cardType, &c.CardType},
		{p.cardNumber, &c.CardNumber},
		{p.month, &c.ExpiryMonth},
		{p.year, &c.ExpiryYear},
		{p.nameOnCard, &c.NameOnCard},
	}
	for _, rd := range reads {
		v, err := p.dom.InputValue(rd.selector)
		if err != nil {
			return CustomerRecord{}, err
		}
		*rd.dst = v
	}
	return c, nil
}

// RememberMe ticks the remember-me checkbox.
func (p *PurchaseForm) RememberMe() error {
	return p.dom.Check(p.remember)
}

// Submit clicks the purchase action and waits for the confirmation page.
func (p *PurchaseForm) Submit() error {
	if err := p.dom.Click(p.submit); err != nil {
		return err
	}
	return p.dom.AwaitStable()
}

// Purchase fills the form and submits in one step.
func (p *PurchaseForm) Purchase(c CustomerRecord) error {
	if err := p.Fill(c); err != nil {
		return err
	}
	return p.Submit()
}
