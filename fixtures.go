package blazebook

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ExpectedOutcome is the reference data scenarios assert a booking against.
type ExpectedOutcome struct {
	Amount   string `yaml:"amount"`
	Currency string `yaml:"currency"`
	Status   string `yaml:"status"`
}

// Canonical test data, mirroring the demo site's stable behavior for the
// Paris to Rome route.
var (
	CanonicalRoute = RouteQuery{Origin: "Paris", Destination: "Rome"}

	CanonicalCustomer = CustomerRecord{
		Name:        "John Smith",
		Address:     "123 Main Street",
		City:        "New York",
		State:       "NY",
		ZipCode:     "10001",
		CardType:    "Visa",
		CardNumber:  "4111111111111111",
		ExpiryMonth: "12",
		ExpiryYear:  "2027",
		NameOnCard:  "John Smith",
	}

	AlternativeCustomer = CustomerRecord{
		Name:        "Jane Doe",
		Address:     "456 Oak Avenue",
		City:        "Los Angeles",
		State:       "CA",
		ZipCode:     "90210",
		CardType:    "American Express",
		CardNumber:  "378282246310005",
		ExpiryMonth: "06",
		ExpiryYear:  "2028",
		NameOnCard:  "Jane Doe",
	}

	CanonicalOutcome = ExpectedOutcome{
		Amount:   "555",
		Currency: "USD",
		Status:   "PendingCapture",
	}

	// KnownRoutes are routes the demo site always returns flights for.
	KnownRoutes = []RouteQuery{
		{Origin: "Paris", Destination: "Rome"},
		{Origin: "Boston", Destination: "London"},
		{Origin: "San Diego", Destination: "New York"},
	}
)

// LoadCustomers reads extra customer records from a YAML file, so suites can
// extend the canned data without recompiling.
func LoadCustomers(path string) ([]CustomerRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	var records []CustomerRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse fixtures %s: %w", path, err)
	}
	return records, nil
}
