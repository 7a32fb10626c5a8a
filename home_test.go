package blazebook

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchSequence(t *testing.T) {
	dom := newStubDOM()
	form := NewHomeSearchForm(dom)

	require.NoError(t, form.Search(RouteQuery{Origin: "Paris", Destination: "Rome"}))
	require.Equal(t, []string{
		`select select[name="fromPort"]=Paris`,
		`select select[name="toPort"]=Rome`,
		`click input[type="submit"]`,
		"await",
	}, dom.ops)
}

func TestSearchUnknownCityStopsEarly(t *testing.T) {
	dom := newStubDOM()
	missing := &ElementNotFoundError{Selector: `select[name="fromPort"]`, Err: errors.New("no option")}
	dom.failOn[`select[name="fromPort"]`] = missing

	err := NewHomeSearchForm(dom).Search(RouteQuery{Origin: "Atlantis", Destination: "Rome"})

	var notFound *ElementNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ElementNotFoundError, got %v", err)
	}
	if len(dom.ops) != 1 {
		t.Errorf("search should stop at the failing dropdown, recorded %v", dom.ops)
	}
}

func TestVisitAndLoaded(t *testing.T) {
	dom := newStubDOM()
	dom.shown[`h1`] = true
	form := NewHomeSearchForm(dom)

	require.NoError(t, form.Visit())
	require.Equal(t, []string{"open /"}, dom.ops)
	require.True(t, form.Loaded())
}

func TestOptionListings(t *testing.T) {
	dom := newStubDOM()
	dom.allTexts[`select[name="fromPort"] option`] = []string{"Paris", "Philadelphia", "Boston"}
	dom.allTexts[`select[name="toPort"] option`] = []string{"Rome", "London", "Berlin"}
	form := NewHomeSearchForm(dom)

	require.Contains(t, form.OriginOptions(), "Paris")
	require.Contains(t, form.DestinationOptions(), "Rome")
}
