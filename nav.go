package blazebook

// Navigator aggregates the four page models behind one handle per session.
// It holds exactly one instance of each for the session's lifetime; there is
// no logic here beyond construction.
type Navigator struct {
	session *Session

	Home         *HomeSearchForm
	Results      *ResultsList
	Purchase     *PurchaseForm
	Confirmation *ConfirmationView
}

// NewNavigator wires every page model to the session's DOM capabilities.
func NewNavigator(s *Session) *Navigator {
	return &Navigator{
		session:      s,
		Home:         NewHomeSearchForm(s),
		Results:      NewResultsList(s),
		Purchase:     NewPurchaseForm(s),
		Confirmation: NewConfirmationView(s),
	}
}

// Session returns the underlying browsing session.
func (n *Navigator) Session() *Session { return n.session }
