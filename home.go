package blazebook

// RouteQuery names the origin and destination cities for one search.
type RouteQuery struct {
	Origin      string
	Destination string
}

// HomeSearchForm models the landing page's route-search form.
type HomeSearchForm struct {
	dom     DomAccessor
	origin  string
	dest    string
	submit  string
	welcome string
}

func NewHomeSearchForm(dom DomAccessor) *HomeSearchForm {
	return &HomeSearchForm{
		dom:     dom,
		origin:  `select[name="fromPort"]`,
		dest:    `select[name="toPort"]`,
		submit:  `input[type="submit"]`,
		welcome: `h1`,
	}
}

// Visit opens the landing page and waits for it to settle.
func (h *HomeSearchForm) Visit() error {
	return h.dom.Open("/")
}

// Loaded reports whether the welcome heading is visible.
func (h *HomeSearchForm) Loaded() bool {
	return h.dom.IsShown(h.welcome)
}

// Search selects both cities by option value, submits, and waits for the
// results page. Values are case-sensitive and must exactly match an
// enumerated option value.
func (h *HomeSearchForm) Search(q RouteQuery) error {
	if err := h.dom.SelectValue(h.origin, q.Origin); err != nil {
		return err
	}
	if err := h.dom.SelectValue(h.dest, q.Destination); err != nil {
		return err
	}
	if err := h.dom.Click(h.submit); err != nil {
		return err
	}
	return h.dom.AwaitStable()
}

// SelectedOrigin reads back the origin dropdown's current value.
func (h *HomeSearchForm) SelectedOrigin() (string, error) {
	return h.dom.InputValue(h.origin)
}

// SelectedDestination reads back the destination dropdown's current value.
func (h *HomeSearchForm) SelectedDestination() (string, error) {
	return h.dom.InputValue(h.dest)
}

// OriginOptions lists the text of every origin dropdown option.
func (h *HomeSearchForm) OriginOptions() []string {
	return h.dom.Texts(h.origin + " option")
}

// DestinationOptions lists the text of every destination dropdown option.
func (h *HomeSearchForm) DestinationOptions() []string {
	return h.dom.Texts(h.dest + " option")
}
