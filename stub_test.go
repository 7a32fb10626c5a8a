package blazebook

import "fmt"

// stubDOM is an in-memory DomAccessor for exercising page models without a
// browser. Reads come from canned maps; interactions are recorded in ops.
type stubDOM struct {
	texts     map[string]string
	lastTexts map[string]string
	allTexts  map[string][]string
	counts    map[string]int
	values    map[string]string
	shown     map[string]bool
	failOn    map[string]error
	ops       []string
}

var _ DomAccessor = (*stubDOM)(nil)

func newStubDOM() *stubDOM {
	return &stubDOM{
		texts:     map[string]string{},
		lastTexts: map[string]string{},
		allTexts:  map[string][]string{},
		counts:    map[string]int{},
		values:    map[string]string{},
		shown:     map[string]bool{},
		failOn:    map[string]error{},
	}
}

func (d *stubDOM) Open(path string) error {
	d.ops = append(d.ops, "open "+path)
	return d.failOn["open"]
}

func (d *stubDOM) AwaitStable() error {
	d.ops = append(d.ops, "await")
	return nil
}

func (d *stubDOM) ReadText(sel string) string {
	return d.texts[sel]
}

func (d *stubDOM) LookupText(sel string) (string, bool) {
	t, ok := d.texts[sel]
	return t, ok
}

func (d *stubDOM) LastText(sel string) (string, bool) {
	t, ok := d.lastTexts[sel]
	return t, ok
}

func (d *stubDOM) Texts(sel string) []string {
	return d.allTexts[sel]
}

func (d *stubDOM) Count(sel string) int {
	return d.counts[sel]
}

func (d *stubDOM) IsShown(sel string) bool {
	return d.shown[sel]
}

func (d *stubDOM) InputValue(sel string) (string, error) {
	if err := d.failOn[sel]; err != nil {
		return "", err
	}
	return d.values[sel], nil
}

func (d *stubDOM) Click(sel string) error {
	d.ops = append(d.ops, "click "+sel)
	return d.failOn[sel]
}

func (d *stubDOM) ClickNth(sel string, index int) error {
	d.ops = append(d.ops, fmt.Sprintf("click %s #%d", sel, index))
	return d.failOn[sel]
}

func (d *stubDOM) Fill(sel, value string) error {
	d.ops = append(d.ops, fmt.Sprintf("fill %s=%s", sel, value))
	if err := d.failOn[sel]; err != nil {
		return err
	}
	d.values[sel] = value
	return nil
}

func (d *stubDOM) SelectValue(sel, value string) error {
	d.ops = append(d.ops, fmt.Sprintf("select %s=%s", sel, value))
	if err := d.failOn[sel]; err != nil {
		return err
	}
	d.values[sel] = value
	return nil
}

func (d *stubDOM) Check(sel string) error {
	d.ops = append(d.ops, "check "+sel)
	return d.failOn[sel]
}

func (d *stubDOM) WaitVisible(sel string) error {
	return d.failOn[sel]
}

func (d *stubDOM) Capture(name string) ([]byte, error) {
	d.ops = append(d.ops, "capture "+name)
	return []byte("full"), nil
}

func (d *stubDOM) CaptureElement(sel, name string) ([]byte, error) {
	d.ops = append(d.ops, "capture-element "+name)
	return []byte("elem"), nil
}
