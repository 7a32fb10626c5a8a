package blazebook

// DomAccessor is the capability set page models compose: navigation, stability
// waits, text and visibility queries, form interaction, and screenshot capture.
// Page models hold a DomAccessor rather than extending a base page, so each
// model can evolve independently of the others.
type DomAccessor interface {
	// Open navigates the active context to path and waits for stability.
	Open(path string) error
	// AwaitStable blocks until the page reports no pending network activity.
	AwaitStable() error

	// ReadText returns the trimmed text of the first match, or "" if absent.
	ReadText(selector string) string
	// LookupText is ReadText with absence made explicit, so callers can tell
	// "field not found" from "field is empty".
	LookupText(selector string) (string, bool)
	// LastText reads the last matching element instead of the first.
	LastText(selector string) (string, bool)
	// Texts returns the text content of every match, in document order.
	Texts(selector string) []string
	// Count reports how many elements match.
	Count(selector string) int
	// IsShown reports presence plus visibility. Never errors.
	IsShown(selector string) bool
	// InputValue reads the current value of a form control.
	InputValue(selector string) (string, error)

	Click(selector string) error
	ClickNth(selector string, index int) error
	// Fill clears the control, then sets value.
	Fill(selector, value string) error
	// SelectValue selects the option whose value exactly matches, case-sensitive.
	SelectValue(selector, value string) error
	Check(selector string) error
	WaitVisible(selector string) error

	// Capture persists a full-page PNG and returns the raw bytes.
	Capture(name string) ([]byte, error)
	// CaptureElement persists a screenshot scoped to the first match.
	CaptureElement(selector, name string) ([]byte, error)
}
