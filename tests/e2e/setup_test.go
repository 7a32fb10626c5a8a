//go:build e2e

// Package e2e drives the full booking journey against a live deployment.
//
// Prerequisites:
//   - Install browsers: go run github.com/playwright-community/playwright-go/cmd/playwright install
//   - Run with: go test -tags e2e ./tests/e2e/...
//
// BLAZE_* environment variables select the target deployment, browser engine
// and device profile (see config.go at the module root).
package e2e

import (
	"os"
	"testing"

	"github.com/blazebook/blazebook"
)

var rt *blazebook.Runtime

// TestMain launches one browser shared by every scenario; each scenario still
// gets its own isolated context.
func TestMain(m *testing.M) {
	var err error
	rt, err = blazebook.Start(blazebook.ConfigFromEnv())
	if err != nil {
		panic(err)
	}
	code := m.Run()
	rt.Close()
	os.Exit(code)
}

// newNavigator opens a fresh session already sitting on the landing page.
func newNavigator(t *testing.T) *blazebook.Navigator {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	session, closeSession, err := rt.NewSession()
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	t.Cleanup(closeSession)

	nav := blazebook.NewNavigator(session)
	if err := nav.Home.Visit(); err != nil {
		t.Fatalf("visit home page: %v", err)
	}
	return nav
}
