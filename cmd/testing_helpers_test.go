package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"

	domainmocks "github.com/mouse-blink/punctnorm/internal/domain/mocks"
)

// useMockWorkflow isolates the test from config files on disk and swaps in a
// mock workflow for the duration of t.
func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func newTestRoot(sub *cobra.Command) *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}
