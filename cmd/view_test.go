package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/punctnorm/internal/domain"
)

func TestViewCmd_UsesDefaultReportsDir(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.EXPECT().View(domain.ViewArgs{Reports: ".punctnorm-reports"}).Return(nil)

	cmd := newTestRoot(newViewCmd())
	cmd.SetArgs([]string{"view"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_ReportsAndRunFlags(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.EXPECT().View(domain.ViewArgs{Reports: "./reports-dir", RunID: "run-42"}).Return(nil)

	cmd := newTestRoot(newViewCmd())
	cmd.SetArgs([]string{"--reports", "./reports-dir", "view", "--run", "run-42"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_PositionalArgsAreRejected(t *testing.T) {
	useMockWorkflow(t)

	cmd := newTestRoot(newViewCmd())
	cmd.SetArgs([]string{"view", "./custom-reports"})
	require.Error(t, cmd.Execute())
}
