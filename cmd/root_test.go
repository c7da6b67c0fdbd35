package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/punctnorm/internal/config"
	m "github.com/mouse-blink/punctnorm/internal/model"
)

func TestParseShardFlag(t *testing.T) {
	tests := []struct {
		name      string
		shard     string
		wantIndex int
		wantTotal int
	}{
		{"empty string", "", 0, 1},
		{"valid 0/3", "0/3", 0, 3},
		{"valid 1/3", "1/3", 1, 3},
		{"valid 2/3", "2/3", 2, 3},
		{"invalid format", "invalid", 0, 1},
		{"zero total", "0/0", 0, 1},
		{"negative total", "0/-1", 0, 1},
		{"negative index", "-1/3", 0, 1},
		{"index >= total", "3/3", 0, 1},
		{"index > total", "5/3", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotIndex, gotTotal := parseShardFlag(tt.shard)
			if gotIndex != tt.wantIndex {
				t.Errorf("parseShardFlag() index = %v, want %v", gotIndex, tt.wantIndex)
			}
			if gotTotal != tt.wantTotal {
				t.Errorf("parseShardFlag() total = %v, want %v", gotTotal, tt.wantTotal)
			}
		})
	}
}

func TestParsePaths(t *testing.T) {
	assert.Equal(t, []m.Path{"./..."}, parsePaths(nil))
	assert.Equal(t, []m.Path{"a.jsonl", "dir/..."}, parsePaths([]string{"a.jsonl", "dir/..."}))
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	if cmd.Use != "punctnorm" {
		t.Errorf("newRootCmd() Use = %v, want %v", cmd.Use, "punctnorm")
	}
	if cmd.Short == "" {
		t.Error("newRootCmd() Short should not be empty")
	}
	if cmd.Long == "" {
		t.Error("newRootCmd() Long should not be empty")
	}

	for _, name := range []string{"config", "reports", "v", "vmodule"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("newRootCmd() missing --%s flag", name)
		}
	}
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"convert", "list", "view"} {
		if !names[want] {
			t.Errorf("rootCmd missing %q subcommand", want)
		}
	}
}

func TestNewWorkflow(t *testing.T) {
	cfg := config.Config{Alignment: "contract", Tokenizer: "uax29", Format: "jsonl", Output: "x.jsonl"}

	wf, err := newWorkflow(newRootCmd(), cfg)
	require.NoError(t, err)
	assert.NotNil(t, wf)

	cfg.Tokenizer = "spacy"
	_, err = newWorkflow(newRootCmd(), cfg)
	require.Error(t, err)
}

func TestSetup_BuildsWorkflowWhenUnset(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	originalWorkflow := workflow
	workflow = nil
	defer func() { workflow = originalWorkflow }()

	cmd := newTestRoot(newListCmd())
	cfg, err := setup(cmd)
	require.NoError(t, err)
	assert.Equal(t, "expand", cfg.Alignment)
	assert.NotNil(t, workflow)
}

func TestExecute_WithError(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() {
		rootCmd = originalRootCmd
	}()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("command failed")
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	err := rootCmd.Execute()
	if err == nil {
		t.Error("Expected command to return an error")
	}
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				if cmd.Context() == nil {
					return fmt.Errorf("missing context")
				}
				fmt.Println("success")
				return nil
			},
		}
		mockCmd.SetArgs([]string{})
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	if err != nil {
		t.Errorf("Process exited with error: %v, output: %s", err, output)
	}

	if !strings.Contains(string(output), "success") {
		t.Errorf("Expected 'success' in output, got: %s", output)
	}
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetArgs([]string{})
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Expected exec.ExitError, got %T (output: %s)", err, output)
	}

	if exitErr.ExitCode() != 1 {
		t.Errorf("Expected exit code 1, got %d", exitErr.ExitCode())
	}
}

func TestExecute_ProcessLevel_Canceled(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_CANCEL") == "1" {
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				return fmt.Errorf("convert: %w", context.Canceled)
			},
		}
		mockCmd.SetArgs([]string{})
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Canceled")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_CANCEL=1")
	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Expected exec.ExitError, got %T (output: %s)", err, output)
	}

	if exitErr.ExitCode() != exitCanceled {
		t.Errorf("Expected exit code %d, got %d", exitCanceled, exitErr.ExitCode())
	}

	if !strings.Contains(string(output), "canceled") {
		t.Errorf("Expected cancel message in output, got: %s", output)
	}
}
