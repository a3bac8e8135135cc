package functional

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"
)

// aCleanEnvironment is a no-op because the Before hook already sets up
// the environment. This step exists so feature files read naturally.
func aCleanEnvironment(ctx context.Context) (context.Context, error) {
	return ctx, nil
}

func theEnvironmentVariableIs(ctx context.Context, name, value string) (context.Context, error) {
	state := getState(ctx)
	// Paths in values are relative to the scenario's home directory
	value = strings.ReplaceAll(value, "$HOME_DIR", state.homeDir)
	state.env[name] = value
	return ctx, nil
}

// aConfusablesFileContaining writes a data file into the home directory.
// Names ending in .gz are gzip-compressed.
func aConfusablesFileContaining(ctx context.Context, name string, body *godog.DocString) (context.Context, error) {
	state := getState(ctx)
	// Gherkin has no tab escape, so the doc string uses " | " between fields
	data := strings.ReplaceAll(body.Content, " | ", "\t") + "\n"
	path := filepath.Join(state.homeDir, name)

	if !strings.HasSuffix(name, ".gz") {
		return ctx, os.WriteFile(path, []byte(data), 0o644)
	}

	f, err := os.Create(path)
	if err != nil {
		return ctx, err
	}
	defer f.Close()
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(data)); err != nil {
		return ctx, err
	}
	return ctx, zw.Close()
}

// iRun executes a command string, replacing "terminal-guard" with the test binary path.
func iRun(ctx context.Context, command string) (context.Context, error) {
	return runCommand(ctx, command, "")
}

func iRunWithInput(ctx context.Context, command, input string) (context.Context, error) {
	return runCommand(ctx, command, input)
}

func runCommand(ctx context.Context, command, input string) (context.Context, error) {
	state := getState(ctx)
	if state == nil {
		return ctx, fmt.Errorf("no test state; is the Before hook running?")
	}

	args := strings.Fields(command)
	if len(args) > 0 && args[0] == "terminal-guard" {
		args[0] = state.binPath
	}

	cmd := exec.Command(args[0], args[1:]...)
	// Relative paths in arguments resolve against the scenario home
	cmd.Dir = state.homeDir
	cmd.Stdin = strings.NewReader(input)

	// Build environment: drop inherited settings, set home, disable colour
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "TERMINAL_GUARD_") && !strings.HasPrefix(kv, "NO_COLOR=") {
			env = append(env, kv)
		}
	}
	env = append(env,
		"TERMINAL_GUARD_HOME="+state.homeDir,
		"NO_COLOR=1",
	)
	for k, v := range state.env {
		env = append(env, k+"="+v)
	}
	cmd.Env = env

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	state.stdout = stdout.String()
	state.stderr = stderr.String()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		state.exitCode = 0
	case errors.As(err, &exitErr):
		state.exitCode = exitErr.ExitCode()
	default:
		return ctx, fmt.Errorf("command execution failed: %w", err)
	}

	return ctx, nil
}

func theExitCodeIs(ctx context.Context, expected int) error {
	state := getState(ctx)
	if state.exitCode != expected {
		return fmt.Errorf("expected exit code %d, got %d\nstdout: %s\nstderr: %s",
			expected, state.exitCode, state.stdout, state.stderr)
	}
	return nil
}

func theOutputContains(ctx context.Context, text string) error {
	state := getState(ctx)
	if !strings.Contains(state.stdout, text) {
		return fmt.Errorf("expected stdout to contain %q, got:\n%s", text, state.stdout)
	}
	return nil
}

func theOutputDoesNotContain(ctx context.Context, text string) error {
	state := getState(ctx)
	if strings.Contains(state.stdout, text) {
		return fmt.Errorf("expected stdout not to contain %q, got:\n%s", text, state.stdout)
	}
	return nil
}

func theOutputIsEmpty(ctx context.Context) error {
	state := getState(ctx)
	if state.stdout != "" {
		return fmt.Errorf("expected empty stdout, got:\n%s", state.stdout)
	}
	return nil
}

func theOutputHasLines(ctx context.Context, expected int) error {
	state := getState(ctx)
	lines := strings.Split(strings.TrimRight(state.stdout, "\n"), "\n")
	if state.stdout == "" {
		lines = nil
	}
	if len(lines) != expected {
		return fmt.Errorf("expected %d lines of stdout, got %d:\n%s", expected, len(lines), state.stdout)
	}
	return nil
}

func theErrorOutputContains(ctx context.Context, text string) error {
	state := getState(ctx)
	if !strings.Contains(state.stderr, text) {
		return fmt.Errorf("expected stderr to contain %q, got:\n%s", text, state.stderr)
	}
	return nil
}

func theFileExists(ctx context.Context, path string) error {
	state := getState(ctx)
	fullPath := filepath.Join(state.homeDir, path)
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return fmt.Errorf("expected file %q to exist", fullPath)
	}
	return nil
}
