package functional

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cucumber/godog"
)

type stateKeyType struct{}

var stateKey = stateKeyType{}

type testState struct {
	homeDir  string
	binPath  string
	env      map[string]string
	stdout   string
	stderr   string
	exitCode int
}

func getState(ctx context.Context) *testState {
	if s, ok := ctx.Value(stateKey).(*testState); ok {
		return s
	}
	return nil
}

func setState(ctx context.Context, s *testState) context.Context {
	return context.WithValue(ctx, stateKey, s)
}

func TestFeatures(t *testing.T) {
	binPath := os.Getenv("TERMINAL_GUARD_TEST_BINARY")
	if binPath == "" {
		t.Skip("TERMINAL_GUARD_TEST_BINARY not set; build cmd/terminal-guard and point it at the binary")
	}

	// Resolve to absolute path since go test changes the working directory
	absBin, err := filepath.Abs(binPath)
	if err != nil {
		t.Fatalf("resolving binary path: %v", err)
	}
	binPath = absBin

	opts := &godog.Options{
		Format:   "pretty",
		Paths:    []string{"features"},
		TestingT: t,
	}
	if tags := os.Getenv("TERMINAL_GUARD_TEST_TAGS"); tags != "" {
		opts.Tags = tags
	}

	suite := godog.TestSuite{
		ScenarioInitializer: func(ctx *godog.ScenarioContext) {
			initializeScenario(ctx, binPath)
		},
		Options: opts,
	}
	if suite.Run() != 0 {
		t.Fatal("functional tests failed")
	}
}

func initializeScenario(ctx *godog.ScenarioContext, binPath string) {
	// Fresh home directory for each scenario
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		homeDir, err := os.MkdirTemp("", "terminal-guard-functional-")
		if err != nil {
			return ctx, err
		}

		state := &testState{
			homeDir: homeDir,
			binPath: binPath,
			env:     map[string]string{},
		}
		return setState(ctx, state), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if state := getState(ctx); state != nil {
			os.RemoveAll(state.homeDir)
		}
		return ctx, nil
	})

	// Environment steps
	ctx.Step(`^a clean terminal-guard environment$`, aCleanEnvironment)
	ctx.Step(`^the environment variable "([^"]*)" is "([^"]*)"$`, theEnvironmentVariableIs)
	ctx.Step(`^a confusables file "([^"]*)" containing:$`, aConfusablesFileContaining)

	// Command steps
	ctx.Step(`^I run "([^"]*)"$`, iRun)
	ctx.Step(`^I run "([^"]*)" with input "([^"]*)"$`, iRunWithInput)

	// Assertion steps
	ctx.Step(`^the exit code is (\d+)$`, theExitCodeIs)
	ctx.Step(`^the output contains "([^"]*)"$`, theOutputContains)
	ctx.Step(`^the output does not contain "([^"]*)"$`, theOutputDoesNotContain)
	ctx.Step(`^the output is empty$`, theOutputIsEmpty)
	ctx.Step(`^the output has (\d+) lines?$`, theOutputHasLines)
	ctx.Step(`^the error output contains "([^"]*)"$`, theErrorOutputContains)
	ctx.Step(`^the file "([^"]*)" exists$`, theFileExists)
}
