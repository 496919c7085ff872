package perf_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MeKo-Tech/perfmon/internal/testutil"
	"github.com/MeKo-Tech/perfmon/test/integration/perf/support"
	"github.com/cucumber/godog"
)

// InitializeScenario gives every scenario a fresh timer.
func InitializeScenario(sc *godog.ScenarioContext) {
	testContext := support.NewTestContext()
	testContext.RegisterSteps(sc)
}

// TestFeatures runs the Godog test suite.
func TestFeatures(t *testing.T) {
	root, err := testutil.GetProjectRootValidated()
	if err != nil {
		t.Fatalf("failed to locate project root: %v", err)
	}
	featuresDir := filepath.Join(root, "test", "integration", "perf", "features")

	entries, err := os.ReadDir(featuresDir)
	if err != nil {
		t.Fatalf("failed to read features directory: %v", err)
	}

	format := os.Getenv("GODOG_FORMAT")
	if format == "" {
		format = "pretty"
	}
	tags := os.Getenv("GODOG_TAGS")

	found := false
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".feature") {
			continue
		}
		found = true
		featurePath := filepath.Join(featuresDir, e.Name())

		t.Run(e.Name(), func(t *testing.T) {
			suite := godog.TestSuite{
				ScenarioInitializer: InitializeScenario,
				Options: &godog.Options{
					Format:   format,
					Tags:     tags,
					Paths:    []string{featurePath},
					TestingT: t,
					Strict:   true,
				},
			}

			if suite.Run() != 0 {
				t.Fatalf("non-zero status returned for %s", featurePath)
			}
		})
	}

	if !found {
		t.Fatalf("no .feature files found in features/")
	}
}
