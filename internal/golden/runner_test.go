package golden

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureDefaultSuite(t *testing.T) *Baseline {
	t.Helper()

	cases, err := DefaultSuite().Resolve()
	require.NoError(t, err)

	runner := NewRunner(log.New(io.Discard), quartz.NewMock(t))
	baseline, err := runner.Capture(context.Background(), "default", cases)
	require.NoError(t, err)
	return baseline
}

func TestCaptureDefaultSuite(t *testing.T) {
	baseline := captureDefaultSuite(t)

	assert.Equal(t, baselineVersion, baseline.Version)
	assert.Equal(t, "default", baseline.Suite)
	require.Len(t, baseline.Records, 3)

	// Records arrive in stable order regardless of goroutine scheduling,
	// and carry the golden outputs of the default inputs.
	want := []Record{
		{Fixture: "b", Text: "beta-demo", Seed: 123, Message: "prog_b high 872616683", Status: 45},
		{Fixture: "multi-a", Seed: 77, Message: "A:-2240", Status: 190},
		{Fixture: "multi-b", Seed: 77, Message: "B:-2079", Status: 135},
	}
	assert.Equal(t, want, baseline.Records)
}

func TestCaptureIsReproducible(t *testing.T) {
	first := captureDefaultSuite(t)
	second := captureDefaultSuite(t)
	assert.Equal(t, first.Records, second.Records)
}

func TestBaselineRoundTrip(t *testing.T) {
	baseline := captureDefaultSuite(t)

	path := filepath.Join(t.TempDir(), "baseline.json")
	require.NoError(t, baseline.Write(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, baseline.Records, loaded.Records)
	assert.Equal(t, baseline.Suite, loaded.Suite)
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	baseline := captureDefaultSuite(t)
	baseline.Version = 99

	path := filepath.Join(t.TempDir(), "baseline.json")
	require.NoError(t, baseline.Write(path))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported baseline version")
}

func TestVerify(t *testing.T) {
	baseline := captureDefaultSuite(t)

	t.Run("clean run has no diffs", func(t *testing.T) {
		current := captureDefaultSuite(t)
		assert.Empty(t, Verify(baseline, current))
	})

	t.Run("drifted record is reported", func(t *testing.T) {
		current := captureDefaultSuite(t)
		current.Records[0].Message = "prog_b high 0"
		current.Records[0].Status = 1

		diffs := Verify(baseline, current)
		require.Len(t, diffs, 1)
		assert.Equal(t, "b", diffs[0].Record.Fixture)
		assert.Equal(t, "prog_b high 0", diffs[0].GotMessage)
		assert.Equal(t, 1, diffs[0].GotStatus)
		assert.Contains(t, diffs[0].String(), "baseline")
	})

	t.Run("missing and unexpected records", func(t *testing.T) {
		current := captureDefaultSuite(t)
		current.Records[0].Seed = 999 // now an unexpected record, and b/123 is missing

		diffs := Verify(baseline, current)
		require.Len(t, diffs, 2)
		assert.True(t, diffs[0].Missing)
		assert.True(t, diffs[1].Unexpected)
	})
}
