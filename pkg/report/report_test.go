package report_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/agentstation/utc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/kmorhun/csv-discrepancy-finder/pkg/errors"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/record"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/report"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/tabular"
)

func fixedClock() func() utc.Time {
	at := utc.New(time.Date(2024, 3, 9, 17, 30, 5, 0, time.UTC))
	return func() utc.Time { return at }
}

func sample(key, name string) *record.Record {
	rec := record.New()
	rec.Set(record.KeyField, key)
	rec.Set("name", name)
	return rec
}

func TestEmitterWrite(t *testing.T) {
	t.Run("file name carries source category and timestamp", func(t *testing.T) {
		dir := t.TempDir()
		e := report.New(dir, report.WithClock(fixedClock()))

		path, err := e.Write("Test 1", report.CategoryExtra, []*record.Record{sample("1", "alice")})
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "Test 1 extra 2024-03-09 17-30-05.csv"), path)
		assert.FileExists(t, path)
	})

	t.Run("content round trips", func(t *testing.T) {
		dir := t.TempDir()
		e := report.New(dir, report.WithClock(fixedClock()))

		path, err := e.Write("Test 1", report.CategoryDuplicate, []*record.Record{
			sample("2", "bob"),
			sample("1", "alice"),
		})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "primary_key,name\n2,bob\n1,alice\n", string(data))
	})

	t.Run("directory created on first write", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "exports")
		e := report.New(dir, report.WithClock(fixedClock()))

		_, err := e.Write("Test 1", report.CategoryMissingPK, []*record.Record{sample("", "x")})
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("empty collection is an error", func(t *testing.T) {
		e := report.New(t.TempDir(), report.WithClock(fixedClock()))

		_, err := e.Write("Test 1", report.CategoryExtra, nil)
		assert.ErrorIs(t, err, pkgerrors.ErrNoRecords)

		// No file appears for the failed write.
		entries, readErr := os.ReadDir(e.Dir())
		require.NoError(t, readErr)
		assert.Empty(t, entries)
	})

	t.Run("custom dialect", func(t *testing.T) {
		dir := t.TempDir()
		e := report.New(dir,
			report.WithClock(fixedClock()),
			report.WithDialect(tabular.Dialect{Delimiter: ';'}))

		path, err := e.Write("Test 1", report.CategoryExtra, []*record.Record{sample("1", "alice")})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "primary_key;name\n1;alice\n", string(data))
	})

	t.Run("combined name for differences", func(t *testing.T) {
		dir := t.TempDir()
		e := report.New(dir, report.WithClock(fixedClock()))

		path, err := e.Write("Test 1 Test 2", report.CategoryDifferences, []*record.Record{sample("1", "x")})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "Test 1 Test 2 differences 2024-03-09 17-30-05.csv"), path)
	})
}

func TestEmitterDryRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	e := report.New(dir, report.WithClock(fixedClock()), report.WithDryRun())

	path, err := e.Write("Test 1", report.CategoryExtra, []*record.Record{sample("1", "alice")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Test 1 extra 2024-03-09 17-30-05.csv"), path)

	summaryPath, err := e.WriteSummary(&report.Summary{RunID: "run"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "summary 2024-03-09 17-30-05.md"), summaryPath)

	// Neither the files nor the directory appear.
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))

	// An empty collection still fails, dry run or not.
	_, err = e.Write("Test 1", report.CategoryExtra, nil)
	assert.ErrorIs(t, err, pkgerrors.ErrNoRecords)
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "missingPK", report.CategoryMissingPK.String())
	assert.Equal(t, "duplicate", report.CategoryDuplicate.String())
	assert.Equal(t, "extra", report.CategoryExtra.String())
	assert.Equal(t, "differences", report.CategoryDifferences.String())
}
