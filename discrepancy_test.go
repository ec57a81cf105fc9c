package discrepancy_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/agentstation/utc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	discrepancy "github.com/kmorhun/csv-discrepancy-finder"
	pkgerrors "github.com/kmorhun/csv-discrepancy-finder/pkg/errors"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/profile"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/report"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// fixtureProfile lays out a complete comparison run in dir: rule files, two
// source files, and a profile pointing at all of them.
func fixtureProfile(t *testing.T, dir string) *profile.Profile {
	t.Helper()

	mapping := writeFile(t, dir, "mapping.csv",
		"standard,source\n"+
			"id,ID Number\n"+
			"id,Employee ID\n"+
			"name,Full Name\n"+
			"name,Name\n"+
			"department,Dept\n"+
			"department,Department\n")
	translations := writeFile(t, dir, "translations.csv",
		"replacement,raw\n"+
			"Marketing,Mktg\n")
	filters := writeFile(t, dir, "filtering.csv",
		"field,value\n"+
			"department,ops\n")

	s1 := writeFile(t, dir, "s1.csv",
		"ID Number, Full Name, Dept, Badge\n"+
			"1, Alice, Engineering, blue\n"+
			"2, Bob, Sales, red\n"+
			"3, Carol, Ops, green\n"+
			", Nokey, HR, white\n"+
			"4, Dave, HR, black\n"+
			"4, David, HR, gray\n"+
			"6, Frank, HR, pink\n")
	s2 := writeFile(t, dir, "s2.csv",
		"Employee ID, Name, Department\n"+
			"1, Alice, Engineering\n"+
			"2, Bob, Mktg\n"+
			"5, Eve, Ops\n"+
			"7, Grace, HR\n")

	return &profile.Profile{
		PrimaryKeys:      []string{"id"},
		Delimiter:        ",",
		TrimLeadingSpace: true,
		Mapping:          mapping,
		Translations:     translations,
		Filters:          filters,
		Reports:          filepath.Join(dir, "exports"),
		Sources: []profile.Source{
			{Name: "Alpha", Path: s1},
			{Name: "Beta", Path: s2},
		},
	}
}

func fixedEmitter(dir string) *report.Emitter {
	at := utc.New(time.Date(2024, 3, 9, 17, 30, 5, 0, time.UTC))
	return report.New(dir, report.WithClock(func() utc.Time { return at }))
}

func TestCompare(t *testing.T) {
	dir := t.TempDir()
	p := fixtureProfile(t, dir)
	exports := filepath.Join(dir, "exports")

	finder, err := discrepancy.New(
		discrepancy.WithProfile(p),
		discrepancy.WithEmitter(fixedEmitter(exports)),
	)
	require.NoError(t, err)

	result, err := finder.Compare(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.False(t, result.CompletedAt.Before(result.StartedAt.Time))

	// Source statistics: the ops rows are filtered before any routing.
	assert.Equal(t, discrepancy.SourceReport{
		Name: "Alpha", Path: p.Sources[0].Path,
		Rows: 7, Indexed: 3, Keyless: 1, Duplicates: 2,
	}, result.Sources[0])
	assert.Equal(t, discrepancy.SourceReport{
		Name: "Beta", Path: p.Sources[1].Path,
		Rows: 4, Indexed: 3,
	}, result.Sources[1])

	assert.Equal(t, [2]int{1, 1}, result.Extras)
	assert.Equal(t, 1, result.Differences)
	assert.Equal(t, 6, result.Discrepancies())
	assert.True(t, result.HasDiscrepancies())

	// One file per non-empty collection, in emission order.
	stamp := "2024-03-09 17-30-05"
	require.Equal(t, []string{
		filepath.Join(exports, "Alpha missingPK "+stamp+".csv"),
		filepath.Join(exports, "Alpha duplicate "+stamp+".csv"),
		filepath.Join(exports, "Alpha extra "+stamp+".csv"),
		filepath.Join(exports, "Beta extra "+stamp+".csv"),
		filepath.Join(exports, "Alpha Beta differences "+stamp+".csv"),
	}, result.ReportPaths)

	for _, path := range result.ReportPaths {
		assert.FileExists(t, path)
	}

	// Beta produced no keyless or duplicate records, so no such files.
	entries, err := os.ReadDir(exports)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestCompareReportContents(t *testing.T) {
	dir := t.TempDir()
	p := fixtureProfile(t, dir)
	exports := filepath.Join(dir, "exports")

	finder, err := discrepancy.New(
		discrepancy.WithProfile(p),
		discrepancy.WithEmitter(fixedEmitter(exports)),
	)
	require.NoError(t, err)

	_, err = finder.Compare(context.Background())
	require.NoError(t, err)

	read := func(name string) string {
		data, err := os.ReadFile(filepath.Join(exports, name+" 2024-03-09 17-30-05.csv"))
		require.NoError(t, err)
		return string(data)
	}

	assert.Equal(t,
		"primary_key,name,department\n"+
			",nokey,hr\n",
		read("Alpha missingPK"))

	// The second sighting of key 4 precedes the record it evicted.
	assert.Equal(t,
		"primary_key,name,department\n"+
			"4,david,hr\n"+
			"4,dave,hr\n",
		read("Alpha duplicate"))

	assert.Equal(t,
		"primary_key,name,department\n"+
			"6,frank,hr\n",
		read("Alpha extra"))

	assert.Equal(t,
		"primary_key,name,department\n"+
			"7,grace,hr\n",
		read("Beta extra"))

	// Key 2 differs on department only; the translation turned Beta's
	// Mktg into marketing before comparison.
	assert.Equal(t,
		"primary_key,name-[Alpha],name-[Beta],department-[Alpha],department-[Beta]\n"+
			"2,bob,*same*,sales,marketing\n",
		read("Alpha Beta differences"))
}

func TestCompareNoDiscrepancies(t *testing.T) {
	dir := t.TempDir()

	mapping := writeFile(t, dir, "mapping.csv", "standard,source\nid,ID\nname,Name\n")
	translations := writeFile(t, dir, "translations.csv", "replacement,raw\n")
	filters := writeFile(t, dir, "filtering.csv", "field,value\n")
	s1 := writeFile(t, dir, "s1.csv", "ID,Name\n1,Alice\n2,Bob\n")
	s2 := writeFile(t, dir, "s2.csv", "ID,Name\n2,bob\n1,ALICE\n")

	p := &profile.Profile{
		PrimaryKeys:      []string{"id"},
		Delimiter:        ",",
		TrimLeadingSpace: true,
		Mapping:          mapping,
		Translations:     translations,
		Filters:          filters,
		Reports:          filepath.Join(dir, "exports"),
		Sources: []profile.Source{
			{Name: "Alpha", Path: s1},
			{Name: "Beta", Path: s2},
		},
	}

	finder, err := discrepancy.New(discrepancy.WithProfile(p))
	require.NoError(t, err)

	result, err := finder.Compare(context.Background())
	require.NoError(t, err)

	assert.False(t, result.HasDiscrepancies())
	assert.Empty(t, result.ReportPaths)
	assert.Contains(t, result.Summary(), "No discrepancies")

	// No files means the reports directory was never created.
	_, statErr := os.Stat(p.Reports)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCompareSummaryFile(t *testing.T) {
	dir := t.TempDir()
	p := fixtureProfile(t, dir)
	exports := filepath.Join(dir, "exports")

	finder, err := discrepancy.New(
		discrepancy.WithProfile(p),
		discrepancy.WithEmitter(fixedEmitter(exports)),
		discrepancy.WithSummary(true),
	)
	require.NoError(t, err)

	result, err := finder.Compare(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, result.SummaryPath)
	data, err := os.ReadFile(result.SummaryPath)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, result.RunID)
	assert.Contains(t, content, "Alpha")
	assert.Contains(t, content, "differences")
}

func TestCompareCanceledContext(t *testing.T) {
	dir := t.TempDir()
	p := fixtureProfile(t, dir)

	finder, err := discrepancy.New(discrepancy.WithProfile(p))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = finder.Compare(ctx)
	assert.ErrorIs(t, err, pkgerrors.ErrCanceled)
}

func TestCompareMissingSource(t *testing.T) {
	dir := t.TempDir()
	p := fixtureProfile(t, dir)
	p.Sources[1].Path = filepath.Join(dir, "absent.csv")

	finder, err := discrepancy.New(discrepancy.WithProfile(p))
	require.NoError(t, err)

	_, err = finder.Compare(context.Background())
	require.Error(t, err)

	var ioErr *pkgerrors.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestNew(t *testing.T) {
	t.Run("profile file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "profile.yaml", `
mapping: `+filepath.Join(dir, "mapping.csv")+`
translations: `+filepath.Join(dir, "translations.csv")+`
filters: `+filepath.Join(dir, "filtering.csv")+`
reports: `+filepath.Join(dir, "exports")+`
sources:
  - name: HR
    path: hr.csv
  - name: Payroll
    path: payroll.csv
`)

		finder, err := discrepancy.New(discrepancy.WithProfileFile(path))
		require.NoError(t, err)
		assert.Equal(t, "HR", finder.Profile().Sources[0].Name)
		assert.Equal(t, []string{"id"}, finder.Profile().PrimaryKeys)
	})

	t.Run("defaults when unconfigured", func(t *testing.T) {
		finder, err := discrepancy.New()
		require.NoError(t, err)
		assert.Equal(t, "Test 1", finder.Profile().Sources[0].Name)
	})

	t.Run("invalid profile rejected", func(t *testing.T) {
		p := profile.Default()
		p.Sources = p.Sources[:1]

		_, err := discrepancy.New(discrepancy.WithProfile(p))
		assert.True(t, pkgerrors.IsConfig(err))
	})

	t.Run("nil profile rejected", func(t *testing.T) {
		_, err := discrepancy.New(discrepancy.WithProfile(nil))
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("missing profile file", func(t *testing.T) {
		_, err := discrepancy.New(discrepancy.WithProfileFile(filepath.Join(t.TempDir(), "absent.yaml")))
		require.Error(t, err)

		var ioErr *pkgerrors.IOError
		assert.ErrorAs(t, err, &ioErr)
	})
}
