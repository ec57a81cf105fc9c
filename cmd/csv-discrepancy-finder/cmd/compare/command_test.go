package compare

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	discrepancy "github.com/kmorhun/csv-discrepancy-finder"
	"github.com/kmorhun/csv-discrepancy-finder/internal/appcontext"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/profile"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// testProfile builds a two-source fixture with a single name difference.
func testProfile(t *testing.T, dir string) *profile.Profile {
	t.Helper()
	mapping := writeFile(t, dir, "mapping.csv", "standard,source\nid,ID\nname,Name\n")
	translations := writeFile(t, dir, "translations.csv", "replacement,raw\n")
	filters := writeFile(t, dir, "filtering.csv", "field,value\n")
	s1 := writeFile(t, dir, "s1.csv", "ID,Name\n1,Alice\n2,Bob\n")
	s2 := writeFile(t, dir, "s2.csv", "ID,Name\n1,Alice\n2,Roberta\n")

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

// testApp wires a mock app whose finder runs against the fixture profile.
func testApp(p *profile.Profile) *appcontext.Mock {
	return &appcontext.Mock{
		ProfileFunc: func() (*profile.Profile, error) { return p, nil },
		FinderWithOptionsFunc: func(opts ...discrepancy.Option) (discrepancy.Finder, error) {
			combined := append([]discrepancy.Option{discrepancy.WithProfile(p)}, opts...)
			return discrepancy.New(combined...)
		},
		OutputFormatFunc: func() string { return "json" },
	}
}

// resultView decodes the fields the tests assert on.
type resultView struct {
	Sources []struct {
		Name string `json:"name"`
		Rows int    `json:"rows"`
	} `json:"sources"`
	Differences int      `json:"differences"`
	ReportPaths []string `json:"report_paths"`
}

func runCommand(t *testing.T, app appcontext.Interface, args ...string) resultView {
	t.Helper()

	cmd := NewCommand(app)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("compare failed: %v\noutput: %s", err, buf.String())
	}

	var view resultView
	if err := json.Unmarshal(buf.Bytes(), &view); err != nil {
		t.Fatalf("decoding output: %v\noutput: %s", err, buf.String())
	}
	return view
}

func TestCommand(t *testing.T) {
	dir := t.TempDir()
	p := testProfile(t, dir)

	view := runCommand(t, testApp(p))

	if len(view.Sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(view.Sources))
	}
	if view.Sources[0].Name != "Alpha" || view.Sources[1].Name != "Beta" {
		t.Errorf("source names = %s, %s", view.Sources[0].Name, view.Sources[1].Name)
	}
	if view.Differences != 1 {
		t.Errorf("differences = %d, want 1", view.Differences)
	}
	if len(view.ReportPaths) != 1 {
		t.Fatalf("report paths = %v, want one differences report", view.ReportPaths)
	}
	if !strings.Contains(view.ReportPaths[0], "differences") {
		t.Errorf("report path %q is not a differences report", view.ReportPaths[0])
	}

	// The report file exists on a real run.
	if _, err := os.Stat(view.ReportPaths[0]); err != nil {
		t.Errorf("report not written: %v", err)
	}
}

func TestCommand_DryRun(t *testing.T) {
	dir := t.TempDir()
	p := testProfile(t, dir)

	view := runCommand(t, testApp(p), "--dry-run")

	if len(view.ReportPaths) != 1 {
		t.Fatalf("report paths = %v, want one differences report", view.ReportPaths)
	}

	// Nothing is written, not even the reports directory.
	if _, err := os.Stat(p.Reports); !os.IsNotExist(err) {
		t.Errorf("reports directory should not exist after dry run, stat err = %v", err)
	}
}

func TestCommand_SourceOverride(t *testing.T) {
	dir := t.TempDir()
	p := testProfile(t, dir)
	s3 := writeFile(t, dir, "s3.csv", "ID,Name\n1,Alice\n2,Bob\n")

	view := runCommand(t, testApp(p), "--source-2", "Payroll="+s3, "--dry-run")

	if view.Sources[1].Name != "Payroll" {
		t.Errorf("Sources[1].Name = %s, want Payroll", view.Sources[1].Name)
	}
	if view.Differences != 0 {
		t.Errorf("differences = %d, want 0 with identical content", view.Differences)
	}

	// The override must not leak back into the shared profile.
	if p.Sources[1].Name != "Beta" {
		t.Errorf("profile mutated: Sources[1].Name = %s", p.Sources[1].Name)
	}
}

func TestCommand_ReportsDirFlag(t *testing.T) {
	dir := t.TempDir()
	p := testProfile(t, dir)
	custom := filepath.Join(dir, "elsewhere")

	view := runCommand(t, testApp(p), "--reports", custom)

	if len(view.ReportPaths) != 1 {
		t.Fatalf("report paths = %v, want one differences report", view.ReportPaths)
	}
	if !strings.HasPrefix(view.ReportPaths[0], custom) {
		t.Errorf("report path %q not under %q", view.ReportPaths[0], custom)
	}
}
