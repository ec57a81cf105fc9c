package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/agentstation/utc"
	md "github.com/nao1215/markdown"

	"github.com/kmorhun/csv-discrepancy-finder/pkg/constants"
	"github.com/kmorhun/csv-discrepancy-finder/pkg/errors"
)

// SummarySource describes one source's normalization outcome.
type SummarySource struct {
	Name       string
	Path       string
	Rows       int
	Indexed    int
	Keyless    int
	Duplicates int
}

// Summary describes one comparison run for the Markdown summary document.
type Summary struct {
	RunID       string
	StartedAt   utc.Time
	CompletedAt utc.Time
	Sources     []SummarySource
	Extras      []int
	Differences int
	Files       []string
}

// WriteSummary renders the run summary as `summary <timestamp>.md` inside
// the reports directory and returns the file's path.
func (e *Emitter) WriteSummary(s *Summary) (string, error) {
	filename := fmt.Sprintf("summary %s.md", e.now().Format(constants.TimeFormatFilename))
	path := filepath.Join(e.dir, filename)

	if e.dryRun {
		return path, nil
	}

	if err := os.MkdirAll(e.dir, constants.DirPermissions); err != nil {
		return "", errors.WrapIO("create", e.dir, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", errors.WrapIO("create", path, err)
	}

	if err := renderSummary(f, s); err != nil {
		f.Close()
		return "", errors.WrapIO("write", path, err)
	}
	if err := f.Close(); err != nil {
		return "", errors.WrapIO("close", path, err)
	}

	return path, nil
}

// renderSummary builds the Markdown document.
func renderSummary(w io.Writer, s *Summary) error {
	doc := md.NewMarkdown(w)

	doc.H1("Comparison Summary").LF()
	doc.PlainTextf("Run `%s`", s.RunID).LF()
	doc.BulletList(
		fmt.Sprintf("Started: %s", s.StartedAt.Format(constants.TimeFormatLog)),
		fmt.Sprintf("Completed: %s", s.CompletedAt.Format(constants.TimeFormatLog)),
	).LF()

	doc.H2("Sources").LF()
	sourceRows := make([][]string, 0, len(s.Sources))
	for _, src := range s.Sources {
		sourceRows = append(sourceRows, []string{
			src.Name,
			src.Path,
			strconv.Itoa(src.Rows),
			strconv.Itoa(src.Indexed),
			strconv.Itoa(src.Keyless),
			strconv.Itoa(src.Duplicates),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Source", "Path", "Rows", "Indexed", "Keyless", "Duplicates"},
		Rows:   sourceRows,
	}).LF()

	doc.H2("Discrepancies").LF()
	discrepancyRows := make([][]string, 0, len(s.Extras)+1)
	for i, count := range s.Extras {
		label := string(CategoryExtra)
		if i < len(s.Sources) {
			label = fmt.Sprintf("%s (%s)", CategoryExtra, s.Sources[i].Name)
		}
		discrepancyRows = append(discrepancyRows, []string{label, strconv.Itoa(count)})
	}
	discrepancyRows = append(discrepancyRows, []string{string(CategoryDifferences), strconv.Itoa(s.Differences)})
	doc.Table(md.TableSet{
		Header: []string{"Category", "Count"},
		Rows:   discrepancyRows,
	}).LF()

	if len(s.Files) > 0 {
		doc.H2("Report Files").LF()
		doc.BulletList(s.Files...).LF()
	}

	return doc.Build()
}
