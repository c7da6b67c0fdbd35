package adapter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/punctnorm/internal/model"
)

// ReportStore persists and retrieves run summaries.
type ReportStore interface {
	Save(dir m.Path, summary m.RunSummary) error
	Load(dir m.Path, runID string) (m.RunSummary, error)
}

// LocalReportStore keeps one YAML file per run, named after the run id.
type LocalReportStore struct{}

// NewLocalReportStore constructs a LocalReportStore.
func NewLocalReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// ErrNoReports is returned by Load when dir holds no run summary.
var ErrNoReports = errors.New("no reports found")

// Save writes summary to <dir>/<run id>.yaml.
func (s *LocalReportStore) Save(dir m.Path, summary m.RunSummary) error {
	if summary.RunID == "" {
		return errors.New("run summary has no run id")
	}

	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return errors.Wrapf(err, "create reports directory %s", dir)
	}

	data, err := yaml.Marshal(summary)
	if err != nil {
		return errors.Wrap(err, "encode run summary")
	}

	path := filepath.Join(string(dir), summary.RunID+".yaml")

	return errors.Wrapf(os.WriteFile(path, data, 0o644), "write %s", path)
}

// Load reads the summary of runID, or of the most recent run when runID is
// empty.
func (s *LocalReportStore) Load(dir m.Path, runID string) (m.RunSummary, error) {
	if runID == "" {
		latest, err := latestReport(string(dir))
		if err != nil {
			return m.RunSummary{}, err
		}

		runID = latest
	}

	path := filepath.Join(string(dir), runID+".yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		return m.RunSummary{}, errors.Wrapf(err, "read %s", path)
	}

	var summary m.RunSummary
	if err := yaml.Unmarshal(data, &summary); err != nil {
		return m.RunSummary{}, errors.Wrapf(err, "decode %s", path)
	}

	return summary, nil
}

func latestReport(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(ErrNoReports, "in %s", dir)
		}

		return "", errors.Wrapf(err, "list %s", dir)
	}

	var (
		latest   string
		latestAt int64
	)

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}

		info, err := e.Info()
		if err != nil {
			continue
		}

		if at := info.ModTime().UnixNano(); latest == "" || at > latestAt {
			latest, latestAt = strings.TrimSuffix(e.Name(), ".yaml"), at
		}
	}

	if latest == "" {
		return "", errors.Wrapf(ErrNoReports, "in %s", dir)
	}

	return latest, nil
}
