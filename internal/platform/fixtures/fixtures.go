// Package fixtures loads the static dataset that stands in for a real
// backend. The asset ships embedded in the binary; FIXTURES_PATH swaps in
// an alternative file without a rebuild.
package fixtures

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"workpulse/internal/domain/directory"
)

//go:embed data/fixtures.json
var defaultAsset []byte

func Load(path string) (*directory.Store, error) {
	raw := defaultAsset
	if path != "" {
		fileRaw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixtures %s: %w", path, err)
		}
		raw = fileRaw
	}

	var set directory.FixtureSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	if len(set.Employees) == 0 {
		return nil, fmt.Errorf("fixtures contain no employees")
	}

	for i := range set.Employees {
		if set.Employees[i].PerformanceScore == 0 {
			set.Employees[i].PerformanceScore = ScoreFromComponents(set.Employees[i])
		}
	}

	return directory.NewStore(set), nil
}

// ScoreFromComponents is the canonical fallback score: the unweighted mean
// of the five sub-scores, rounded to one decimal. Fixture-precomputed
// scores take precedence; this only backfills records without one.
func ScoreFromComponents(emp directory.Employee) float64 {
	mean := (emp.Productivity + emp.Attendance + emp.TaskCompletion + emp.SkillLevel + emp.Engagement) / 5
	return math.Round(mean*10) / 10
}
