// Where: internal/domain/change/change.go
// What: Pure classification of overwritten files for run summaries.
// Why: Generation overwrites unconditionally, so summaries say what actually changed.
package change

import "fmt"

// Kind describes what a write did to its target.
type Kind string

const (
	Added     Kind = "new"
	Updated   Kind = "updated"
	Unchanged Kind = "unchanged"
)

// Classify compares the previous content of a target with the content about to be written.
func Classify(existed bool, before, after string) Kind {
	switch {
	case !existed:
		return Added
	case before != after:
		return Updated
	default:
		return Unchanged
	}
}

// Counts stores per-kind counters for one run.
type Counts struct {
	Added     int
	Updated   int
	Unchanged int
}

// Record increments the counter for kind.
func (c *Counts) Record(kind Kind) {
	switch kind {
	case Added:
		c.Added++
	case Updated:
		c.Updated++
	case Unchanged:
		c.Unchanged++
	}
}

// Total is the number of recorded writes.
func (c Counts) Total() int {
	return c.Added + c.Updated + c.Unchanged
}

// FormatCounts formats counts for generate summaries.
func FormatCounts(counts Counts) string {
	return fmt.Sprintf(
		"new %d / updated %d / unchanged %d (total %d)",
		counts.Added,
		counts.Updated,
		counts.Unchanged,
		counts.Total(),
	)
}
