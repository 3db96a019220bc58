package jobtailor

// CleaningResult is the outcome of cleaning one raw description. It is
// ephemeral: the aggregator copies its fields onto the JobPosting and
// discards it.
//
// Invariant: CleanedLength <= OriginalLength. Cleaning is strictly
// subtractive plus whitespace normalization, never additive.
type CleaningResult struct {
	CleanedText      string
	OriginalLength   int
	CleanedLength    int
	ReductionPercent float64
	Sections         map[string]string
	QualityScore     Quality
}

// Stats returns the result's metrics in batch-artifact form.
func (r *CleaningResult) Stats() *CleaningStats {
	return &CleaningStats{
		OriginalLength:   r.OriginalLength,
		CleanedLength:    r.CleanedLength,
		ReductionPercent: r.ReductionPercent,
		QualityScore:     r.QualityScore,
		HasKeySections:   len(r.Sections) > 0,
	}
}

// Cleaner strips UI noise from raw extracted description text and segments
// the remainder into canonical sections.
//
// Clean must be deterministic and side-effect-free: the same input always
// yields an identical result, and implementations must be safe for
// concurrent use.
type Cleaner interface {
	Clean(text string) *CleaningResult
}
