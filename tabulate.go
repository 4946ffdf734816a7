package election

import (
	"fmt"
	"iter"
)

// DistrictResult is the tally of a successfully processed district.
type DistrictResult struct {
	Name   string
	Source string
	Tally  *Tally
}

// Results is the outcome of a tabulation.
type Results struct {
	// Districts in processing order.
	Districts []DistrictResult
	// National is the merge of all Districts tallies.
	National *Tally
	// Failures lists the districts that could not be loaded or built.
	Failures []error
}

// Tabulate builds the tally of each record and folds it into the national
// tally.
//
// A district failure is isolated: it is appended to Failures, the district
// contributes nothing to National and the remaining records are processed.
// With no records at all National is an empty tally.
func Tabulate(records iter.Seq2[*DistrictRecord, error]) *Results {
	res := &Results{National: NewTally()}
	seen := make(map[string]string) // district name -> source
	for record, err := range records {
		if err != nil {
			res.Failures = append(res.Failures, err)
			continue
		}
		if record == nil {
			res.Failures = append(res.Failures, fmt.Errorf("%w: nil district record", ErrMalformedRecord))
			continue
		}
		if src, exists := seen[record.Name]; exists {
			res.Failures = append(res.Failures, &RecordLoadError{
				Path: record.Source,
				Err:  fmt.Errorf("district %q is already loaded from %q", record.Name, src),
			})
			continue
		}
		t, err := Build(record)
		if err != nil {
			res.Failures = append(res.Failures, fmt.Errorf("district %q: %w", record.Name, err))
			continue
		}
		seen[record.Name] = record.Source
		res.National.Add(t)
		res.Districts = append(res.Districts, DistrictResult{
			Name:   record.Name,
			Source: record.Source,
			Tally:  t,
		})
	}
	return res
}

// Records adapts in memory records to the input of Tabulate.
func Records(records ...*DistrictRecord) iter.Seq2[*DistrictRecord, error] {
	return func(yield func(*DistrictRecord, error) bool) {
		for _, r := range records {
			if !yield(r, nil) {
				return
			}
		}
	}
}
