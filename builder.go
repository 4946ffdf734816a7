package election

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is returned when a district record carries an invalid
// vote count or party identifier.
var ErrMalformedRecord = errors.New("malformed record")

// Build computes the tally of a single district.
//
// Votes of every municipality are summed; the Blank and Null identifiers go to
// the blank and null counters, every other identifier is a party. Build fails
// with ErrMalformedRecord on a negative count or an empty party identifier.
func Build(record *DistrictRecord) (*Tally, error) {
	if record == nil {
		return nil, fmt.Errorf("%w: nil district record", ErrMalformedRecord)
	}
	t := NewTally()
	for municipality, votes := range record.Municipalities {
		for party, n := range votes {
			if party == "" {
				return nil, fmt.Errorf("%w: district %q, municipality %q: empty party identifier", ErrMalformedRecord, record.Name, municipality)
			}
			if n < 0 {
				return nil, fmt.Errorf("%w: district %q, municipality %q: party %q has %d votes", ErrMalformedRecord, record.Name, municipality, party, n)
			}
			t.count(party, n)
		}
	}
	return t, nil
}
