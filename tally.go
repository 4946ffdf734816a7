package election

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Tally is the normalized count of a district or of the whole nation.
//
// A Tally never decreases: it is either built once from a DistrictRecord or
// used as an accumulator that only grows through Add.
type Tally struct {
	ballots int
	valid   int
	blank   int
	null    int
	parties PartyVotes
}

// NewTally returns an empty Tally, the identity of Merge.
func NewTally() *Tally {
	return &Tally{parties: make(PartyVotes)}
}

// Ballots returns the total number of ballots cast, including blank and null ones.
func (t *Tally) Ballots() int { return t.ballots }

// Valid returns the number of ballots attributed to a party.
func (t *Tally) Valid() int { return t.valid }

// Blank returns the number of blank ballots.
func (t *Tally) Blank() int { return t.blank }

// Null returns the number of null ballots.
func (t *Tally) Null() int { return t.null }

// Votes returns the valid votes of a party, 0 if it has none.
func (t *Tally) Votes(party string) int { return t.parties[party] }

// Parties iterates over parties and their votes in lexicographic order.
func (t *Tally) Parties() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, party := range slices.Sorted(maps.Keys(t.parties)) {
			if !yield(party, t.parties[party]) {
				return
			}
		}
	}
}

// PartyVotes returns a copy of the per party counts.
func (t *Tally) PartyVotes() PartyVotes { return maps.Clone(t.parties) }

// count records votes for a party, routing the reserved identifiers to the
// blank and null counters.
func (t *Tally) count(party string, votes int) {
	t.ballots += votes
	switch party {
	case Blank:
		t.blank += votes
	case Null:
		t.null += votes
	default:
		t.valid += votes
		t.parties[party] += votes
	}
}

// Add accumulates other into t. A nil other is an empty tally.
func (t *Tally) Add(other *Tally) {
	if other == nil {
		return
	}
	if t.parties == nil {
		t.parties = make(PartyVotes)
	}
	t.ballots += other.ballots
	t.valid += other.valid
	t.blank += other.blank
	t.null += other.null
	for party, votes := range other.parties {
		t.parties[party] += votes
	}
}

// Merge returns the sum of t and other, leaving both untouched.
func (t *Tally) Merge(other *Tally) *Tally {
	res := NewTally()
	res.Add(t)
	res.Add(other)
	return res
}

// Fold merges all tallies into a new one. Fold() is an empty tally.
func Fold(tallies ...*Tally) *Tally {
	res := NewTally()
	for _, t := range tallies {
		res.Add(t)
	}
	return res
}

// Equal reports whether t and other hold the same counts.
// A party with zero votes is the same as an absent party.
func (t *Tally) Equal(other *Tally) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.ballots != other.ballots || t.valid != other.valid || t.blank != other.blank || t.null != other.null {
		return false
	}
	for party, votes := range t.parties {
		if other.parties[party] != votes {
			return false
		}
	}
	for party, votes := range other.parties {
		if t.parties[party] != votes {
			return false
		}
	}
	return true
}

// Check verifies the tally invariants.
func (t *Tally) Check() error {
	if t.ballots != t.valid+t.blank+t.null {
		return fmt.Errorf("ballots %d differ from valid %d + blank %d + null %d", t.ballots, t.valid, t.blank, t.null)
	}
	sum := 0
	for party, votes := range t.parties {
		if isReserved(party) {
			return fmt.Errorf("reserved identifier %q counted as a party", party)
		}
		sum += votes
	}
	if sum != t.valid {
		return fmt.Errorf("party votes sum to %d, want %d valid votes", sum, t.valid)
	}
	return nil
}

// String returns a compact one line description, for logs.
func (t *Tally) String() string {
	return fmt.Sprintf("ballots=%d valid=%d blank=%d null=%d parties=%d", t.ballots, t.valid, t.blank, t.null, len(t.parties))
}
