package election

// Report holds the figures shown in a district or national report.
// Counts are exact, percentages keep full precision and are only rounded
// when rendered (see Percent.Round).
type Report struct {
	// Name of the district, "National Results" for the national report.
	Name string `json:"name"`
	// National is true for the aggregated report of all districts.
	National bool `json:"national,omitempty"`

	Ballots int `json:"ballots"`
	Valid   int `json:"valid"`
	Blank   int `json:"blank"`
	Null    int `json:"null"`

	// PercentValid, PercentBlank and PercentNull are shares of Ballots.
	PercentValid Percent `json:"percentValid"`
	PercentBlank Percent `json:"percentBlank"`
	PercentNull  Percent `json:"percentNull"`

	// Parties in lexicographic order.
	Parties []PartyResult `json:"parties"`
}

// PartyResult is the result of a single party.
type PartyResult struct {
	Party string `json:"party"`
	Votes int    `json:"votes"`
	// Percent is the share of valid votes; blank and null ballots do not
	// dilute it.
	Percent Percent `json:"percent"`
}

// NationalName is the name of the national report.
const NationalName = "National Results"

// NewDistrictReport derives the report of a district from its tally.
func NewDistrictReport(name string, t *Tally) *Report {
	return newReport(name, t)
}

// NewNationalReport derives the national report from the national tally.
func NewNationalReport(t *Tally) *Report {
	r := newReport(NationalName, t)
	r.National = true
	return r
}

func newReport(name string, t *Tally) *Report {
	if t == nil {
		t = NewTally()
	}
	r := &Report{
		Name:         name,
		Ballots:      t.Ballots(),
		Valid:        t.Valid(),
		Blank:        t.Blank(),
		Null:         t.Null(),
		PercentValid: NewPercent(t.Valid(), t.Ballots()),
		PercentBlank: NewPercent(t.Blank(), t.Ballots()),
		PercentNull:  NewPercent(t.Null(), t.Ballots()),
		Parties:      []PartyResult{},
	}
	for party, votes := range t.Parties() {
		r.Parties = append(r.Parties, PartyResult{
			Party:   party,
			Votes:   votes,
			Percent: NewPercent(votes, t.Valid()),
		})
	}
	return r
}

// Leader returns the party with the most votes. Ties go to the party first in
// lexicographic order. It returns false when no party has a vote.
func (r *Report) Leader() (PartyResult, bool) {
	var leader PartyResult
	for _, p := range r.Parties {
		if p.Votes > leader.Votes {
			leader = p
		}
	}
	return leader, leader.Votes > 0
}
