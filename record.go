package election

// Reserved party identifiers. Votes recorded under these names are ballots
// cast without a party choice.
const (
	Blank = "Brancos"
	Null  = "Nulos"
)

// PartyVotes maps a party identifier to its number of votes.
type PartyVotes map[string]int

// MunicipalityRecord holds the raw counts of a single municipality, including
// the reserved Blank and Null entries.
type MunicipalityRecord map[string]int

// DistrictRecord is the raw vote data of a district, one MunicipalityRecord
// per municipality.
type DistrictRecord struct {
	Name           string                        `json:"district"`
	Municipalities map[string]MunicipalityRecord `json:"municipalities"`

	// Source is the file the record was loaded from, if any.
	Source string `json:"-"`
}

// isReserved reports whether party is one of the reserved identifiers.
func isReserved(party string) bool { return party == Blank || party == Null }
