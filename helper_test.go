package election

// district is a helper for tests to create a district record.
func district(name string, municipalities map[string]MunicipalityRecord) *DistrictRecord {
	return &DistrictRecord{Name: name, Municipalities: municipalities}
}

// single is a helper for tests to create a district with a single municipality.
func single(name string, votes MunicipalityRecord) *DistrictRecord {
	return district(name, map[string]MunicipalityRecord{name: votes})
}

// mustBuild builds a district tally and panics on error.
func mustBuild(record *DistrictRecord) *Tally {
	t, err := Build(record)
	if err != nil {
		panic(err)
	}
	return t
}
