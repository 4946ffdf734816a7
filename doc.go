// Package election tallies election results from per-district vote records.
//
// The core functionalities include:
//   - District tallies: Build turns a DistrictRecord (municipality by
//     municipality party counts) into a Tally of ballots, valid, blank and
//     null votes plus valid votes per party.
//   - National aggregation: Tally.Merge, Tally.Add and Fold combine district
//     tallies. The merge is commutative and associative, and an empty Tally is
//     its identity, so the national result does not depend on the order
//     districts are processed in.
//   - Reports: NewDistrictReport and NewNationalReport derive the percentages
//     shown in the text reports, with a single rounding rule.
//   - Loading: district records are JSON files discovered in an input folder.
//     A district that fails to load or build is reported and skipped, the
//     others are still tabulated.
//
// This package serves as the foundational logic for the `tally` command-line
// tool.
package election
