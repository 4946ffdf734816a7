package election

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// writeFiles creates files in a temporary folder and returns it.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestDecodeDistrict(t *testing.T) {
	input := `{"district": "Lisboa", "municipalities": {"Sintra": {"PartyX": 100, "Brancos": 5}, "Cascais": {"Nulos": 3}}}`
	got, err := DecodeDistrict(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeDistrict() unexpected error: %v", err)
	}
	if got.Name != "Lisboa" {
		t.Errorf("Name = %q, want %q", got.Name, "Lisboa")
	}
	if got.Municipalities["Sintra"]["PartyX"] != 100 || got.Municipalities["Sintra"][Blank] != 5 || got.Municipalities["Cascais"][Null] != 3 {
		t.Errorf("Municipalities = %v", got.Municipalities)
	}
}

func TestDecodeDistrict_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"empty", ``},
		{"not json", `district: Lisboa`},
		{"truncated", `{"district": "Lisboa", "municipalities": {`},
		{"unknown property", `{"district": "Lisboa", "parties": {}}`},
		{"fractional votes", `{"district": "Lisboa", "municipalities": {"Sintra": {"PartyX": 1.5}}}`},
		{"votes as string", `{"district": "Lisboa", "municipalities": {"Sintra": {"PartyX": "1"}}}`},
		{"missing name", `{"municipalities": {"Sintra": {"PartyX": 1}}}`},
		{"trailing data", `{"district": "Lisboa"} {"district": "Porto"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeDistrict(strings.NewReader(tc.input)); err == nil {
				t.Errorf("DecodeDistrict(%q) expected an error", tc.input)
			}
		})
	}
}

func TestDecodeDistrict_NegativeVotesAreLoaded(t *testing.T) {
	// negative counts are a build failure, not a load failure.
	record, err := DecodeDistrict(strings.NewReader(`{"district": "Lisboa", "municipalities": {"Sintra": {"PartyX": -1}}}`))
	if err != nil {
		t.Fatalf("DecodeDistrict() unexpected error: %v", err)
	}
	if _, err := Build(record); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("Build() error = %v, want %v", err, ErrMalformedRecord)
	}
}

func TestFindDistrictFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"porto.json":  `{}`,
		"lisboa.json": `{}`,
		"notes.txt":   `ignored`,
	})
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindDistrictFiles(dir)
	if err != nil {
		t.Fatalf("FindDistrictFiles() unexpected error: %v", err)
	}
	want := []string{filepath.Join(dir, "lisboa.json"), filepath.Join(dir, "porto.json")}
	if !slices.Equal(got, want) {
		t.Errorf("FindDistrictFiles() = %v, want %v", got, want)
	}
}

func TestFindDistrictFiles_PatternCharactersInFolder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dados[2024]")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := FindDistrictFiles(dir)
	if err != nil {
		t.Fatalf("FindDistrictFiles() unexpected error: %v", err)
	}
	want := []string{filepath.Join(dir, "a.json")}
	if !slices.Equal(got, want) {
		t.Errorf("FindDistrictFiles() = %v, want %v", got, want)
	}
}

func TestFindDistrictFiles_MissingFolder(t *testing.T) {
	_, err := FindDistrictFiles(filepath.Join(t.TempDir(), "dados"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("FindDistrictFiles() error = %v, want %v", err, fs.ErrNotExist)
	}
}

func TestLoadDistrict(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"lisboa.json": `{"district": "Lisboa", "municipalities": {"Sintra": {"PartyX": 1}}}`,
		"broken.json": `{"district": "Porto", `,
	})

	record, err := LoadDistrict(filepath.Join(dir, "lisboa.json"))
	if err != nil {
		t.Fatalf("LoadDistrict() unexpected error: %v", err)
	}
	if record.Source != filepath.Join(dir, "lisboa.json") {
		t.Errorf("Source = %q", record.Source)
	}

	for _, name := range []string{"broken.json", "missing.json"} {
		path := filepath.Join(dir, name)
		_, err := LoadDistrict(path)
		var target *RecordLoadError
		if !errors.As(err, &target) {
			t.Fatalf("LoadDistrict(%q) error = %v, want a *RecordLoadError", name, err)
		}
		if target.Path != path {
			t.Errorf("RecordLoadError.Path = %q, want %q", target.Path, path)
		}
	}
}

func TestReadDistricts_Tabulate(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"1.json": `{"district": "District1", "municipalities": {"m": {"PartyX": 60, "PartyY": 40}}}`,
		"2.json": `{"district": "District2", "municipalities": {"m": {"PartyX": 40, "PartyY": 60}}}`,
		"3.json": `corrupt`,
		"4.json": `{"district": "District4", "municipalities": {"m": {"PartyX": -1}}}`,
	})
	paths, err := FindDistrictFiles(dir)
	if err != nil {
		t.Fatal(err)
	}

	res := Tabulate(ReadDistricts(paths...))

	if len(res.Failures) != 2 {
		t.Errorf("Failures = %v, want 2", res.Failures)
	}
	if len(res.Districts) != 2 {
		t.Errorf("len(Districts) = %d, want 2", len(res.Districts))
	}
	national := NewNationalReport(res.National)
	if national.Valid != 200 {
		t.Errorf("national Valid = %d, want 200", national.Valid)
	}
	for _, p := range national.Parties {
		if p.Votes != 100 || p.Percent.String() != "50.00%" {
			t.Errorf("party %s = %d (%s), want 100 (50.00%%)", p.Party, p.Votes, p.Percent)
		}
	}
}
