package election

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"slices"
)

// districtFilesGlob matches district files in the input folder.
const districtFilesGlob = "*.json"

// RecordLoadError reports a district record that could not be loaded:
// missing, corrupt or of the wrong shape.
type RecordLoadError struct {
	Path string
	Err  error
}

func (e *RecordLoadError) Error() string {
	return fmt.Sprintf("load error %s: %v", e.Path, e.Err)
}

func (e *RecordLoadError) Unwrap() error { return e.Err }

// FindDistrictFiles returns the district files of a folder, sorted by name.
// A missing folder is an error wrapping fs.ErrNotExist.
func FindDistrictFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot open input folder %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input %q is not a folder", dir)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot scan folder %q for district files: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		// the pattern is constant and valid, Match cannot fail.
		if ok, _ := filepath.Match(districtFilesGlob, e.Name()); ok {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(paths)
	return paths, nil
}

// DecodeDistrict reads a single district record in JSON.
//
// Unknown properties, non integer counts and trailing data are rejected, and
// the district name is mandatory. Counts are not validated here, see Build.
func DecodeDistrict(r io.Reader) (*DistrictRecord, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var record DistrictRecord
	if err := dec.Decode(&record); err != nil {
		return nil, fmt.Errorf("not a district record: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after the district record")
	}
	if record.Name == "" {
		return nil, fmt.Errorf("missing property %q", "district")
	}
	return &record, nil
}

// LoadDistrict opens and decodes a district file.
// Any failure is returned as a *RecordLoadError.
func LoadDistrict(path string) (*DistrictRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &RecordLoadError{Path: path, Err: err}
	}
	defer f.Close()

	record, err := DecodeDistrict(f)
	if err != nil {
		return nil, &RecordLoadError{Path: path, Err: err}
	}
	record.Source = path
	return record, nil
}

// ReadDistricts loads each path in turn. A path that fails to load yields a
// nil record and its error, and iteration goes on.
func ReadDistricts(paths ...string) iter.Seq2[*DistrictRecord, error] {
	return func(yield func(*DistrictRecord, error) bool) {
		for _, path := range paths {
			if !yield(LoadDistrict(path)) {
				return
			}
		}
	}
}
