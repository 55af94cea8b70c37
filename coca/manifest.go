package coca

import (
	"encoding/csv"
	"io"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// ManifestRow is one line of the split manifest that downstream dataset
// loaders consume.
type ManifestRow struct {
	PatientID  string `csv:"patient_id"`
	Assignment string `csv:"assignment"`
}

// Rows flattens the partition into manifest rows, train first, then test,
// then val, each group in its shuffled order.
func (s SplitResult) Rows() []ManifestRow {
	out := make([]ManifestRow, 0, len(s.Train)+len(s.Test)+len(s.Val))

	for _, id := range s.Train {
		out = append(out, ManifestRow{PatientID: id, Assignment: "train"})
	}
	for _, id := range s.Test {
		out = append(out, ManifestRow{PatientID: id, Assignment: "test"})
	}
	for _, id := range s.Val {
		out = append(out, ManifestRow{PatientID: id, Assignment: "val"})
	}

	return out
}

// WriteManifest emits the rows as tab-delimited CSV with a header line.
func WriteManifest(w io.Writer, rows []ManifestRow) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// ReadManifest parses a manifest previously written by WriteManifest.
func ReadManifest(r io.Reader) ([]ManifestRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true

	rows := []ManifestRow{}
	if err := gocsv.UnmarshalCSV(cr, &rows); err != nil {
		return nil, pfx.Err(err)
	}

	return rows, nil
}
