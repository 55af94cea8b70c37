package roi

import (
	"encoding/json"
	"log"
	"os"

	"github.com/carbocation/pfx"
)

// ParseBinaryAnnotationsFromPath decodes a binary-task annotation file: a
// JSON array of per-image records, each with an index and a flat position
// list.
func ParseBinaryAnnotationsFromPath(path string) ([]BinaryRecord, error) {
	out := []BinaryRecord{}

	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&out); err != nil {
		if e, ok := err.(*json.SyntaxError); ok {
			log.Printf("syntax error at byte offset %d", e.Offset)
		}

		return nil, pfx.Err(err)
	}

	return out, nil
}

// ParseMulticlassAnnotationsFromPath decodes a multiclass-task annotation
// file: a JSON array of per-image records, each with an index and a list of
// labeled regions.
func ParseMulticlassAnnotationsFromPath(path string) ([]MulticlassRecord, error) {
	out := []MulticlassRecord{}

	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&out); err != nil {
		if e, ok := err.(*json.SyntaxError); ok {
			log.Printf("syntax error at byte offset %d", e.Offset)
		}

		return nil, pfx.Err(err)
	}

	return out, nil
}
