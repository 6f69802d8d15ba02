package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

type Loader struct{}

func NewLoader() *Loader { return &Loader{} }

// Load reads and decodes a JSON document. Numbers come back as json.Number
// so validation can distinguish integers from floats without precision loss.
func (l *Loader) Load(path string) (any, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %v", path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %v", path, err)
	}
	return doc, nil
}
