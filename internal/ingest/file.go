package ingest

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Log is a YAML workout log:
//
//	title: "Tuesday"
//	date: "2024-01-15"
//	exercises:
//	  - kind: cardio
//	    name: Running
//	    distance: 3.5
//	    duration: 30
type Log struct {
	Title     string  `yaml:"title"`
	Date      string  `yaml:"date"`
	Exercises []Entry `yaml:"exercises"`
}

// Entries returns the log's exercises with the log-level date applied to
// entries that do not carry their own.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.Exercises))
	for i, e := range l.Exercises {
		if e.Date == "" {
			e.Date = l.Date
		}
		out[i] = e
	}
	return out
}

// LoadFile reads and decodes a YAML workout log.
func LoadFile(path string) (*Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workout log: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Decode parses a YAML workout log from r. Unknown fields are rejected so
// typos in quantity names surface instead of silently defaulting to zero.
func Decode(r io.Reader) (*Log, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var l Log
	if err := dec.Decode(&l); err != nil {
		if err == io.EOF {
			return &l, nil
		}
		return nil, fmt.Errorf("parsing workout log: %w", err)
	}
	return &l, nil
}
