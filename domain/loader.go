package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultVersion is assumed when the log carries no version, as HAR 1.2 prescribes.
const DefaultVersion = "1.1"

var supportedVersions = map[string]bool{
	"1.1": true,
	"1.2": true,
}

// rawDocument keeps log and entries as pointers so that absent keys can be
// told apart from empty ones.
type rawDocument struct {
	Log *struct {
		Version string   `json:"version"`
		Creator *Creator `json:"creator,omitempty"`
		Entries *[]Entry `json:"entries"`
	} `json:"log"`
}

// ParseDocument decodes a HAR document. It either returns the whole document
// or a *ParseError, never a partial result.
func ParseDocument(data []byte) (*Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, newSyntaxParseError(data, err)
	}

	if raw.Log == nil {
		return nil, &ParseError{Err: ErrMissingLog}
	}
	if raw.Log.Entries == nil {
		return nil, &ParseError{Err: ErrMissingEntries}
	}

	version := raw.Log.Version
	if version == "" {
		version = DefaultVersion
	}
	if !supportedVersions[version] {
		return nil, &ParseError{Err: fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)}
	}

	return &Document{
		Log: Log{
			Version: version,
			Creator: raw.Log.Creator,
			Entries: *raw.Log.Entries,
		},
	}, nil
}

func newSyntaxParseError(data []byte, err error) *ParseError {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		offset    int64
	)
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return &ParseError{Err: err}
	}

	line, column := position(data, offset)
	return &ParseError{Line: line, Column: column, Err: err}
}

func position(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line := bytes.Count(before, []byte{'\n'}) + 1
	column := int(offset) - bytes.LastIndexByte(before, '\n')
	return line, column
}
