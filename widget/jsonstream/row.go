// Package jsonstream implements a collapsible, line-oriented view over
// streamed JSON values: each object/array becomes a paired Open/Close
// row so a user can collapse a container to a single line and expand it
// again without losing its place.
//
// Grounded on original_source/promkit/src/jsonz.rs.
package jsonstream

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Container distinguishes the two collapsible shapes.
type Container int

const (
	Object Container = iota
	Array
)

// Kind discriminates a Row's shape.
type Kind int

const (
	KindOpen Kind = iota
	KindClose
	KindLeaf
	KindEmpty
)

// Row is one flattened line of a parsed JSON value.
type Row struct {
	Kind      Kind
	Key       string // object key, "" for array elements or the root
	Value     string // rendered scalar, for KindLeaf
	Container Container
	Depth     int

	// OpenIndex/CloseIndex pair up KindClose/KindOpen rows (the index
	// into the owning Stream's flat Rows slice of its partner). Set to
	// -1 on rows for which they don't apply.
	OpenIndex  int
	CloseIndex int

	Collapsed bool // valid only on KindOpen rows
}

// Stream is a parsed JSON value as a flat, collapsible row list; Cursor
// tracks which of its rows are currently visible.
type Stream struct {
	rows []Row
}

// Parse decodes raw JSON text into a Stream. An error is returned if
// raw isn't valid JSON.
//
// Rows are built by walking json.Decoder's token stream rather than
// unmarshaling into map[string]interface{}, so object keys keep the
// order they appear in the source document instead of being resorted
// alphabetically (alphabetical order is only for FormatRawJSON's
// pretty-printed preview, a separate concern).
func Parse(raw []byte) (*Stream, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	rows, err := decodeValue(dec, 0, "")
	if err != nil {
		return nil, err
	}
	return &Stream{rows: rows}, nil
}

// Rows returns the full, unfiltered row list (ignoring collapse state).
func (s *Stream) Rows() []Row {
	return s.rows
}

func decodeValue(dec *json.Decoder, depth int, key string) ([]Row, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return []Row{{Kind: KindLeaf, Key: key, Value: scalarString(tok), Depth: depth, OpenIndex: -1, CloseIndex: -1}}, nil
	}
	switch delim {
	case '{':
		return decodeContainer(dec, depth, key, Object)
	case '[':
		return decodeContainer(dec, depth, key, Array)
	default:
		return nil, fmt.Errorf("jsonstream: unexpected closing delimiter %q", delim)
	}
}

// decodeContainer consumes an already-read opening delimiter's body
// and its matching close, preserving source encounter order for both
// object keys and array elements.
func decodeContainer(dec *json.Decoder, depth int, key string, kind Container) ([]Row, error) {
	const openIdx = 0
	out := []Row{{Kind: KindOpen, Key: key, Container: kind, Depth: depth, OpenIndex: -1}}
	empty := true
	for dec.More() {
		empty = false
		childKey := ""
		if kind == Object {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			childKey = keyTok.(string)
		}
		sub, err := decodeValue(dec, depth+1, childKey)
		if err != nil {
			return nil, err
		}
		// sub's partner indexes count from sub's own start; shift them
		// to positions in out.
		base := len(out)
		for k := range sub {
			switch sub[k].Kind {
			case KindOpen:
				sub[k].CloseIndex += base
			case KindClose:
				sub[k].OpenIndex += base
			}
		}
		out = append(out, sub...)
	}
	if _, err := dec.Token(); err != nil { // consume the closing delimiter
		return nil, err
	}
	if empty {
		return []Row{{Kind: KindEmpty, Key: key, Container: kind, Depth: depth, OpenIndex: -1, CloseIndex: -1}}, nil
	}
	closeIdx := len(out)
	out = append(out, Row{Kind: KindClose, Container: kind, Depth: depth, CloseIndex: -1})
	out[openIdx].CloseIndex = closeIdx
	out[closeIdx].OpenIndex = openIdx
	return out, nil
}

func scalarString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return formatFloat(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
