package jsonenc

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"ts2go/runtime-go/pkg/runtime"
)

// Parse decodes JSON text into a dynamic value. Objects become records with
// key order preserved from the document; arrays become sequences; numbers
// become doubles. A syntax error or trailing garbage is reported as an
// error.
func Parse(text string) (runtime.Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	value, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("jsonenc: parse: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("jsonenc: parse: trailing data after top-level value")
	}
	return value, nil
}

func decodeValue(dec *json.Decoder) (runtime.Value, error) {
	token, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFromToken(dec, token)
}

func decodeFromToken(dec *json.Decoder, token json.Token) (runtime.Value, error) {
	switch t := token.(type) {
	case nil:
		return runtime.Null, nil
	case bool:
		return runtime.NewBool(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return runtime.NewNumber(f), nil
	case string:
		return runtime.NewText(t), nil
	case json.Delim:
		switch t {
		case '[':
			return decodeSequence(dec)
		case '{':
			return decodeRecord(dec)
		}
	}
	return nil, fmt.Errorf("unexpected token %v", token)
}

func decodeSequence(dec *json.Decoder) (runtime.Value, error) {
	seq := runtime.NewSequence(nil)
	for dec.More() {
		element, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		seq.Push(element)
	}
	if _, err := dec.Token(); err != nil { // closing ]
		return nil, err
	}
	return seq, nil
}

func decodeRecord(dec *json.Decoder) (runtime.Value, error) {
	record := runtime.NewRecord()
	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyToken.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyToken)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		record.Set(key, value)
	}
	if _, err := dec.Token(); err != nil { // closing }
		return nil, err
	}
	return record, nil
}
