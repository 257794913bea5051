package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	iradix "github.com/hashicorp/go-immutable-radix/v2"
)

// Serialize renders the store as a compact JSON object keyed by entry name in
// ascending order. Each value carries name, username, password and notes in
// that order. A name or field that is not valid UTF-8 fails with
// ErrInvalidText.
func (s *Store) Serialize() (string, error) {
	b, err := s.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MarshalJSON implements json.Marshaler with the same output as Serialize.
func (s *Store) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	// Encoder terminates every value with a newline; strip it so the object
	// stays on one line.
	encode := func(v any) error {
		if err := enc.Encode(v); err != nil {
			return err
		}
		buf.Truncate(buf.Len() - 1)
		return nil
	}

	buf.WriteByte('{')
	first := true
	for name, entry := range s.All() {
		if !validText(name, entry) {
			return nil, fmt.Errorf("entry %q: %w", name, ErrInvalidText)
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := encode(name); err != nil {
			return nil, fmt.Errorf("encode key %q: %w", name, err)
		}
		buf.WriteByte(':')
		if err := encode(entry); err != nil {
			return nil, fmt.Errorf("encode entry %q: %w", name, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func validText(name string, e Entry) bool {
	for _, s := range []string{name, e.Name, e.Username, e.Password, e.Notes} {
		if !utf8.ValidString(s) {
			return false
		}
	}
	return true
}

// UnmarshalJSON implements json.Unmarshaler with the same rules as
// Deserialize.
func (s *Store) UnmarshalJSON(data []byte) error {
	parsed, err := decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}

// Deserialize parses text produced by Serialize. Anything else, including
// unknown, missing, repeated or non-string fields and repeated entry names,
// yields a *ParseError.
func Deserialize(text string) (*Store, error) {
	return decode(strings.NewReader(text))
}

func decode(r io.Reader) (*Store, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{', "store"); err != nil {
		return nil, err
	}

	txn := iradix.New[Entry]().Txn()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, syntaxError(err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, &ParseError{Msg: fmt.Sprintf("unexpected token %v", tok)}
		}
		if _, dup := txn.Get([]byte(name)); dup {
			return nil, &ParseError{Msg: fmt.Sprintf("duplicate entry %q", name)}
		}
		entry, err := decodeEntry(dec, name)
		if err != nil {
			return nil, err
		}
		txn.Insert([]byte(name), entry)
	}
	if err := expectDelim(dec, '}', "store"); err != nil {
		return nil, err
	}

	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, syntaxError(err)
		}
		return nil, &ParseError{Msg: fmt.Sprintf("unexpected data after store: %v", tok)}
	}

	return &Store{tree: txn.Commit()}, nil
}

func decodeEntry(dec *json.Decoder, name string) (Entry, error) {
	what := fmt.Sprintf("entry %q", name)
	if err := expectDelim(dec, '{', what); err != nil {
		return Entry{}, err
	}

	var entry Entry
	fields := map[string]*string{
		"name":     &entry.Name,
		"username": &entry.Username,
		"password": &entry.Password,
		"notes":    &entry.Notes,
	}
	seen := make(map[string]bool, len(fields))

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Entry{}, syntaxError(err)
		}
		field, _ := tok.(string)
		dst, known := fields[field]
		if !known {
			return Entry{}, &ParseError{Msg: fmt.Sprintf("%s: unknown field %q", what, field)}
		}
		if seen[field] {
			return Entry{}, &ParseError{Msg: fmt.Sprintf("%s: duplicate field %q", what, field)}
		}
		seen[field] = true

		tok, err = dec.Token()
		if err != nil {
			return Entry{}, syntaxError(err)
		}
		value, ok := tok.(string)
		if !ok {
			return Entry{}, &ParseError{Msg: fmt.Sprintf("%s: field %q is not a string", what, field)}
		}
		*dst = value
	}
	if err := expectDelim(dec, '}', what); err != nil {
		return Entry{}, err
	}

	for _, field := range []string{"name", "username", "password", "notes"} {
		if !seen[field] {
			return Entry{}, &ParseError{Msg: fmt.Sprintf("%s: missing field %q", what, field)}
		}
	}
	return entry, nil
}

func expectDelim(dec *json.Decoder, want json.Delim, what string) error {
	tok, err := dec.Token()
	if err != nil {
		return syntaxError(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		if want == '{' {
			return &ParseError{Msg: what + " is not an object"}
		}
		return &ParseError{Msg: fmt.Sprintf("%s: unexpected token %v", what, tok)}
	}
	return nil
}

func syntaxError(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return &ParseError{Msg: "invalid JSON", Err: err}
}
