package store

import (
	"os"
	"unicode/utf8"
)

// Load reads and deserializes the store file at path. The file must already
// exist; Load never creates it.
func Load(path string) (*Store, error) {
	//nolint:gosec // G304: the store path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &ParseError{Msg: "file is not valid UTF-8"}
	}
	return Deserialize(string(data))
}

// Save serializes the store and replaces the contents of the file at path,
// creating it if needed. The write is not atomic.
func (s *Store) Save(path string) error {
	text, err := s.Serialize()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Exists reports whether a store file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
