// Package usecase implements the interactive pm flows on top of the entry
// store. Every flow takes the prompt and output handles it needs explicitly,
// so flows run the same against a terminal or canned test input.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/choplin/pm/internal/clipboard"
	"github.com/choplin/pm/internal/logging"
	"github.com/choplin/pm/internal/prompt"
	"github.com/choplin/pm/internal/store"
)

var (
	// ErrAborted is returned when the user declines to create a missing
	// store file.
	ErrAborted = errors.New("aborted: store file not created")
	// ErrNameTaken is returned when an edit would rename an entry onto
	// another existing entry.
	ErrNameTaken = errors.New("an entry with that name already exists")
)

// Entries runs flows against one user session.
type Entries struct {
	prompt prompt.Prompter
	out    io.Writer
	log    *slog.Logger
}

// NewEntries returns flows that ask questions through p and print results to
// out. A nil logger discards records.
func NewEntries(p prompt.Prompter, out io.Writer, log *slog.Logger) *Entries {
	if log == nil {
		log = logging.Discard()
	}
	return &Entries{prompt: p, out: out, log: log}
}

// Open loads the store at path. When the file does not exist the user is
// asked whether to create it; on "y" an empty store is saved there.
func (u *Entries) Open(path string) (*store.Store, error) {
	if store.Exists(path) {
		s, err := store.Load(path)
		if err != nil {
			return nil, err
		}
		u.log.Debug("store loaded", "path", path, "entries", s.Len())
		return s, nil
	}

	ok, err := prompt.Confirm(u.prompt, fmt.Sprintf("The file %q doesn't exist. Create it? (y/n) ", path))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAborted
	}

	s := store.New()
	if err := s.Save(path); err != nil {
		return nil, err
	}
	u.log.Info("store created", "path", path)
	return s, nil
}

// List prints every entry name with its 1-based position.
func (u *Entries) List(s *store.Store) error {
	i := 1
	for name := range s.Keys() {
		if _, err := fmt.Fprintf(u.out, "%d: %s\n", i, name); err != nil {
			return err
		}
		i++
	}
	return nil
}

// Add asks for a new entry and returns the store with it added. The name is
// asked again while it collides with an existing entry, and the password
// while it is empty.
func (u *Entries) Add(s *store.Store) (*store.Store, error) {
	var name string
	for {
		var err error
		name, err = u.prompt.ReadLine("Name: ")
		if err != nil {
			return s, err
		}
		if !s.ContainsKey(name) {
			break
		}
		fmt.Fprintf(u.out, "An entry with the name %q already exists. Did you want to edit it instead?\n", name)
	}

	username, err := u.prompt.ReadLine("Username: ")
	if err != nil {
		return s, err
	}

	var password string
	for password == "" {
		password, err = u.prompt.ReadSecret("Password: ")
		if err != nil {
			return s, err
		}
	}

	notes, err := u.prompt.ReadLine("Notes: ")
	if err != nil {
		return s, err
	}

	u.log.Debug("entry added", "name", name)
	return s.Update(name, store.Entry{
		Name:     name,
		Username: username,
		Password: password,
		Notes:    notes,
	}), nil
}

// Show prints all fields of the named entry.
func (u *Entries) Show(s *store.Store, name string) error {
	entry, err := u.lookup(s, name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(u.out, "Name: %s\nUsername: %s\nPassword: %s\nNotes: %s\n",
		entry.Name, entry.Username, entry.Password, entry.Notes)
	return err
}

// Edit asks for new values for each field of the named entry, keeping the
// current value on an empty answer. The entry is removed under its old name
// and stored under the (possibly new) one.
func (u *Entries) Edit(s *store.Store, name string) (*store.Store, error) {
	entry, err := u.lookup(s, name)
	if err != nil {
		return s, err
	}

	newName, err := u.askDefault(fmt.Sprintf("Name [%s]: ", entry.Name), entry.Name)
	if err != nil {
		return s, err
	}
	username, err := u.askDefault(fmt.Sprintf("Username [%s]: ", entry.Username), entry.Username)
	if err != nil {
		return s, err
	}
	password, err := u.prompt.ReadSecret("Password [unchanged]: ")
	if err != nil {
		return s, err
	}
	if password == "" {
		password = entry.Password
	}
	notes, err := u.askDefault(fmt.Sprintf("Notes [%s]: ", entry.Notes), entry.Notes)
	if err != nil {
		return s, err
	}

	if newName != name && s.ContainsKey(newName) {
		return s, fmt.Errorf("rename %q to %q: %w", name, newName, ErrNameTaken)
	}

	u.log.Debug("entry edited", "name", name, "new_name", newName)
	return s.Without(name).Update(newName, store.Entry{
		Name:     newName,
		Username: username,
		Password: password,
		Notes:    notes,
	}), nil
}

// Delete removes the named entry after the user confirms with "y". Without
// confirmation the store is returned unchanged.
func (u *Entries) Delete(s *store.Store, name string, force bool) (*store.Store, error) {
	if _, err := u.lookup(s, name); err != nil {
		return s, err
	}

	if !force {
		ok, err := prompt.Confirm(u.prompt, fmt.Sprintf("Are you sure you want to delete %q? (y/n) ", name))
		if err != nil {
			return s, err
		}
		if !ok {
			fmt.Fprintf(u.out, "Keeping %q.\n", name)
			return s, nil
		}
	}

	u.log.Debug("entry deleted", "name", name)
	return s.Without(name), nil
}

// Clip copies the password of the named entry to sink and prints the
// username as a reminder. With a positive wait it then blocks until the wait
// is over or ctx is done and clears the clipboard if it still holds the
// password.
func (u *Entries) Clip(ctx context.Context, s *store.Store, name string, sink clipboard.Sink, wait time.Duration) error {
	entry, err := u.lookup(s, name)
	if err != nil {
		return err
	}

	if err := sink.WriteAll(entry.Password); err != nil {
		return fmt.Errorf("copy password: %w", err)
	}
	fmt.Fprintf(u.out, "Copied password for %q. Your username is: %s\n", name, entry.Username)

	if wait <= 0 {
		return nil
	}
	fmt.Fprintf(u.out, "The password will be deleted out of your clipboard in %s.\n", wait)

	cleared, err := clipboard.ClearAfter(ctx, sink, entry.Password, wait)
	if err != nil {
		return fmt.Errorf("clear clipboard: %w", err)
	}
	u.log.Debug("clipboard timeout elapsed", "name", name, "cleared", cleared)
	return nil
}

func (u *Entries) lookup(s *store.Store, name string) (store.Entry, error) {
	entry, ok := s.Get(name)
	if !ok {
		return store.Entry{}, &store.ResolutionError{ID: name, Kind: store.NotFoundByName}
	}
	return entry, nil
}

func (u *Entries) askDefault(question, current string) (string, error) {
	answer, err := u.prompt.ReadLine(question)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return current, nil
	}
	return answer, nil
}
