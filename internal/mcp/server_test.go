package mcp

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/choplin/pm/internal/store"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entries.json")
	s := store.New().
		Update("First", store.Entry{Name: "First", Username: "First Username", Password: "First Password", Notes: "First Notes"}).
		Update("2nd", store.Entry{Name: "2nd", Username: "2nd Username", Password: "2nd Password", Notes: "2nd Notes"})
	require.NoError(t, s.Save(path))
	return NewServer(path, "test", nil), path
}

func TestHandleList(t *testing.T) {
	srv, _ := newTestServer(t)

	_, out, err := srv.handleList(context.Background(), nil, ListInput{})
	require.NoError(t, err)
	assert.Equal(t, []ListEntry{
		{Index: 1, Name: "2nd", Username: "2nd Username"},
		{Index: 2, Name: "First", Username: "First Username"},
	}, out.Entries)
}

func TestHandleShow(t *testing.T) {
	srv, _ := newTestServer(t)
	ctx := context.Background()

	_, out, err := srv.handleShow(ctx, nil, ShowInput{Entry: "1"})
	require.NoError(t, err)
	assert.Equal(t, "2nd", out.Name)
	assert.Empty(t, out.Password)

	_, out, err = srv.handleShow(ctx, nil, ShowInput{Entry: "First", WithPassword: true})
	require.NoError(t, err)
	assert.Equal(t, "First Password", out.Password)

	_, _, err = srv.handleShow(ctx, nil, ShowInput{Entry: "3"})
	var rerr *store.ResolutionError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, store.NotFoundByIndex, rerr.Kind)
}

func TestHandlersSeeFileChanges(t *testing.T) {
	srv, path := newTestServer(t)
	require.NoError(t, store.New().Save(path))

	_, out, err := srv.handleList(context.Background(), nil, ListInput{})
	require.NoError(t, err)
	assert.Empty(t, out.Entries)
}

func TestHandleListMissingFile(t *testing.T) {
	srv := NewServer(filepath.Join(t.TempDir(), "missing.json"), "test", nil)

	_, _, err := srv.handleList(context.Background(), nil, ListInput{})
	var ioErr *store.IOError
	require.ErrorAs(t, err, &ioErr)
}
