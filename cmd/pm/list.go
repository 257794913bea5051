package main

import (
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/choplin/pm/internal/config"
	"github.com/choplin/pm/internal/store"
)

func newListCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries with their positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outFormat := format
			if outFormat == "" {
				outFormat = a.cfg.ListFormat
			}
			if err := config.ValidateFormat(outFormat); err != nil {
				return err
			}

			uc := a.entries(cmd)
			s, err := uc.Open(a.file)
			if err != nil {
				return err
			}

			switch outFormat {
			case config.FormatJSON:
				return outputJSON(cmd, s)
			case config.FormatTable:
				outputTable(cmd, s)
				return nil
			default:
				return uc.List(s)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: plain, table or json (default from config, else plain)")

	return cmd
}

type listOutputEntry struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

func outputJSON(cmd *cobra.Command, s *store.Store) error {
	output := make([]listOutputEntry, 0, s.Len())

	i := 1
	for name, entry := range s.All() {
		output = append(output, listOutputEntry{
			Index:    i,
			Name:     name,
			Username: entry.Username,
		})
		i++
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func getTerminalWidth(w io.Writer) int {
	// Only a terminal has a width; anything else gets the default
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	// Default width if terminal size cannot be determined
	return 80
}

// notesWidth gives the notes column whatever the other columns leave of
// termWidth, but never less than 10 cells.
func notesWidth(termWidth int, s *store.Store) int {
	// Each column takes a left border and two padding cells, plus one
	// closing border for the row.
	const numColumns = 4
	available := termWidth - numColumns*3 - 1

	indexWidth := len(strconv.Itoa(s.Len()))
	nameWidth := runewidth.StringWidth("Name")
	userWidth := runewidth.StringWidth("Username")
	for name, entry := range s.All() {
		nameWidth = max(nameWidth, runewidth.StringWidth(name))
		userWidth = max(userWidth, runewidth.StringWidth(entry.Username))
	}

	return max(10, available-indexWidth-nameWidth-userWidth)
}

func outputTable(cmd *cobra.Command, s *store.Store) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault

	width := notesWidth(getTerminalWidth(cmd.OutOrStdout()), s)

	t.AppendHeader(table.Row{"#", "Name", "Username", "Notes"})

	i := 1
	for name, entry := range s.All() {
		// Notes may span lines; keep one row per entry.
		notes := strings.Join(strings.Fields(entry.Notes), " ")
		t.AppendRow(table.Row{
			i,
			name,
			entry.Username,
			runewidth.Truncate(notes, width, "..."),
		})
		i++
	}

	t.Render()
}

