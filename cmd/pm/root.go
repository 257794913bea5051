package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/choplin/pm/internal/config"
	"github.com/choplin/pm/internal/logging"
	"github.com/choplin/pm/internal/prompt"
	"github.com/choplin/pm/internal/store"
	"github.com/choplin/pm/internal/usecase"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	file    string
	verbose bool
	cfg     config.Config
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "pm",
		Short: "A password manager",
		Long: `pm keeps named credentials (username, password, notes) in a single JSON file.

Entries are addressed by name or by the position shown by "pm list".
Positions change when entries are added or removed, so list again before
using a number after a change.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.file, "file", "f", "", "Path to the entries file (required)")
	cmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Log debug details to stderr")
	_ = cmd.MarkPersistentFlagRequired("file")

	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newAddCmd(a))
	cmd.AddCommand(newShowCmd(a))
	cmd.AddCommand(newEditCmd(a))
	cmd.AddCommand(newDeleteCmd(a))
	cmd.AddCommand(newClipCmd(a))
	cmd.AddCommand(newMCPCmd(a))

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(config.GetConfigPath())
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = logging.New(cmd.ErrOrStderr(), level).With("file", a.file)
	return nil
}

// entries returns the flows for this command. Prompts go to stderr so that
// stdout only carries results.
func (a *app) entries(cmd *cobra.Command) *usecase.Entries {
	p := prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr())
	return usecase.NewEntries(p, cmd.OutOrStdout(), a.log)
}

// openEntry loads the store and resolves id to an entry name.
func (a *app) openEntry(uc *usecase.Entries, id string) (*store.Store, string, error) {
	s, err := uc.Open(a.file)
	if err != nil {
		return nil, "", err
	}
	name, err := s.Resolve(id)
	if err != nil {
		a.log.Debug("identifier did not resolve", "id", id, "error", err)
		return nil, "", err
	}
	return s, name, nil
}

func (a *app) save(s *store.Store) error {
	if err := s.Save(a.file); err != nil {
		return err
	}
	a.log.Debug("store saved", "entries", s.Len())
	return nil
}
