package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/replay"
	"github.com/ayusman/mudra/internal/store"
)

var (
	replayDB     string
	replayPreset string
)

var replayCmd = &cobra.Command{
	Use:   "replay <session-id|file.json>",
	Short: "Replay a recorded touch session",
	Long: `Plays a recorded session through a fresh recognizer set and prints
every recognized gesture event as a JSON line. The argument is either a
session ID in the database or a path to a session JSON file. Replaying
the same session always prints the same events.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession(args[0])
		if err != nil {
			return err
		}

		cfg, ok := gesture.ConfigForPreset(replayPreset)
		if replayPreset != "" && !ok {
			return fmt.Errorf("unknown preset %q", replayPreset)
		}

		player := replay.NewPlayer(cfg)
		events, err := player.Play(sess)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		for _, ev := range events {
			if err := enc.Encode(ev); err != nil {
				return err
			}
		}

		fmt.Fprintf(os.Stderr, "%d touch events in, %d gesture events out\n", len(sess.Events), len(events))
		return nil
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayDB, "db", "", "database path (default ~/.mudra/mudra.db)")
	replayCmd.Flags().StringVar(&replayPreset, "preset", "", "gesture config preset (default \"default\")")
	rootCmd.AddCommand(replayCmd)
}

// loadSession resolves the argument as a JSON file first, then as a
// session ID in the database.
func loadSession(arg string) (*replay.Session, error) {
	if _, err := os.Stat(arg); err == nil {
		return replay.LoadSessionFile(arg)
	}

	dbPath := replayDB
	if dbPath == "" {
		dir, err := dataDir()
		if err != nil {
			return nil, err
		}
		dbPath = filepath.Join(dir, "mudra.db")
	}

	st, err := store.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	meta, err := st.Sessions().GetByID(arg)
	if err != nil {
		return nil, fmt.Errorf("session %q: %w", arg, err)
	}
	events, err := st.Sessions().Events(arg)
	if err != nil {
		return nil, err
	}

	return &replay.Session{ID: meta.ID, Name: meta.Name, Events: events, CreatedAt: meta.CreatedAt}, nil
}
