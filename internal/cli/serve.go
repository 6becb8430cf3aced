package cli

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

var (
	serveAddr    string
	serveDB      string
	serveActions string
	serveStatic  string
	servePreset  string
	serveTray    bool
	serveDetach  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the gesture recognition daemon",
	Long: `Starts the mudra daemon: the recognizer set, the SQLite store, the
action dispatcher and the HTTP/WebSocket server. Touch sources connect
to ws://<addr>/api/touches and consumers subscribe to /api/stream.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveDetach && !isDaemonChild() {
			child, err := daemonize()
			if err != nil {
				return err
			}
			if child != nil {
				fmt.Printf("Daemon spawned (pid %d), listening on %s\n", child.Pid, serveAddr)
				return nil
			}
		}

		return runServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "HTTP listen address")
	serveCmd.Flags().StringVar(&serveDB, "db", "", "database path (default ~/.mudra/mudra.db)")
	serveCmd.Flags().StringVar(&serveActions, "actions", "", "actions directory (default ~/.mudra/actions)")
	serveCmd.Flags().StringVar(&serveStatic, "static", "", "static files directory to serve at /")
	serveCmd.Flags().StringVar(&servePreset, "preset", "", "initial gesture config preset for a fresh database")
	serveCmd.Flags().BoolVar(&serveTray, "tray", false, "show the system tray menu")
	serveCmd.Flags().BoolVar(&serveDetach, "detach", false, "run in the background")
	rootCmd.AddCommand(serveCmd)
}

// dataDir resolves ~/.mudra, creating it if needed.
func dataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(homeDir, ".mudra")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dir, nil
}

func runServe() error {
	dir, err := dataDir()
	if err != nil {
		return err
	}

	dbPath := serveDB
	if dbPath == "" {
		dbPath = filepath.Join(dir, "mudra.db")
	}
	actionsDir := serveActions
	if actionsDir == "" {
		actionsDir = filepath.Join(dir, "actions")
	}

	st, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer st.Close()

	a, err := app.New(app.Config{
		Store:      st,
		ActionsDir: actionsDir,
		Preset:     servePreset,
	})
	if err != nil {
		return err
	}

	if err := a.DiscoverActions(); err != nil {
		log.Printf("Action discovery failed: %v", err)
	} else {
		log.Printf("Discovered %d actions in %s", len(a.Registry().List()), actionsDir)
	}

	a.Start()
	defer a.Stop()

	srv := server.New(server.Config{
		StaticDir: serveStatic,
		App:       a,
	})

	log.Printf("Gesture preset: %s, recognition enabled: %v", a.Preset(), a.IsEnabled())
	log.Printf("Starting server on %s", serveAddr)

	if !serveTray {
		return srv.ListenAndServe(serveAddr)
	}

	// With the tray, the server moves to a goroutine; systray needs the
	// main one.
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(serveAddr)
	}()

	tr := tray.New()
	tr.SetEnabled(a.IsEnabled())
	tr.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
	})
	tr.OnSettings(func() {
		log.Printf("Settings: http://localhost%s/", serveAddr)
	})
	tr.OnQuit(func() {
		log.Println("Quit requested from tray")
	})

	// Surface recognized gestures in the tray menu
	prev := a.OnEvent
	a.OnEvent = func(ev gesture.Event) {
		if prev != nil {
			prev(ev)
		}
		if ev.State == gesture.StateEnded {
			tr.SetLastGesture(string(ev.Type))
		}
	}

	tr.Run()

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}
