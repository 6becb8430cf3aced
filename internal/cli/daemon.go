package cli

import (
	"fmt"
	"os"

	"github.com/sevlyar/go-daemon"
)

// daemonEnvVar marks the detached child process.
const daemonEnvVar = "MUDRA_DAEMON_CHILD"

// daemonize detaches the process and returns the child process handle.
// If the returned process is nil, this is the child process; if it is
// non-nil, this is the parent.
func daemonize() (*os.Process, error) {
	ctx := &daemon.Context{
		WorkDir: "/",
		Umask:   027,
		Args:    os.Args,
		Env:     append(os.Environ(), fmt.Sprintf("%s=1", daemonEnvVar)),
	}

	child, err := ctx.Reborn()
	if err != nil {
		return nil, fmt.Errorf("failed to daemonize: %w", err)
	}

	return child, nil
}

// isDaemonChild returns true if this is the detached child process.
func isDaemonChild() bool {
	return os.Getenv(daemonEnvVar) == "1"
}
