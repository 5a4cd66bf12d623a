package config

import (
	"flag"
	"os"
	"time"

	"github.com/siddharthpandey07/UserManage/internal/flagx"
)

// parseFlags overlays Config with values from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the record service
//	-n int      notification visibility in seconds
//
// os.Args is filtered down to the flags owned here (flagx.FilterArgs) so this
// parse does not interfere with flags handled elsewhere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the record service")
	notificationTTL := fs.Int("n", int(cfg.NotificationTTL.Seconds()), "notification visibility (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.NotificationTTL = time.Duration(*notificationTTL) * time.Second
}
