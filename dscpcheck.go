// Command dscpcheck verifies that network equipment honors IP-layer DSCP
// markings. In sender mode it emits a bounded sequence of UDP datagrams
// carrying a configured DSCP value; in receiver mode it binds a UDP port
// and logs whatever arrives.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/qoslab/dscpcheck/internal/config"
	"github.com/qoslab/dscpcheck/internal/transport"
)

const version = "1.0.0"

// Flags.
var (
	target      = pflag.StringP("target", "t", "", "Target/destination IP host.")
	port        = pflag.IntP("port", "p", config.DefaultPort, "UDP unprivileged port.")
	count       = pflag.IntP("count", "c", config.DefaultCount, "Number of packets to send to the destination.")
	dscpValue   = pflag.StringP("dscp", "d", "46", "DSCP priority value: 0-63 or a class name such as EF or AF41.")
	interval    = pflag.IntP("interval", "i", config.DefaultInterval, "Delay between messages in seconds (0 = no delay).")
	recvMode    = pflag.BoolP("receive", "r", false, "Receive data instead of sending.")
	logEnabled  = pflag.BoolP("log", "l", false, "Log sent or received messages for troubleshooting.")
	showVersion = pflag.BoolP("version", "v", false, "Print the version and exit.")
)

func main() {
	pflag.Parse()

	if *showVersion {
		fmt.Println("dscpcheck " + version)
		return
	}

	cfg := config.Normalize(config.RawArgs{
		Receiver: *recvMode,
		Target:   *target,
		Port:     *port,
		Count:    *count,
		Interval: *interval,
		DSCP:     *dscpValue,
		Log:      *logEnabled,
	}, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.IsReceiver {
		recv, err := transport.NewReceiver(cfg)
		if err != nil {
			fmt.Println("Could not create listener socket.")
			os.Exit(1)
		}
		if err := recv.Run(ctx); err != nil {
			fmt.Println("Exited due to an unexpected error.")
			os.Exit(1)
		}
		return
	}

	sender := transport.NewSender(cfg)
	if err := sender.Run(ctx); err != nil {
		fmt.Println("Failed to send message.")
		os.Exit(1)
	}
}
