package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/qoslab/dscpcheck/internal/config"
)

// maxDatagram is the largest datagram the receiver will read.
const maxDatagram = 1024

// Receiver binds a UDP port and prints every datagram that arrives. It
// exists to verify end-to-end delivery and to keep the sender's target
// from answering with ICMP port unreachable.
type Receiver struct {
	cfg  config.RunConfig
	conn *net.UDPConn

	// Out receives the banner and per-datagram lines. Defaults to
	// os.Stdout.
	Out io.Writer

	// LogPath is where received messages are appended when logging is
	// enabled. Defaults to RecvLogName in the working directory.
	LogPath string
}

// NewReceiver binds the wildcard address on cfg.Port. A bind failure is
// fatal for the run; there is no retry.
func NewReceiver(cfg config.RunConfig) (*Receiver, error) {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{Port: int(cfg.Port)})
	if err != nil {
		return nil, err
	}
	return &Receiver{cfg: cfg, conn: conn, Out: os.Stdout, LogPath: RecvLogName}, nil
}

// LocalAddr returns the bound address.
func (r *Receiver) LocalAddr() net.Addr {
	return r.conn.LocalAddr()
}

// Run listens until ctx is cancelled. There is no other normal exit:
// cancellation closes the socket to unblock the pending read and returns
// nil, since an interrupt is the expected way to stop a receiver. Any
// other read failure is returned as an error. The message log, when
// enabled, is closed on every exit path.
func (r *Receiver) Run(ctx context.Context) error {
	defer r.conn.Close()

	fmt.Fprintf(r.Out, "UDP listener for DSCP test invoked at %s.\n", time.Now().Format(timeFormat))
	fmt.Fprintf(r.Out, "Listening for traffic on UDP port %d.\n\n", r.cfg.Port)

	var mlog *msgLog
	if r.cfg.LogEnabled {
		var err error
		mlog, err = openLog(r.LogPath)
		if err != nil {
			return fmt.Errorf("opening message log: %w", err)
		}
		defer mlog.Close()
		fmt.Fprintf(r.Out, "UDP messages written to file: %s.\n\n", r.LogPath)
	}

	stop := context.AfterFunc(ctx, func() { r.conn.Close() })
	defer stop()

	buf := make([]byte, maxDatagram)
	for {
		n, _, err := r.conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("receiving: %w", err)
		}
		now := time.Now().Format(timeFormat)
		text := string(buf[:n])
		fmt.Fprintf(r.Out, "%s, received UDP message: %q\n", now, text)
		if err := mlog.Append(fmt.Sprintf("%s: %s", now, text)); err != nil {
			return fmt.Errorf("writing message log: %w", err)
		}
	}
}
