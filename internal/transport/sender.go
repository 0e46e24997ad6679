// Package transport owns the UDP socket used for a single run: the DSCP
// marked send loop in sender mode and the passive listen loop in receiver
// mode. The two modes are never active in the same run.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"golang.org/x/net/ipv4"

	"github.com/qoslab/dscpcheck/internal/config"
)

const (
	// timeFormat is the timestamp layout used in payloads, console lines
	// and log records.
	timeFormat = "2006-01-02 15:04:05.000000"

	// fallbackHostname is substituted in payloads when the local hostname
	// can't be determined.
	fallbackHostname = "hostname_undefined"
)

// Sender emits a bounded sequence of UDP datagrams carrying the
// configured DSCP marking.
type Sender struct {
	cfg config.RunConfig

	// Out receives the per-datagram confirmation lines. Defaults to
	// os.Stdout.
	Out io.Writer

	// LogPath is where sent payloads are appended when logging is
	// enabled. Defaults to SentLogName in the working directory.
	LogPath string
}

// NewSender creates a sender for cfg. No socket is opened until Run.
func NewSender(cfg config.RunConfig) *Sender {
	return &Sender{cfg: cfg, Out: os.Stdout, LogPath: SentLogName}
}

// Run opens the socket, applies the DSCP marking and sends exactly
// cfg.Count datagrams. When cfg.IntervalSeconds is nonzero the loop
// pauses that long after every send, the last one included. Cancelling
// ctx during a pause ends the run early without error.
func (s *Sender) Run(ctx context.Context) error {
	if s.cfg.Target == "" {
		return errors.New("no valid target address")
	}
	ip := net.ParseIP(s.cfg.Target)
	if ip == nil {
		return fmt.Errorf("unusable target address %q", s.cfg.Target)
	}
	dest := &net.UDPAddr{IP: ip, Port: int(s.cfg.Port)}

	conn, err := net.ListenUDP("udp4", nil)
	if err != nil {
		return fmt.Errorf("opening socket: %w", err)
	}
	defer conn.Close()

	if err := applyTOS(conn, s.cfg.DSCP); err != nil {
		return fmt.Errorf("setting IP TOS: %w", err)
	}

	var mlog *msgLog
	if s.cfg.LogEnabled {
		mlog, err = openLog(s.LogPath)
		if err != nil {
			return fmt.Errorf("opening message log: %w", err)
		}
		defer mlog.Close()
	}

	host := hostname()
	for i := uint32(0); i < s.cfg.Count; i++ {
		msg := fmt.Sprintf("%s; %s; DSCP: %d", time.Now().Format(timeFormat), host, s.cfg.DSCP)
		if _, err := conn.WriteToUDP([]byte(msg), dest); err != nil {
			return fmt.Errorf("sending to %v: %w", dest, err)
		}
		fmt.Fprintf(s.Out, "Sent message to %s:%d: \"%s.\"\n", s.cfg.Target, s.cfg.Port, msg)
		if err := mlog.Append(msg); err != nil {
			return fmt.Errorf("writing message log: %w", err)
		}
		if s.cfg.IntervalSeconds > 0 {
			if !pause(ctx, time.Duration(s.cfg.IntervalSeconds)*time.Second) {
				return nil
			}
		}
	}
	return nil
}

// applyTOS writes the DSCP value into the upper six bits of the IP TOS
// byte. The two ECN bits stay zero. The uint8 shift drops anything above
// the 6-bit field.
func applyTOS(conn *net.UDPConn, d uint8) error {
	return ipv4.NewPacketConn(conn).SetTOS(int(d << 2))
}

// pause blocks for d or until ctx is cancelled, and reports whether the
// full duration elapsed.
func pause(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return fallbackHostname
	}
	return h
}
