// Package netcheck contains pure validation helpers for the addresses and
// ports the tool is willing to use. All functions are total: malformed
// input yields false, never an error.
package netcheck

import (
	"strconv"
	"strings"
)

// IsIPv4Format reports whether s is a dotted-quad IPv4 address: exactly
// four dot-separated components, each an integer in [0,255].
func IsIPv4Format(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}

// IsUnicastIPv4 reports whether s is an IPv4 address usable as a unicast
// destination. Beyond IsIPv4Format this rejects multicast, experimental
// and broadcast space along with a handful of special-use ranges. These
// are deliberate exact-octet comparisons, not general CIDR matching.
// Loopback is allowed; it's useful for testing.
func IsUnicastIPv4(s string) bool {
	if !IsIPv4Format(s) {
		return false
	}
	var o [4]int
	for i, p := range strings.Split(s, ".") {
		o[i], _ = strconv.Atoi(p)
	}
	switch {
	case o[0] > 223: // multicast, experimental, broadcast
		return false
	case o[0] == 0: // "this network", valid only as a source (RFC 1122)
		return false
	case o[0] == 169 && o[1] == 254: // link-local self-assignment (RFC 3927)
		return false
	case o[0] == 192 && o[1] == 0 && o[2] == 0: // IETF protocol assignments (RFC 6890)
		return false
	case o[0] == 192 && o[1] == 52 && o[2] == 193: // automatic multicast tunneling (RFC 7450)
		return false
	case o[0] == 192 && o[1] == 31 && o[2] == 196: // AS112 DNS redirection (RFC 7535)
		return false
	case o[0] == 192 && o[1] == 175 && o[2] == 48: // AS112 DNS service (RFC 7534)
		return false
	case o[0] == 192 && o[1] == 88 && o[2] == 99: // 6to4 relay anycast (RFC 3068)
		return false
	}
	return true
}

// IsUnprivilegedPort reports whether p is a TCP/UDP port that can be used
// without elevated privileges.
func IsUnprivilegedPort(p int) bool {
	return p >= 1024 && p <= 65535
}
