// Package dscp defines the standard Differentiated Services Code Points.
//
// See RFC 2474 (class selectors), RFC 2597 (assured forwarding), RFC 3246
// (expedited forwarding), RFC 3662 (lower effort) and RFC 5865 (voice
// admit) for the definitions.
package dscp

import (
	"strconv"
	"strings"
)

// DSCP is a Differentiated Services Code Point: the upper six bits of the
// legacy IP TOS byte.
type DSCP uint8

// Standard per-hop behaviors.
const (
	DF         DSCP = 0
	LE         DSCP = 0b000001
	CS1        DSCP = 0b001000
	AF11       DSCP = 0b001010
	AF12       DSCP = 0b001100
	AF13       DSCP = 0b001110
	CS2        DSCP = 0b010000
	AF21       DSCP = 0b010010
	AF22       DSCP = 0b010100
	AF23       DSCP = 0b010110
	CS3        DSCP = 0b011000
	AF31       DSCP = 0b011010
	AF32       DSCP = 0b011100
	AF33       DSCP = 0b011110
	CS4        DSCP = 0b100000
	AF41       DSCP = 0b100010
	AF42       DSCP = 0b100100
	AF43       DSCP = 0b100110
	CS5        DSCP = 0b101000
	VoiceAdmit DSCP = 0b101100
	EF         DSCP = 0b101110
	CS6        DSCP = 0b110000
	CS7        DSCP = 0b111000
)

// Ordered so the first name for a value wins in the reverse lookup.
var codePoints = []struct {
	name string
	val  DSCP
}{
	{"DF", DF},
	{"CS0", DF},
	{"LE", LE},
	{"CS1", CS1},
	{"AF11", AF11},
	{"AF12", AF12},
	{"AF13", AF13},
	{"CS2", CS2},
	{"AF21", AF21},
	{"AF22", AF22},
	{"AF23", AF23},
	{"CS3", CS3},
	{"AF31", AF31},
	{"AF32", AF32},
	{"AF33", AF33},
	{"CS4", CS4},
	{"AF41", AF41},
	{"AF42", AF42},
	{"AF43", AF43},
	{"CS5", CS5},
	{"VOICE-ADMIT", VoiceAdmit},
	{"EF", EF},
	{"CS6", CS6},
	{"CS7", CS7},
}

var (
	byName = make(map[string]DSCP)
	byVal  = make(map[DSCP]string)
)

func init() {
	for _, cp := range codePoints {
		byName[cp.name] = cp.val
		if _, ok := byVal[cp.val]; !ok {
			byVal[cp.val] = cp.name
		}
	}
}

// Parse looks up a symbolic code point name such as "EF" or "AF41".
// Matching is case-insensitive.
func Parse(s string) (DSCP, bool) {
	d, ok := byName[strings.ToUpper(s)]
	return d, ok
}

// String returns the symbolic name for d when one exists, or its decimal
// value otherwise.
func (d DSCP) String() string {
	if name, ok := byVal[d]; ok {
		return name
	}
	return strconv.Itoa(int(d))
}
