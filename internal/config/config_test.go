package config

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// Raw input that normalizes without any substitutions.
func validSenderArgs() RawArgs {
	return RawArgs{
		Target:   "10.10.10.10",
		Port:     5060,
		Count:    5,
		Interval: 1,
		DSCP:     "46",
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name     string
		raw      func(RawArgs) RawArgs
		want     func(RunConfig) RunConfig
		warnings []string
	}{
		{
			name: "AllValid",
			raw:  func(r RawArgs) RawArgs { return r },
			want: func(c RunConfig) RunConfig { return c },
		},
		{
			name: "MissingTarget",
			raw: func(r RawArgs) RawArgs {
				r.Target = ""
				return r
			},
			want: func(c RunConfig) RunConfig {
				c.Target = ""
				return c
			},
			warnings: []string{"No target IP address provided."},
		},
		{
			name: "InvalidTarget",
			raw: func(r RawArgs) RawArgs {
				r.Target = "999.1.1.1"
				return r
			},
			want: func(c RunConfig) RunConfig {
				c.Target = ""
				return c
			},
			warnings: []string{"Invalid target IP address provided: 999.1.1.1."},
		},
		{
			name: "ReceiverNeedsNoTarget",
			raw: func(r RawArgs) RawArgs {
				r.Receiver = true
				r.Target = ""
				return r
			},
			want: func(c RunConfig) RunConfig {
				c.IsReceiver = true
				c.Target = ""
				return c
			},
		},
		{
			name: "PrivilegedPort",
			raw: func(r RawArgs) RawArgs {
				r.Port = 80
				return r
			},
			want: func(c RunConfig) RunConfig {
				c.Port = 5060
				return c
			},
			warnings: []string{"Port specified was not a valid unprivileged port number, using 5060."},
		},
		{
			name: "NegativeCount",
			raw: func(r RawArgs) RawArgs {
				r.Count = -3
				return r
			},
			want: func(c RunConfig) RunConfig {
				c.Count = 5
				return c
			},
			warnings: []string{"Packet count was not a positive integer, using 5."},
		},
		{
			name: "ZeroIntervalAllowed",
			raw: func(r RawArgs) RawArgs {
				r.Interval = 0
				return r
			},
			want: func(c RunConfig) RunConfig {
				c.IntervalSeconds = 0
				return c
			},
		},
		{
			name: "NegativeInterval",
			raw: func(r RawArgs) RawArgs {
				r.Interval = -2
				return r
			},
			want: func(c RunConfig) RunConfig {
				c.IntervalSeconds = 1
				return c
			},
			warnings: []string{"Interval was not a non-negative integer, using 1."},
		},
		{
			name: "DSCPOutOfRange",
			raw: func(r RawArgs) RawArgs {
				r.DSCP = "70"
				return r
			},
			want: func(c RunConfig) RunConfig {
				c.DSCP = 46
				return c
			},
			warnings: []string{"Invalid DSCP value provided, using 46 (EF)."},
		},
		{
			name: "DSCPUpperBoundAccepted",
			raw: func(r RawArgs) RawArgs {
				r.DSCP = "64"
				return r
			},
			want: func(c RunConfig) RunConfig {
				c.DSCP = 64
				return c
			},
		},
		{
			name: "DSCPSymbolicName",
			raw: func(r RawArgs) RawArgs {
				r.DSCP = "af41"
				return r
			},
			want: func(c RunConfig) RunConfig {
				c.DSCP = 34
				return c
			},
		},
		{
			name: "DSCPGarbage",
			raw: func(r RawArgs) RawArgs {
				r.DSCP = "fast"
				return r
			},
			want: func(c RunConfig) RunConfig {
				c.DSCP = 46
				return c
			},
			warnings: []string{"Invalid DSCP value provided, using 46 (EF)."},
		},
		{
			name: "LoggingEnabled",
			raw: func(r RawArgs) RawArgs {
				r.Log = true
				return r
			},
			want: func(c RunConfig) RunConfig {
				c.LogEnabled = true
				return c
			},
		},
	}

	base := RunConfig{
		Target:          "10.10.10.10",
		Port:            5060,
		Count:           5,
		IntervalSeconds: 1,
		DSCP:            46,
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var warn bytes.Buffer
			got := Normalize(c.raw(validSenderArgs()), &warn)
			if diff := cmp.Diff(c.want(base), got); diff != "" {
				t.Errorf("Wrong config (-want, +got):\n%v", diff)
			}
			if len(c.warnings) == 0 {
				assert.Empty(t, warn.String())
			}
			for _, w := range c.warnings {
				assert.Contains(t, warn.String(), w)
			}
		})
	}
}
