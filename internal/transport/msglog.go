package transport

import (
	"fmt"
	"os"
)

// Message log file names, created relative to the working directory.
// Never rotated or truncated.
const (
	SentLogName = "dscp_sent_messages.txt"
	RecvLogName = "udp_rcv_message.txt"
)

// msgLog is an append-only line log. A nil *msgLog is a disabled log
// whose methods do nothing, so callers don't have to branch on whether
// logging is on.
type msgLog struct {
	f *os.File
}

func openLog(path string) (*msgLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &msgLog{f: f}, nil
}

// Append writes one line to the log.
func (l *msgLog) Append(line string) error {
	if l == nil {
		return nil
	}
	_, err := fmt.Fprintln(l.f, line)
	return err
}

func (l *msgLog) Close() error {
	if l == nil {
		return nil
	}
	return l.f.Close()
}
