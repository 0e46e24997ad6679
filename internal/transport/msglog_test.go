package transport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMsgLogAppendsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.txt")

	l, err := openLog(path)
	require.NoError(t, err)
	require.NoError(t, l.Append("first"))
	require.NoError(t, l.Close())

	// A second run must append, never truncate.
	l, err = openLog(path)
	require.NoError(t, err)
	require.NoError(t, l.Append("second"))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "first\nsecond\n", string(data))
}

func TestMsgLogNilIsDisabled(t *testing.T) {
	var l *msgLog
	require.NoError(t, l.Append("dropped"))
	require.NoError(t, l.Close())
}
