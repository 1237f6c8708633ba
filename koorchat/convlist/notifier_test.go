package convlist

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBellNotifierRingsBell(t *testing.T) {
	var buf bytes.Buffer
	n := BellNotifier{W: &buf}

	require.NoError(t, n.Received())
	require.Equal(t, "\a", buf.String())
}

func TestBellNotifierNilWriter(t *testing.T) {
	require.NoError(t, BellNotifier{}.Received())
}

func TestNotifierFunc(t *testing.T) {
	calls := 0
	n := NotifierFunc(func() error { calls++; return nil })
	require.NoError(t, n.Received())
	require.Equal(t, 1, calls)
}
