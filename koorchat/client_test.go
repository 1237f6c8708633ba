package koorchat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientConnectEmptyURL(t *testing.T) {
	c := NewClient(DefaultConfig())
	err := c.Connect(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, NewError(ErrorInvalidConfig, ""))
	require.Equal(t, StateError, c.State())
}

func TestClientInitialState(t *testing.T) {
	c := NewClient(DefaultConfig())
	require.Equal(t, StateDisconnected, c.State())
}

func TestClientCloseWithoutConnect(t *testing.T) {
	c := NewClient(DefaultConfig())
	require.NoError(t, c.Close())
	require.Equal(t, StateClosed, c.State())
}

func TestConnectionStateStrings(t *testing.T) {
	require.Equal(t, "disconnected", StateDisconnected.String())
	require.Equal(t, "connected", StateConnected.String())
	require.Equal(t, "closed", StateClosed.String())
}

func TestChatErrorWrapping(t *testing.T) {
	inner := NewError(ErrorConnection, "dial failed")
	outer := WrapError(ErrorDisconnected, "push channel lost", inner)

	require.ErrorIs(t, outer, NewError(ErrorDisconnected, ""))
	require.True(t, IsConnectionError(outer))
	require.Contains(t, outer.Error(), "push channel lost")
}
