package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"btcforge/jsonx"
)

func TestErrorMarshalsAsJSON(t *testing.T) {
	err := NewError(ErrCodeInvalidAddress, "bad address")

	var decoded WalletError
	require.NoError(t, jsonx.Unmarshal([]byte(err.Error()), &decoded))
	require.Equal(t, ErrCodeInvalidAddress, decoded.Code)
	require.Equal(t, "bad address", decoded.Message)
}

func TestNewErrorf(t *testing.T) {
	err := NewErrorf(ErrCodeInvalidTxid, "txid %q has %d chars", "ab", 2)
	require.Equal(t, `txid "ab" has 2 chars`, err.(*WalletError).Message)
}

func TestCodeOf(t *testing.T) {
	require.Equal(t, ErrCodeEmptyInputs, CodeOf(NewError(ErrCodeEmptyInputs, "x")))
	require.Equal(t, ErrCodeInternal, CodeOf(fmt.Errorf("plain error")))
}

func TestIsCode(t *testing.T) {
	err := NewError(ErrCodeNetworkMismatch, "x")
	require.True(t, IsCode(err, ErrCodeNetworkMismatch))
	require.False(t, IsCode(err, ErrCodeInvalidAddress))
	require.False(t, IsCode(fmt.Errorf("plain"), ErrCodeNetworkMismatch))
	require.False(t, IsCode(nil, ErrCodeNetworkMismatch))
}
