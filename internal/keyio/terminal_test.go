package keyio

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/URDev4ever/lockstr/internal/crypt"
)

// stubPasswords replaces the terminal read with a scripted sequence and
// returns a pointer to the call counter.
func stubPasswords(t *testing.T, inputs ...string) *int {
	t.Helper()

	old := readPassword
	t.Cleanup(func() { readPassword = old })

	calls := new(int)

	readPassword = func(int) ([]byte, error) {
		if *calls >= len(inputs) {
			t.Fatal("ran out of scripted inputs")
		}

		in := inputs[*calls]
		*calls++

		return []byte(in), nil
	}

	return calls
}

func TestTerminalSourceAcceptsValidKey(t *testing.T) {
	key, err := crypt.GenerateKey()
	require.NoError(t, err)

	calls := stubPasswords(t, key.Encode())

	var out bytes.Buffer
	src := &TerminalSource{Out: &out}

	got, err := src.Key(context.Background())
	require.NoError(t, err)
	require.Equal(t, key, got)
	require.Equal(t, 1, *calls)

	require.Contains(t, out.String(), "Enter key: ")
	require.NotContains(t, out.String(), key.Encode(), "the key must never be echoed")
}

func TestTerminalSourceRetriesUntilValid(t *testing.T) {
	key, err := crypt.GenerateKey()
	require.NoError(t, err)

	calls := stubPasswords(t, "", "not-a-key", key.Encode())

	var out bytes.Buffer
	src := &TerminalSource{Out: &out}

	got, err := src.Key(context.Background())
	require.NoError(t, err)
	require.Equal(t, key, got)
	require.Equal(t, 3, *calls)

	require.Contains(t, out.String(), "Key cannot be empty")
	require.Contains(t, out.String(), "Invalid key")
	require.Contains(t, out.String(), "Try again")
}

func TestTerminalSourceTrimsWhitespace(t *testing.T) {
	key, err := crypt.GenerateKey()
	require.NoError(t, err)

	stubPasswords(t, "  "+key.Encode()+"\t")

	var out bytes.Buffer

	got, err := (&TerminalSource{Out: &out}).Key(context.Background())
	require.NoError(t, err)
	require.Equal(t, key, got)
}

func TestTerminalSourceReadError(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("no tty")
	}

	var out bytes.Buffer

	_, err := (&TerminalSource{Out: &out}).Key(context.Background())
	require.Error(t, err)
}

func TestTerminalSourceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stubPasswords(t)

	var out bytes.Buffer

	_, err := (&TerminalSource{Out: &out}).Key(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
