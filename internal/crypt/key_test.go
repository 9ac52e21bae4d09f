package crypt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateKey(t *testing.T) {
	k1, err := GenerateKey()
	require.NoError(t, err)
	require.Len(t, []byte(k1), KeySize)

	k2, err := GenerateKey()
	require.NoError(t, err)
	require.NotEqual(t, k1, k2, "two generated keys must differ")
}

func TestKeyEncodeParseRoundTrip(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	encoded := key.Encode()
	require.Len(t, encoded, EncodedKeySize)

	parsed, err := ParseKey(encoded)
	require.NoError(t, err)
	require.Equal(t, key, parsed)
}

func TestParseKeyRejectsBadInput(t *testing.T) {
	valid, err := GenerateKey()
	require.NoError(t, err)

	encoded := valid.Encode()

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", encoded[:EncodedKeySize-1]},
		{"too long", encoded + "A"},
		{"not base64", strings.Repeat("!", EncodedKeySize)},
		{"standard alphabet", strings.Repeat("+", EncodedKeySize)},
		{"whitespace wrapped", " " + encoded[:EncodedKeySize-2] + " "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseKey(tc.input)
			require.ErrorIs(t, err, ErrKeyFormat)
		})
	}
}

func TestKeyZero(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	key.Zero()

	for i, b := range key {
		if b != 0 {
			t.Fatalf("byte %d not wiped", i)
		}
	}
}
