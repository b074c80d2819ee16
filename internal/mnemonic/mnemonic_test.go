package mnemonic_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyseal/internal/domain/types"
	"keyseal/internal/mnemonic"
)

const scenarioKey = "sk_2CuofqWZHrABCrM7GY95YSQn8PyFvKQadnvFnpwhjUnDCFAWmf"

func TestRoundTrip(t *testing.T) {
	words, err := mnemonic.FromSecretKey(scenarioKey)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(words), 24)

	sk, err := mnemonic.ToSecretKey("  " + strings.ToUpper(words) + "\n")
	require.NoError(t, err)
	assert.Equal(t, scenarioKey, sk)
}

func TestZeroSeedVector(t *testing.T) {
	words, err := mnemonic.FromSecretKey(types.SecretKey{}.Encode())
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("abandon ", 23)+"art", words)
}

func TestToSecretKey_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown word": strings.Repeat("abandon ", 23) + "zzz",
		"bad checksum": strings.Repeat("abandon ", 24),
		"12 words":     strings.Repeat("abandon ", 11) + "about",
		"empty":        "",
	}
	for name, words := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := mnemonic.ToSecretKey(words)
			require.ErrorIs(t, err, mnemonic.ErrInvalidMnemonic)
		})
	}
}

func TestFromSecretKey_BadKey(t *testing.T) {
	_, err := mnemonic.FromSecretKey("sk_nope")
	require.ErrorIs(t, err, types.ErrInvalidKeyEncoding)
}
