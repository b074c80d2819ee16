package crypto_test

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyseal/internal/crypto"
)

// cheap keeps Argon2id fast in unit tests.
var cheap = crypto.KDFParams{MemoryKiB: 64, TimeCost: 1, Parallelism: 1}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{7}, crypto.SaltBytes)

	a, err := crypto.DeriveKey([]byte("test"), salt, cheap)
	require.NoError(t, err)
	b, err := crypto.DeriveKey([]byte("test"), salt, cheap)
	require.NoError(t, err)
	assert.Equal(t, *a, *b)

	c, err := crypto.DeriveKey([]byte("wrong"), salt, cheap)
	require.NoError(t, err)
	assert.NotEqual(t, *a, *c)

	otherSalt := bytes.Repeat([]byte{8}, crypto.SaltBytes)
	d, err := crypto.DeriveKey([]byte("test"), otherSalt, cheap)
	require.NoError(t, err)
	assert.NotEqual(t, *a, *d)
}

func TestDeriveKey_RejectsBadParams(t *testing.T) {
	salt := make([]byte, crypto.SaltBytes)
	cases := map[string]crypto.KDFParams{
		"zero time":        {MemoryKiB: 64, TimeCost: 0, Parallelism: 1},
		"zero parallelism": {MemoryKiB: 64, TimeCost: 1, Parallelism: 0},
		"memory too low":   {MemoryKiB: 16, TimeCost: 1, Parallelism: 4},
		"memory too high":  {MemoryKiB: math.MaxUint32, TimeCost: 1, Parallelism: 1},
		"time too high":    {MemoryKiB: 64, TimeCost: math.MaxUint32, Parallelism: 1},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := crypto.DeriveKey([]byte("pw"), salt, p)
			require.ErrorIs(t, err, crypto.ErrInvalidKDFParams)
		})
	}

	_, err := crypto.DeriveKey([]byte("pw"), salt[:15], cheap)
	require.ErrorIs(t, err, crypto.ErrInvalidSalt)
}

func TestKDFParams_Bounds(t *testing.T) {
	atMax := crypto.KDFParams{MemoryKiB: crypto.MaxMemoryKiB, TimeCost: crypto.MaxTimeCost, Parallelism: 4}
	assert.NoError(t, atMax.Validate())

	over := atMax
	over.MemoryKiB++
	assert.ErrorIs(t, over.Validate(), crypto.ErrInvalidKDFParams)

	over = atMax
	over.TimeCost++
	assert.ErrorIs(t, over.Validate(), crypto.ErrInvalidKDFParams)
}

func TestDefaultKDFParams(t *testing.T) {
	p := crypto.DefaultKDFParams()
	assert.Equal(t, uint32(65536), p.MemoryKiB)
	assert.Equal(t, uint32(3), p.TimeCost)
	assert.Equal(t, uint8(4), p.Parallelism)
	assert.NoError(t, p.Validate())
}

func TestSealOpen(t *testing.T) {
	var key [crypto.KeyBytes]byte
	_, err := rand.Read(key[:])
	require.NoError(t, err)
	nonce, err := crypto.RandomNonce(rand.Reader)
	require.NoError(t, err)

	msg := []byte("thirty-two bytes of seed please!")
	ct := crypto.Seal(&key, nonce, msg)
	require.Len(t, ct, len(msg)+crypto.Overhead)

	pt, err := crypto.Open(&key, nonce, ct)
	require.NoError(t, err)
	assert.Equal(t, msg, pt)

	for i := range ct {
		tampered := append([]byte(nil), ct...)
		tampered[i] ^= 0x01
		_, err := crypto.Open(&key, nonce, tampered)
		require.ErrorIs(t, err, crypto.ErrAuthFailed, "byte %d", i)
	}

	otherNonce := *nonce
	otherNonce[0] ^= 0xff
	_, err = crypto.Open(&key, &otherNonce, ct)
	require.ErrorIs(t, err, crypto.ErrAuthFailed)
}

func TestPublicKeyFromSeed_RFC8032(t *testing.T) {
	var seed [crypto.SeedBytes]byte
	copy(seed[:], mustHex(t, "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"))

	pub := crypto.PublicKeyFromSeed(seed)
	assert.Equal(t, "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a", hex.EncodeToString(pub[:]))

	sig := crypto.SignEd25519(seed, []byte("msg"))
	assert.True(t, crypto.VerifyEd25519(pub, []byte("msg"), sig))
	assert.False(t, crypto.VerifyEd25519(pub, []byte("other"), sig))
}

func TestEncodeCheck(t *testing.T) {
	const sk = "sk_2CuofqWZHrABCrM7GY95YSQn8PyFvKQadnvFnpwhjUnDCFAWmf"

	payload, err := crypto.DecodeCheck("sk", sk)
	require.NoError(t, err)
	assert.Equal(t, "9ebd7beda0c79af72a42ece3821a56eff16359b6df376cf049aee995565f022f", hex.EncodeToString(payload))
	assert.Equal(t, sk, crypto.EncodeCheck("sk", payload))

	_, err = crypto.DecodeCheck("ak", sk)
	require.ErrorIs(t, err, crypto.ErrBadEncoding)

	// Last character changed: checksum no longer matches.
	_, err = crypto.DecodeCheck("sk", sk[:len(sk)-1]+"g")
	require.ErrorIs(t, err, crypto.ErrBadEncoding)

	_, err = crypto.DecodeCheck("sk", "sk_0OIl")
	require.ErrorIs(t, err, crypto.ErrBadEncoding)
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	crypto.Wipe(b)
	assert.Equal(t, []byte{0, 0, 0, 0}, b)
	crypto.Wipe(nil)
}
