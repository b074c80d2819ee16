package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyseal/internal/logging"
)

func TestRedact_HidesSensitiveAttrs(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Level: "debug", Format: "json", Writer: &buf})
	require.NoError(t, err)

	log.With("password", "hunter2").Info("unlock",
		"name", "alice",
		"secret_key", "sk_abc",
		slog.Group("kdf", "memlimit_kib", 64, "seed", "00ff"),
	)

	out := buf.String()
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "sk_abc")
	assert.NotContains(t, out, "00ff")
	assert.Contains(t, out, `"name":"alice"`)
	assert.Contains(t, out, `"memlimit_kib":64`)
	assert.Contains(t, out, "[REDACTED]")
}

func TestRedact_KeyMaterialNames(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Level: "debug", Format: "json", Writer: &buf})
	require.NoError(t, err)

	log.Debug("derive",
		"sk", "sk_2Cuof",
		"key", "a1b2c3",
		"derived_key", "d4e5f6",
		"signing_key", "0a0b0c",
		"public_key", "ak_21A27",
	)

	out := buf.String()
	for _, leaked := range []string{"sk_2Cuof", "a1b2c3", "d4e5f6", "0a0b0c"} {
		assert.NotContains(t, out, leaked)
	}
	assert.Contains(t, out, `"public_key":"ak_21A27"`)
}

func TestNew_RejectsUnknownSettings(t *testing.T) {
	_, err := logging.New(logging.Options{Level: "loud"})
	assert.Error(t, err)
	_, err = logging.New(logging.Options{Format: "xml"})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	lvl, err := logging.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)

	lvl, err = logging.ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}
