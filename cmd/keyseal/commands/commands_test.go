package commands

import (
	"bytes"
	"context"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyseal/internal/crypto"
	"keyseal/internal/domain/types"
	"keyseal/internal/keystore"
	"keyseal/internal/store"
)

const (
	scenarioKey     = "sk_2CuofqWZHrABCrM7GY95YSQn8PyFvKQadnvFnpwhjUnDCFAWmf"
	scenarioAddress = "ak_21A27UVVt3hDkBE5J7rhhqnH5YNb4Y1dqo4PnSybrH85pnWo7E"
)

type cli struct {
	t    *testing.T
	home string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	home := t.TempDir()
	cfg := "kdf:\n  memlimit_kib: 64\n  opslimit: 1\n  parallelism: 1\nprompt:\n  attempts: 1\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(cfg), 0o600))
	t.Setenv("KS_PW", "test")
	t.Setenv("KS_BAD", "wrong")
	t.Setenv("KS_NEW", "fresh")
	return &cli{t: t, home: home}
}

func (c *cli) run(stdin string, args ...string) (string, error) {
	c.t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--home", c.home}, args...))
	err := root.ExecuteContext(context.Background())
	return strings.TrimSpace(out.String()), err
}

func (c *cli) mustRun(stdin string, args ...string) string {
	c.t.Helper()
	out, err := c.run(stdin, args...)
	require.NoError(c.t, err, "keyseal %s", strings.Join(args, " "))
	return out
}

func TestCreateAddressExport(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("", "create", "alice", "--secret-key", scenarioKey, "--password-env", "KS_PW")
	assert.Contains(t, out, scenarioAddress)

	assert.Equal(t, scenarioAddress, c.mustRun("", "address", "alice"))
	assert.Equal(t, scenarioKey, c.mustRun("", "export", "alice", "--password-env", "KS_PW"))

	_, err := c.run("", "export", "alice", "--password-env", "KS_BAD")
	require.ErrorIs(t, err, keystore.ErrInvalidPassword)

	_, err = c.run("", "create", "alice", "--password-env", "KS_PW")
	require.ErrorIs(t, err, store.ErrExists)
}

func TestCreate_SecretKeyFromStdin(t *testing.T) {
	c := newCLI(t)
	out := c.mustRun(scenarioKey+"\n", "create", "alice", "--secret-key", "-", "--password-env", "KS_PW")
	assert.Contains(t, out, scenarioAddress)
}

func TestCreate_Generated(t *testing.T) {
	c := newCLI(t)
	c.mustRun("", "create", "fresh", "--password-env", "KS_PW")

	addr := c.mustRun("", "address", "fresh")
	sk := c.mustRun("", "export", "fresh", "--password-env", "KS_PW")

	parsed, err := types.ParseSecretKey(sk)
	require.NoError(t, err)
	assert.Equal(t, addr, parsed.PublicKey().Address())
}

func TestMnemonicRoundTrip(t *testing.T) {
	c := newCLI(t)
	c.mustRun("", "create", "alice", "--secret-key", scenarioKey, "--password-env", "KS_PW")

	words := c.mustRun("", "export", "alice", "--mnemonic", "--password-env", "KS_PW")
	assert.Len(t, strings.Fields(words), 24)

	c.mustRun(words+"\n", "import-mnemonic", "bob", "--password-env", "KS_NEW")
	assert.Equal(t, scenarioAddress, c.mustRun("", "address", "bob"))
	assert.Equal(t, scenarioKey, c.mustRun("", "export", "bob", "--password-env", "KS_NEW"))
}

func TestSign(t *testing.T) {
	c := newCLI(t)
	c.mustRun("", "create", "alice", "--secret-key", scenarioKey, "--password-env", "KS_PW")
	pub, err := types.ParseAddress(scenarioAddress)
	require.NoError(t, err)

	sig, err := hex.DecodeString(c.mustRun("", "sign", "alice", "hello", "--password-env", "KS_PW"))
	require.NoError(t, err)
	assert.True(t, crypto.VerifyEd25519(pub, []byte("hello"), sig))

	sig, err = hex.DecodeString(c.mustRun("", "sign", "alice", "00ff", "--hex", "--password-env", "KS_PW"))
	require.NoError(t, err)
	assert.True(t, crypto.VerifyEd25519(pub, []byte{0x00, 0xff}, sig))

	_, err = c.run("", "sign", "alice", "zz", "--hex", "--password-env", "KS_PW")
	require.Error(t, err)
}

func TestPasswd(t *testing.T) {
	c := newCLI(t)
	c.mustRun("", "create", "alice", "--secret-key", scenarioKey, "--password-env", "KS_PW")

	_, err := c.run("", "passwd", "alice", "--password-env", "KS_BAD", "--new-password-env", "KS_NEW")
	require.ErrorIs(t, err, keystore.ErrInvalidPassword)

	c.mustRun("", "passwd", "alice", "--password-env", "KS_PW", "--new-password-env", "KS_NEW")

	_, err = c.run("", "export", "alice", "--password-env", "KS_PW")
	require.ErrorIs(t, err, keystore.ErrInvalidPassword)
	assert.Equal(t, scenarioKey, c.mustRun("", "export", "alice", "--password-env", "KS_NEW"))
}

func TestInspectListRemove(t *testing.T) {
	c := newCLI(t)
	c.mustRun("", "create", "alice", "--secret-key", scenarioKey, "--password-env", "KS_PW")
	c.mustRun("", "create", "bob", "--password-env", "KS_PW")

	rec, err := keystore.Parse([]byte(c.mustRun("", "inspect", "alice")))
	require.NoError(t, err)
	assert.Equal(t, scenarioAddress, rec.PublicKey)
	assert.EqualValues(t, 64, rec.Crypto.KDFParams.MemLimitKiB)

	byPath := c.mustRun("", "inspect", filepath.Join(c.home, "alice.json"))
	assert.Contains(t, byPath, rec.ID)

	lines := strings.Split(c.mustRun("", "list"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "alice"))
	assert.Contains(t, lines[0], scenarioAddress)
	assert.True(t, strings.HasPrefix(lines[1], "bob"))

	_, err = c.run("", "remove", "alice")
	require.Error(t, err)
	c.mustRun("", "remove", "alice", "--yes")

	_, err = c.run("", "address", "alice")
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.True(t, strings.HasPrefix(c.mustRun("", "list"), "bob"))
}

func TestMetricsTextfile(t *testing.T) {
	c := newCLI(t)
	prom := filepath.Join(t.TempDir(), "keyseal.prom")

	c.mustRun("", "create", "alice", "--secret-key", scenarioKey, "--password-env", "KS_PW", "--metrics-textfile", prom)

	b, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(b), `keyseal_dump_total{result="ok"} 1`)
}

func TestConfigErrors(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("", "list", "--config", filepath.Join(c.home, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = c.run("", "list", "--log-level", "loud")
	require.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(c.home, "config.yaml"), []byte("kdf:\n  opslimit: 0\n"), 0o600))
	_, err = c.run("", "list")
	require.Error(t, err)
}
