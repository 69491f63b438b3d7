package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/commands/server"
	"github.com/iov-one/tokenswap/crypto"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/x/escrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, tokenswap.Version()+"\n", out)
}

func TestAuthority(t *testing.T) {
	authority, err := escrow.NewAuthority(escrow.DefaultProgramID)
	require.NoError(t, err)

	out, err := run(t, "authority")
	require.NoError(t, err)
	assert.Contains(t, out, escrow.DefaultProgramID.String())
	assert.Contains(t, out, fmt.Sprintf("%s (bump %d)", authority.PublicKey(), authority.Bump()))
	assert.NotContains(t, out, "vault:")

	vault, bump, err := authority.FindVault([]byte("swap-1"))
	require.NoError(t, err)
	out, err = run(t, "authority", "swap-1")
	require.NoError(t, err)
	assert.Contains(t, out, fmt.Sprintf("vault:     %s (bump %d)", vault, bump))

	out, err = run(t, "authority", "--hex", hex.EncodeToString([]byte("swap-1")))
	require.NoError(t, err)
	assert.Contains(t, out, fmt.Sprintf("vault:     %s (bump %d)", vault, bump))

	_, err = run(t, "authority", "--hex", "zz")
	require.Error(t, err)
	assert.True(t, errors.ErrInput.Is(err))

	_, err = run(t, "authority", "--program", "not-a-key")
	require.Error(t, err)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestKeysDerive(t *testing.T) {
	seed := strings.Repeat("01", 32)
	raw, err := hex.DecodeString(seed)
	require.NoError(t, err)
	key, err := crypto.DeriveKey(raw, defaultDerivationPath)
	require.NoError(t, err)

	out, err := run(t, "keys", "derive", seed)
	require.NoError(t, err)
	assert.Contains(t, out, fmt.Sprintf("%X", key.PublicKey().Ed25519))
	assert.Contains(t, out, key.PublicKey().Address().String())
	assert.Contains(t, out, "bech32:     swap1")

	_, err = run(t, "keys", "derive", "not-hex")
	require.Error(t, err)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestInitAndValidateGenesis(t *testing.T) {
	home, err := ioutil.TempDir("", "escrowd")
	require.NoError(t, err)
	defer os.RemoveAll(home)
	require.NoError(t, os.Mkdir(filepath.Join(home, "config"), 0755))
	genesis := `{"chain_id": "test-chain-cli", "validators": []}`
	require.NoError(t, ioutil.WriteFile(server.GenesisPath(home), []byte(genesis), 0600))

	_, err = run(t, "validate-genesis", "--home", home)
	require.NoError(t, err, "missing app_state is an empty state")

	addr := crypto.GenPrivKeyEd25519().PublicKey().Address()
	_, err = run(t, "init", "--home", home, "--log_level", "none", addr.String())
	require.NoError(t, err)

	_, err = run(t, "validate-genesis", "--home", home)
	require.NoError(t, err)

	_, err = run(t, "init", "--home", home, "--log_level", "none", addr.String())
	require.Error(t, err)
	assert.True(t, errors.ErrState.Is(err))

	out, err := run(t, "init", "--home", home, "--log_level", "none", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "generated key seed: ")
}
