package server

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/tokenswap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

// setupHome creates a home directory holding a genesis file as written by
// `tendermint init`.
func setupHome(t *testing.T) (string, func()) {
	t.Helper()
	home, err := ioutil.TempDir("", "escrowd-home")
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(home, "config"), 0755))
	genesis := `{"genesis_time": "2019-04-01T00:00:00Z", "chain_id": "test-chain-srv", "validators": []}`
	require.NoError(t, ioutil.WriteFile(GenesisPath(home), []byte(genesis), 0600))
	return home, func() { os.RemoveAll(home) }
}

func readAppState(t *testing.T, home string) map[string]interface{} {
	t.Helper()
	raw, err := ioutil.ReadFile(GenesisPath(home))
	require.NoError(t, err)
	var doc struct {
		ChainID  string                 `json:"chain_id"`
		AppState map[string]interface{} `json:"app_state"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "test-chain-srv", doc.ChainID)
	return doc.AppState
}

func genTicker(args []string) (json.RawMessage, error) {
	ticker := "SWP"
	if len(args) > 0 {
		ticker = args[0]
	}
	return json.Marshal(map[string]string{"ticker": ticker})
}

func TestInitCmd(t *testing.T) {
	home, cleanup := setupHome(t)
	defer cleanup()
	logger := log.NewNopLogger()

	require.NoError(t, InitCmd(genTicker, logger, home, false, nil))
	assert.Equal(t, "SWP", readAppState(t, home)["ticker"])

	err := InitCmd(genTicker, logger, home, false, []string{"ABC"})
	require.Error(t, err)
	assert.True(t, errors.ErrState.Is(err))
	assert.Equal(t, "SWP", readAppState(t, home)["ticker"])

	require.NoError(t, InitCmd(genTicker, logger, home, true, []string{"ABC"}))
	assert.Equal(t, "ABC", readAppState(t, home)["ticker"])
}

func TestInitCmdWithoutGenesis(t *testing.T) {
	home, err := ioutil.TempDir("", "escrowd-empty")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	err = InitCmd(genTicker, log.NewNopLogger(), home, false, nil)
	require.Error(t, err)
	assert.True(t, errors.ErrNotFound.Is(err))
}
