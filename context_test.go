package tokenswap_test

import (
	"context"
	"testing"
	"time"

	tokenswap "github.com/iov-one/tokenswap"
	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContextChainID(t *testing.T) {
	ctx := context.Background()
	assert.Panics(t, func() { tokenswap.GetChainID(ctx) })
	assert.Panics(t, func() { tokenswap.WithChainID(ctx, "bad") })
	assert.Panics(t, func() { tokenswap.WithChainID(ctx, "no spaces allowed") })

	ctx = tokenswap.WithChainID(ctx, "test-chain")
	assert.Equal(t, "test-chain", tokenswap.GetChainID(ctx))
	assert.Panics(t, func() { tokenswap.WithChainID(ctx, "other-chain") })
}

func TestContextHeightAndTime(t *testing.T) {
	ctx := context.Background()
	_, ok := tokenswap.GetHeight(ctx)
	assert.False(t, ok)
	_, ok = tokenswap.BlockTime(ctx)
	assert.False(t, ok)

	now := time.Now()
	ctx = tokenswap.WithHeight(ctx, 7)
	ctx = tokenswap.WithBlockTime(ctx, now)

	height, ok := tokenswap.GetHeight(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(7), height)
	blockTime, ok := tokenswap.BlockTime(ctx)
	assert.True(t, ok)
	assert.True(t, now.Equal(blockTime))

	assert.Panics(t, func() { tokenswap.WithHeight(ctx, 8) })
	assert.Panics(t, func() { tokenswap.WithBlockTime(ctx, now) })
}

func TestContextLogger(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, tokenswap.DefaultLogger, tokenswap.GetLogger(ctx))

	logger := log.NewNopLogger().With("module", "test")
	ctx = tokenswap.WithLogger(ctx, logger)
	assert.Equal(t, logger, tokenswap.GetLogger(ctx))

	ctx = tokenswap.WithLogInfo(ctx, "call", "deliver_tx")
	assert.NotNil(t, tokenswap.GetLogger(ctx))
}
