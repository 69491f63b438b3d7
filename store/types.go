package store

import (
	tokenswap "github.com/iov-one/tokenswap"
)

// Move references for all storage types into this package
type (
	ReadOnlyKVStore  = tokenswap.ReadOnlyKVStore
	SetDeleter       = tokenswap.SetDeleter
	KVStore          = tokenswap.KVStore
	CacheableKVStore = tokenswap.CacheableKVStore
	KVCacheWrap      = tokenswap.KVCacheWrap
	CommitKVStore    = tokenswap.CommitKVStore
	CommitID         = tokenswap.CommitID
	Model            = tokenswap.Model
)

// Pair constructs a model from a key-value pair
var Pair = tokenswap.Pair

// Batch can write multiple ops atomically to an underlying KVStore
type Batch interface {
	SetDeleter
	Write() error
}
