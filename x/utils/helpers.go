package utils

import (
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/store"
)

// cacheWrap returns a cache on top of given store. Stores that cannot cache
// by themselves get a btree buffer.
func cacheWrap(db tokenswap.KVStore) tokenswap.KVCacheWrap {
	if c, ok := db.(tokenswap.CacheableKVStore); ok {
		return c.CacheWrap()
	}
	return store.NewBTreeCacheWrap(db, store.NewNonAtomicBatch(db), nil)
}
