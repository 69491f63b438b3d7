package store

import (
	"testing"

	"github.com/iov-one/tokenswap/weavetest/assert"
)

func makeBase() (CacheableKVStore, func()) {
	return MemStore(), func() {}
}

var suite = NewTestSuite(makeBase)

func TestBTreeCacheGetSet(t *testing.T) {
	suite.GetSet(t)
}

func TestBTreeCacheConflicts(t *testing.T) {
	suite.CacheConflicts(t)
}

func TestBTreeFuzzCache(t *testing.T) {
	suite.FuzzCache(t)
}

func TestBTreeNilKey(t *testing.T) {
	db := MemStore()
	if err := db.Set(nil, []byte("value")); err == nil {
		t.Fatal("nil key must be rejected")
	}
	if err := db.Delete(nil); err == nil {
		t.Fatal("nil key must be rejected")
	}
}

// showOpser returns an ordered list of all operations performed
type showOpser interface {
	ShowOps() []Op
}

// logableStore returns a store, along with insight into all operations that were run on it
func logableStore() (CacheableKVStore, showOpser) {
	e := EmptyKVStore{}
	b := NewNonAtomicBatch(e)
	kv := NewBTreeCacheWrap(e, b, nil)
	return kv, b
}

func TestBTreeWriteOrder(t *testing.T) {
	kv, ops := logableStore()
	cache := kv.CacheWrap()
	k := []byte("key")
	assert.Nil(t, cache.Set(k, []byte("one")))
	assert.Nil(t, cache.Delete(k))
	assert.Nil(t, cache.Set(k, []byte("two")))
	assert.Nil(t, cache.Write())

	got := ops.ShowOps()
	if len(got) != 3 {
		t.Fatalf("want 3 ops, got %d", len(got))
	}
	assert.Equal(t, true, got[0].IsSetOp())
	assert.Equal(t, false, got[1].IsSetOp())
	assert.Equal(t, []byte("two"), got[2].Value())
	suite.AssertGetHas(t, kv, k, []byte("two"), true)
}

func TestBTreeDiscardedCacheIsEmpty(t *testing.T) {
	base := MemStore()
	cache := base.CacheWrap()
	k := []byte("foo")
	assert.Nil(t, cache.Set(k, []byte("bar")))
	cache.Discard()
	suite.AssertGetHas(t, cache, k, nil, false)
	// writing a discarded cache is a noop
	assert.Nil(t, cache.Write())
	suite.AssertGetHas(t, base, k, nil, false)
}
