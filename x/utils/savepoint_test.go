package utils

import (
	"context"
	"testing"

	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/weavetest"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

func TestSavepoint(t *testing.T) {
	// always write ok, ov before calling functions
	ok, ov := []byte("demo"), []byte("data")
	// some key, value to try to write
	nk, nv := []byte{1, 2, 3}, []byte{4, 5, 6}
	write := &tokenswap.Model{Key: nk, Value: nv}

	cases := map[string]struct {
		save    Savepoint
		handler *weavetest.Handler
		check   bool
		wantErr *errors.Error
		written [][]byte
		missing [][]byte
	}{
		"savepoint disabled, returns error, both written": {
			save:    NewSavepoint(),
			handler: &weavetest.Handler{Write: write, CheckErr: errors.ErrState},
			check:   true,
			wantErr: errors.ErrState,
			written: [][]byte{ok, nk},
		},
		"savepoint enabled for check, returns error, one written": {
			save:    NewSavepoint().OnCheck(),
			handler: &weavetest.Handler{Write: write, CheckErr: errors.ErrState},
			check:   true,
			wantErr: errors.ErrState,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"savepoint enabled for deliver, returns error, one written": {
			save:    NewSavepoint().OnDeliver(),
			handler: &weavetest.Handler{Write: write, DeliverErr: errors.ErrState},
			wantErr: errors.ErrState,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"check savepoint does not affect deliver": {
			save:    NewSavepoint().OnCheck(),
			handler: &weavetest.Handler{Write: write, DeliverErr: errors.ErrState},
			wantErr: errors.ErrState,
			written: [][]byte{ok, nk},
		},
		"no rollback on success": {
			save:    NewSavepoint().OnCheck().OnDeliver(),
			handler: &weavetest.Handler{Write: write},
			written: [][]byte{ok, nk},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			kv := store.MemStore()
			assert.Nil(t, kv.Set(ok, ov))

			var err error
			if tc.check {
				_, err = tc.save.Check(context.Background(), kv, &weavetest.Tx{}, tc.handler)
			} else {
				_, err = tc.save.Deliver(context.Background(), kv, &weavetest.Tx{}, tc.handler)
			}
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
			} else {
				assert.Nil(t, err)
			}

			for _, k := range tc.written {
				has, err := kv.Has(k)
				assert.Nil(t, err)
				assert.Equal(t, true, has)
			}
			for _, k := range tc.missing {
				has, err := kv.Has(k)
				assert.Nil(t, err)
				assert.Equal(t, false, has)
			}
		})
	}
}

// plainStore hides the CacheWrap method of the wrapped store.
type plainStore struct {
	tokenswap.KVStore
}

func TestAtomicWithoutCacheSupport(t *testing.T) {
	kv := plainStore{store.MemStore()}

	err := Atomic(kv, func(db tokenswap.KVStore) error {
		if err := db.Set([]byte("a"), []byte("1")); err != nil {
			return err
		}
		return errors.ErrAmount
	})
	assert.IsErr(t, errors.ErrAmount, err)
	val, err := kv.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Nil(t, val)

	err = Atomic(kv, func(db tokenswap.KVStore) error {
		return db.Set([]byte("b"), []byte("2"))
	})
	assert.Nil(t, err)
	val, err = kv.Get([]byte("b"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("2"), val)
}
