package orm

import (
	"bytes"
	"regexp"

	"github.com/gogo/protobuf/proto"
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

const indexPrefix = "_i."

var isIndexName = regexp.MustCompile(`^[a-z_]{3,30}$`).MatchString

// Indexer calculates the secondary index key for a given object. Returning a
// nil key means the object is not indexed.
type Indexer func(Object) ([]byte, error)

// Index represents a secondary index on some data. It is indexed by an
// arbitrary key returned by Indexer. All references stored under a single
// index key are kept together as one value: the primary key itself for unique
// indexes, a MultiRef otherwise.
type Index struct {
	name   string
	id     []byte
	unique bool
	index  Indexer
	refKey func([]byte) []byte
}

var _ tokenswap.QueryHandler = Index{}

// NewIndex constructs an index.
// Indexer calculates the index for an object
// unique enforces a unique constraint on the index
// refKey calculates the absolute dbkey for a ref
func NewIndex(name string, indexer Indexer, unique bool, refKey func([]byte) []byte) Index {
	if !isIndexName(name) {
		panic("invalid index name: " + name)
	}
	return Index{
		name:   name,
		id:     []byte(indexPrefix + name + ":"),
		index:  indexer,
		unique: unique,
		refKey: refKey,
	}
}

// Name returns the name of this index.
func (i Index) Name() string {
	return i.name
}

// indexKey is the full key we store in the db, including prefix
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (i Index) indexKey(key []byte) []byte {
	l := len(i.id)
	out := make([]byte, l+len(key))
	copy(out, i.id)
	copy(out[l:], key)
	return out
}

// Update handles updating the reference to the object in
// the secondary index.
//
// prev == nil means insert
// save == nil means delete
// both == nil is error
// if both != nil and prev.Key() != save.Key() this is an error
func (i Index) Update(db tokenswap.KVStore, prev Object, save Object) error {
	switch {
	case prev == nil && save == nil:
		return errors.Wrap(errors.ErrInput, "update requires at least one non-nil object")
	case prev == nil:
		key, err := i.index(save)
		if err != nil || key == nil {
			return err
		}
		return i.insert(db, key, save.Key())
	case save == nil:
		key, err := i.index(prev)
		if err != nil || key == nil {
			return err
		}
		return i.remove(db, key, prev.Key())
	default:
		return i.move(db, prev, save)
	}
}

func (i Index) move(db tokenswap.KVStore, prev Object, save Object) error {
	if !bytes.Equal(prev.Key(), save.Key()) {
		return errors.Wrap(errors.ErrImmutable, "cannot modify the primary key of an object")
	}
	oldKey, err := i.index(prev)
	if err != nil {
		return err
	}
	newKey, err := i.index(save)
	if err != nil {
		return err
	}
	if bytes.Equal(oldKey, newKey) {
		return nil
	}
	if oldKey != nil {
		if err := i.remove(db, oldKey, prev.Key()); err != nil {
			return err
		}
	}
	if newKey == nil {
		return nil
	}
	return i.insert(db, newKey, save.Key())
}

func (i Index) insert(db tokenswap.KVStore, key []byte, pk []byte) error {
	dbKey := i.indexKey(key)
	cur, err := db.Get(dbKey)
	if err != nil {
		return err
	}

	if i.unique {
		if cur != nil && !bytes.Equal(cur, pk) {
			return errors.Wrapf(errors.ErrDuplicate, "%s index: %X", i.name, key)
		}
		return db.Set(dbKey, pk)
	}

	var refs MultiRef
	if cur != nil {
		if err := proto.Unmarshal(cur, &refs); err != nil {
			return errors.Wrap(errors.ErrDatabase, err.Error())
		}
	}
	if err := refs.Add(pk); err != nil {
		return err
	}
	return i.store(db, dbKey, &refs)
}

func (i Index) remove(db tokenswap.KVStore, key []byte, pk []byte) error {
	dbKey := i.indexKey(key)
	cur, err := db.Get(dbKey)
	if err != nil {
		return err
	}
	if cur == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s index: %X", i.name, key)
	}

	if i.unique {
		if !bytes.Equal(cur, pk) {
			return errors.Wrapf(errors.ErrState, "%s index does not reference %X", i.name, pk)
		}
		return db.Delete(dbKey)
	}

	var refs MultiRef
	if err := proto.Unmarshal(cur, &refs); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if err := refs.Remove(pk); err != nil {
		return err
	}
	if len(refs.Refs) == 0 {
		return db.Delete(dbKey)
	}
	return i.store(db, dbKey, &refs)
}

func (i Index) store(db tokenswap.KVStore, dbKey []byte, refs *MultiRef) error {
	raw, err := proto.Marshal(refs)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return db.Set(dbKey, raw)
}

// Keys returns all primary keys that were indexed under given value.
func (i Index) Keys(db tokenswap.ReadOnlyKVStore, value []byte) ([][]byte, error) {
	raw, err := db.Get(i.indexKey(value))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	if i.unique {
		return [][]byte{raw}, nil
	}
	var refs MultiRef
	if err := proto.Unmarshal(raw, &refs); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return refs.Refs, nil
}

// Query handles queries from the QueryRouter. Only exact key lookups are
// supported.
func (i Index) Query(db tokenswap.ReadOnlyKVStore, mod string, data []byte) ([]tokenswap.Model, error) {
	if mod != tokenswap.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unsupported query mod %q", mod)
	}
	refs, err := i.Keys(db, data)
	if err != nil {
		return nil, err
	}
	res := make([]tokenswap.Model, 0, len(refs))
	for _, ref := range refs {
		key := i.refKey(ref)
		val, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		if val == nil {
			return nil, errors.Wrapf(errors.ErrState, "%s index references missing %X", i.name, ref)
		}
		res = append(res, tokenswap.Pair(key, val))
	}
	return res, nil
}
