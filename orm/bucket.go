package orm

import (
	"reflect"
	"regexp"

	"github.com/gogo/protobuf/proto"
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,20}$`).MatchString

// Bucket is a generic holder that stores data as well
// as references to secondary indexes and sequences.
//
// This is a generic building block that should generally
// be embedded in a type-safe wrapper to ensure all data
// is the same type.
type Bucket struct {
	name    string
	prefix  []byte
	proto   Model
	indexes []Index
}

var _ tokenswap.QueryHandler = Bucket{}

// NewBucket creates a bucket to store data. Name must be unique in the
// application, proto is an instance of the stored type and is used to
// create new values when loading from the store.
func NewBucket(name string, proto Model) Bucket {
	if !isBucketName(name) {
		panic("invalid bucket name: " + name)
	}
	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		proto:  proto,
	}
}

// Name returns the name of the bucket.
func (b Bucket) Name() string {
	return b.name
}

// Register registers this Bucket and all indexes.
// You can define a name here for queries, which is
// different than the bucket name used to prefix the data
func (b Bucket) Register(name string, r tokenswap.QueryRouter) {
	if name == "" {
		name = b.name
	}
	root := "/" + name
	r.Register(root, b)
	for _, idx := range b.indexes {
		r.Register(root+"/"+idx.Name(), idx)
	}
}

// Query handles queries from the QueryRouter.
func (b Bucket) Query(db tokenswap.ReadOnlyKVStore, mod string, data []byte) ([]tokenswap.Model, error) {
	if mod != tokenswap.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unsupported query mod %q", mod)
	}
	key := b.DBKey(data)
	value, err := db.Get(key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	return []tokenswap.Model{tokenswap.Pair(key, value)}, nil
}

// DBKey is the full key we store in the db, including prefix
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	res := make([]byte, l+len(key))
	copy(res, b.prefix)
	copy(res[l:], key)
	return res
}

// Get one element
func (b Bucket) Get(db tokenswap.ReadOnlyKVStore, key []byte) (Object, error) {
	dbkey := b.DBKey(key)
	bz, err := db.Get(dbkey)
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, nil
	}
	return b.Parse(key, bz)
}

// Parse takes a key and value data (serialized) and parses into
// an Object of the correct type for this bucket
func (b Bucket) Parse(key, value []byte) (Object, error) {
	m := reflect.New(reflect.TypeOf(b.proto).Elem()).Interface().(Model)
	if err := proto.Unmarshal(value, m); err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "cannot unmarshal %T: %s", m, err)
	}
	return NewSimpleObj(key, m), nil
}

// Save will write a model, it must be of the same type as proto
func (b Bucket) Save(db tokenswap.KVStore, model Object) error {
	if err := model.Validate(); err != nil {
		return err
	}
	if reflect.TypeOf(model.Value()) != reflect.TypeOf(b.proto) {
		return errors.Wrapf(errors.ErrType, "cannot store %T in %T bucket", model.Value(), b.proto)
	}

	if err := b.updateIndexes(db, model.Key(), model); err != nil {
		return err
	}

	raw, err := proto.Marshal(model.Value())
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return db.Set(b.DBKey(model.Key()), raw)
}

// Delete will remove the value at a key
func (b Bucket) Delete(db tokenswap.KVStore, key []byte) error {
	if err := b.updateIndexes(db, key, nil); err != nil {
		return err
	}
	return db.Delete(b.DBKey(key))
}

func (b Bucket) updateIndexes(db tokenswap.KVStore, key []byte, model Object) error {
	// update all indexes
	if len(b.indexes) == 0 {
		return nil
	}
	prev, err := b.Get(db, key)
	if err != nil {
		return err
	}
	if prev == nil && model == nil {
		return nil
	}
	for _, idx := range b.indexes {
		if err := idx.Update(db, prev, model); err != nil {
			return err
		}
	}
	return nil
}

// WithIndex returns a copy of this bucket with given index,
// panics if it an index with that name is already registered.
//
// Designed to be chained.
func (b Bucket) WithIndex(name string, indexer Indexer, unique bool) Bucket {
	for _, idx := range b.indexes {
		if idx.Name() == name {
			panic("duplicate index: " + name)
		}
	}
	idx := NewIndex(b.name+"_"+name, indexer, unique, b.DBKey)
	// Keep the name the queries are registered under short.
	idx.name = name
	indexes := make([]Index, len(b.indexes), len(b.indexes)+1)
	copy(indexes, b.indexes)
	b.indexes = append(indexes, idx)
	return b
}

// Index returns the index with given name, or an error if there is no such
// index defined.
func (b Bucket) Index(name string) (Index, error) {
	for _, idx := range b.indexes {
		if idx.Name() == name {
			return idx, nil
		}
	}
	return Index{}, errors.Wrapf(errors.ErrInput, "no index with the name %q", name)
}

// GetIndexed queries the named index for the given key
func (b Bucket) GetIndexed(db tokenswap.ReadOnlyKVStore, name string, key []byte) ([]Object, error) {
	idx, err := b.Index(name)
	if err != nil {
		return nil, err
	}
	refs, err := idx.Keys(db, key)
	if err != nil {
		return nil, err
	}
	res := make([]Object, 0, len(refs))
	for _, ref := range refs {
		obj, err := b.Get(db, ref)
		if err != nil {
			return nil, err
		}
		if obj == nil {
			return nil, errors.Wrapf(errors.ErrState, "index %s references missing %X", name, ref)
		}
		res = append(res, obj)
	}
	return res, nil
}
