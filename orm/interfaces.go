package orm

import (
	"github.com/gogo/protobuf/proto"
	tokenswap "github.com/iov-one/tokenswap"
)

// Model is implemented by any entity that can be stored using a Bucket.
// Serialization is done with protobuf, so a model must be a proto message.
type Model interface {
	proto.Message
	// Validate returns error if the model is not in a valid
	// state to save to the db (eg. field missing, out of range, ...)
	Validate() error
	Copy() Model
}

// Object is what is stored in the bucket
// Key is joined with the prefix to set the full key
// Value is the data stored
type Object interface {
	Keyed
	Value() Model
	Validate() error
}

// Keyed is anything that can identify itself
type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Reader defines an interface that allows reading objects from the db
type Reader interface {
	Get(db tokenswap.ReadOnlyKVStore, key []byte) (Object, error)
}
