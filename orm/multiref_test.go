package orm

import (
	"testing"

	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

func TestMultiRef(t *testing.T) {
	m := new(MultiRef)
	for _, r := range [][]byte{[]byte("b"), []byte("c"), []byte("a")} {
		assert.Nil(t, m.Add(r))
	}
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b"), []byte("c")}, m.Refs)

	assert.IsErr(t, errors.ErrDuplicate, m.Add([]byte("b")))
	assert.Nil(t, m.Remove([]byte("b")))
	assert.IsErr(t, errors.ErrNotFound, m.Remove([]byte("b")))

	cpy := m.Copy().(*MultiRef)
	assert.Nil(t, cpy.Add([]byte("z")))
	assert.Equal(t, 2, len(m.Refs))
	assert.Equal(t, 3, len(cpy.Refs))

	empty := &MultiRef{}
	assert.IsErr(t, errors.ErrEmpty, empty.Validate())
}
