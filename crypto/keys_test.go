package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

func TestEd25519Signing(t *testing.T) {
	private := GenPrivKeyEd25519()
	public := private.PublicKey()

	msg := []byte("foobar")
	msg2 := []byte("dingbooms")

	sig, err := private.Sign(msg)
	assert.Nil(t, err)
	sig2, err := private.Sign(msg2)
	assert.Nil(t, err)

	bz, err := proto.Marshal(sig)
	assert.Nil(t, err)
	bz2, err := proto.Marshal(sig2)
	assert.Nil(t, err)
	if bytes.Equal(bz, bz2) {
		t.Fatal("marshaling different signatures produce the same binary representation")
	}

	if !public.Verify(msg, sig) {
		t.Fatal("cannot verify a message signed with this public key")
	}
	if !public.Verify(msg2, sig2) {
		t.Fatal("cannot verify a message signed with this public key")
	}
	if public.Verify(msg, sig2) {
		t.Fatal("verified message signature of the wrong message")
	}
	if public.Verify(msg, &Signature{}) {
		t.Fatal("verified an empty signature of a message")
	}
	if public.Verify(msg, nil) {
		t.Fatal("verified a nil signature of a message")
	}
}

func TestEd25519Condition(t *testing.T) {
	pub := GenPrivKeyEd25519().PublicKey()
	pub2 := GenPrivKeyEd25519().PublicKey()

	assert.Nil(t, pub.Condition().Validate())
	assert.Nil(t, pub.Address().Validate())
	if pub.Condition().Equals(pub2.Condition()) {
		t.Fatal("two different keys produced the same condition")
	}
	ext, typ, data, err := pub.Condition().Parse()
	assert.Nil(t, err)
	assert.Equal(t, ExtensionName, ext)
	assert.Equal(t, "ed25519", typ)
	assert.Equal(t, pub.Ed25519, data)

	var empty PublicKey
	assert.Nil(t, empty.Condition())
	assert.IsErr(t, errors.ErrEmpty, empty.Validate())
	assert.Nil(t, pub.Validate())
}

func TestPrivKeyFromSeed(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, 32)
	a := PrivKeyEd25519FromSeed(seed)
	b := PrivKeyEd25519FromSeed(seed)
	if !a.PublicKey().Equals(b.PublicKey()) {
		t.Fatal("seeded keys differ")
	}
}

func TestDeriveKey(t *testing.T) {
	// SLIP-0010 ed25519 test vector 1
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	assert.Nil(t, err)

	key, err := DeriveKey(seed, "m/0'")
	assert.Nil(t, err)
	wantPub, err := hex.DecodeString("8c8a13df77a28f3445213a0f432fde644acaa215fc72dcdf300d5efaa85d350c")
	assert.Nil(t, err)
	assert.Equal(t, wantPub, key.PublicKey().Ed25519)

	other, err := DeriveKey(seed, "m/1'")
	assert.Nil(t, err)
	if key.PublicKey().Equals(other.PublicKey()) {
		t.Fatal("different paths derived the same key")
	}

	_, err = DeriveKey(seed, "m/0")
	assert.IsErr(t, errors.ErrInput, err)
}
