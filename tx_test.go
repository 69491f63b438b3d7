package tokenswap_test

import (
	"testing"

	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/weavetest"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		tx      tokenswap.Tx
		dest    interface{}
		wantErr *errors.Error
	}{
		"message loaded": {
			tx:   &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/msg"}},
			dest: &weavetest.Msg{},
		},
		"invalid message": {
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/msg", Err: errors.ErrAmount.New("negative")}},
			dest:    &weavetest.Msg{},
			wantErr: errors.ErrAmount,
		},
		"missing message": {
			tx:      &weavetest.Tx{},
			dest:    &weavetest.Msg{},
			wantErr: errors.ErrInput,
		},
		"broken transaction": {
			tx:      &weavetest.Tx{Err: errors.ErrMsg.New("broken")},
			dest:    &weavetest.Msg{},
			wantErr: errors.ErrMsg,
		},
		"destination not a pointer": {
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/msg"}},
			dest:    weavetest.Msg{},
			wantErr: errors.ErrType,
		},
		"destination of another type": {
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/msg"}},
			dest:    &tokenswap.Metadata{},
			wantErr: errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tokenswap.LoadMsg(tc.tx, tc.dest)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, "test/msg", tc.dest.(*weavetest.Msg).RoutePath)
			}
		})
	}
}

func TestGetPath(t *testing.T) {
	assert.Equal(t, "test/msg", tokenswap.GetPath(&weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/msg"}}))
	assert.Equal(t, "(missing)", tokenswap.GetPath(&weavetest.Tx{}))
	assert.Equal(t, "(missing)", tokenswap.GetPath(&weavetest.Tx{Err: errors.ErrMsg.New("broken")}))
}
