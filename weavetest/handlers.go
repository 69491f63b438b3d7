package weavetest

import (
	tokenswap "github.com/iov-one/tokenswap"
)

// Handler is a mock implementing tokenswap.Handler interface. It returns
// preconfigured results and counts the calls.
type Handler struct {
	checkCall   int
	CheckResult tokenswap.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult tokenswap.DeliverResult
	DeliverErr    error

	// Write, if set, is stored in the database on every call, before the
	// result is returned.
	Write *tokenswap.Model
}

var _ tokenswap.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	h.checkCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	h.deliverCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) write(db tokenswap.KVStore) error {
	if h.Write == nil {
		return nil
	}
	return db.Set(h.Write.Key, h.Write.Value)
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// PanicHandler always panics with given value.
type PanicHandler struct {
	Value interface{}
}

var _ tokenswap.Handler = PanicHandler{}

func (p PanicHandler) Check(tokenswap.Context, tokenswap.KVStore, tokenswap.Tx) (*tokenswap.CheckResult, error) {
	panic(p.Value)
}

func (p PanicHandler) Deliver(tokenswap.Context, tokenswap.KVStore, tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	panic(p.Value)
}
