package errors

import (
	"fmt"
	"strings"
)

// Append joins errors together into a single error. Nil values are dropped,
// so it is safe to collect validation results one by one:
//
//	var err error
//	err = errors.Append(err, validateA())
//	err = errors.Append(err, validateB())
//	return err
//
// The result is matched by Is if any of the joined errors matches. Its ABCI
// code is the code of the first error.
func Append(errs ...error) error {
	var res multiErr
	for _, e := range errs {
		if errIsNil(e) {
			continue
		}
		if m, ok := e.(multiErr); ok {
			res = append(res, m...)
		} else {
			res = append(res, e)
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

type unpacker interface {
	Unpack() []error
}

type multiErr []error

var (
	_ unpacker = multiErr(nil)
	_ coder    = multiErr(nil)
)

func (m multiErr) Unpack() []error {
	return []error(m)
}

func (m multiErr) Error() string {
	msgs := make([]string, len(m))
	for i, e := range m {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d errors: %s", len(m), strings.Join(msgs, "; "))
}

func (m multiErr) ABCICode() uint32 {
	return abciCode(m[0])
}
