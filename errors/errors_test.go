package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		a      *Error
		b      error
		wantIs bool
	}{
		"instance of the same error": {
			a:      ErrNotFound,
			b:      ErrNotFound,
			wantIs: true,
		},
		"two different errors": {
			a:      ErrNotFound,
			b:      ErrUnauthorized,
			wantIs: false,
		},
		"wrapped error": {
			a:      ErrInsufficientAmount,
			b:      Wrap(ErrInsufficientAmount, "vault"),
			wantIs: true,
		},
		"wrapped twice": {
			a:      ErrCurrency,
			b:      Wrap(Wrap(ErrCurrency, "taker deposit"), "exchange"),
			wantIs: true,
		},
		"wrapped different error": {
			a:      ErrCurrency,
			b:      Wrap(ErrAmount, "amount"),
			wantIs: false,
		},
		"nil is nil": {
			a:      nil,
			b:      nil,
			wantIs: true,
		},
		"stdlib error": {
			a:      ErrInternal,
			b:      stderrors.New("boom"),
			wantIs: false,
		},
		"appended errors": {
			a:      ErrAmount,
			b:      Append(ErrMetadata, Wrap(ErrAmount, "taker")),
			wantIs: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.a.Is(tc.b); got != tc.wantIs {
				t.Fatalf("unexpected result: %v", got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "anything"); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
}

func TestWrapMessage(t *testing.T) {
	err := Wrapf(ErrNotFound, "escrow %d", 7)
	if got, want := err.Error(), "escrow 7: not found"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	Register(ErrNotFound.code, "again")
}

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"no error": {
			err:      nil,
			wantCode: SuccessABCICode,
			wantLog:  "",
		},
		"registered error": {
			err:      Wrap(ErrUnauthorized, "cancel"),
			wantCode: ErrUnauthorized.code,
			wantLog:  "cancel: unauthorized",
		},
		"stdlib error is redacted": {
			err:      fmt.Errorf("disk on fire"),
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
		"panic is redacted": {
			err:      Wrap(ErrPanic, "secret"),
			wantCode: ErrPanic.code,
			wantLog:  "panic",
		},
		"appended errors use first code": {
			err:      Append(ErrInsufficientAmount, ErrCurrency),
			wantCode: ErrInsufficientAmount.code,
			wantLog:  "2 errors: insufficient amount; currency",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestStackTraceDebug(t *testing.T) {
	err := Wrap(ErrState, "vault not empty")
	_, log := ABCIInfo(err, true)
	if !strings.Contains(log, "errors_test.go") {
		t.Fatalf("stack trace missing: %s", log)
	}
}

func TestRecover(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err)
		panic("oops")
	}
	if err := run(); !ErrPanic.Is(err) {
		t.Fatalf("want panic error, got %v", err)
	}
}
