package coin

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/tokenswap/errors"
)

func TestCoinAdd(t *testing.T) {
	cases := map[string]struct {
		a, b    Coin
		want    Coin
		wantErr *errors.Error
	}{
		"same ticker": {
			a:    NewCoin(500, "ABC"),
			b:    NewCoin(250, "ABC"),
			want: NewCoin(750, "ABC"),
		},
		"negative result": {
			a:    NewCoin(5, "ABC"),
			b:    NewCoin(-7, "ABC"),
			want: NewCoin(-2, "ABC"),
		},
		"empty left": {
			a:    Coin{},
			b:    NewCoin(3, "XYZ"),
			want: NewCoin(3, "XYZ"),
		},
		"different tickers": {
			a:       NewCoin(1, "ABC"),
			b:       NewCoin(1, "XYZ"),
			wantErr: errors.ErrCurrency,
		},
		"overflow": {
			a:       NewCoin(MaxAmount, "ABC"),
			b:       NewCoin(1, "ABC"),
			wantErr: errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.a.Add(tc.b)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("want %v error, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if !got.Equals(tc.want) {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCoinCompare(t *testing.T) {
	a := NewCoin(10, "ABC")
	if !a.IsGTE(NewCoin(10, "ABC")) {
		t.Fatal("equal coin must be GTE")
	}
	if a.IsGTE(NewCoin(11, "ABC")) {
		t.Fatal("larger coin must not be GTE")
	}
	if a.IsGTE(NewCoin(1, "XYZ")) {
		t.Fatal("different ticker must not be GTE")
	}
	sum, err := a.Add(a.Negative())
	if err != nil || !sum.IsZero() {
		t.Fatalf("want zero, got %v (%v)", sum, err)
	}
}

func TestCoinValidate(t *testing.T) {
	if err := NewCoin(1, "ABC").Validate(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := NewCoin(1, "abc").Validate(); !errors.ErrCurrency.Is(err) {
		t.Fatalf("want currency error, got %v", err)
	}
	if err := NewCoin(MaxAmount+1, "ABC").Validate(); !errors.ErrOverflow.Is(err) {
		t.Fatalf("want overflow error, got %v", err)
	}
}

func TestParseHumanFormat(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    Coin
		wantErr bool
	}{
		"simple":       {raw: "500 ABC", want: NewCoin(500, "ABC")},
		"no space":     {raw: "1000XYZ", want: NewCoin(1000, "XYZ")},
		"negative":     {raw: "-3 ETH", want: NewCoin(-3, "ETH")},
		"fraction":     {raw: "1.5 ABC", wantErr: true},
		"lower ticker": {raw: "1 abc", wantErr: true},
		"missing":      {raw: "ABC", wantErr: true},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParseHumanFormat(tc.raw)
			if tc.wantErr {
				if !errors.ErrInput.Is(err) {
					t.Fatalf("want input error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if !got.Equals(tc.want) {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCoinJSON(t *testing.T) {
	var c Coin
	if err := json.Unmarshal([]byte(`"42 ABC"`), &c); err != nil {
		t.Fatalf("human format: %s", err)
	}
	if !c.Equals(NewCoin(42, "ABC")) {
		t.Fatalf("unexpected coin %v", c)
	}
	if err := json.Unmarshal([]byte(`{"ticker": "XYZ", "amount": 7}`), &c); err != nil {
		t.Fatalf("object format: %s", err)
	}
	if !c.Equals(NewCoin(7, "XYZ")) {
		t.Fatalf("unexpected coin %v", c)
	}
	raw, err := json.Marshal(NewCoin(7, "XYZ"))
	if err != nil {
		t.Fatalf("marshal: %s", err)
	}
	if string(raw) != `"7 XYZ"` {
		t.Fatalf("unexpected json %s", raw)
	}
}

func TestCoinsAdd(t *testing.T) {
	cs, err := CombineCoins(NewCoin(5, "XYZ"), NewCoin(3, "ABC"), NewCoin(2, "XYZ"))
	if err != nil {
		t.Fatalf("cannot combine: %s", err)
	}
	if len(cs) != 2 || cs[0].Ticker != "ABC" || cs[1].Ticker != "XYZ" {
		t.Fatalf("unexpected set: %s", cs)
	}
	if got := cs.Get("XYZ"); got.Amount != 7 {
		t.Fatalf("want 7 XYZ, got %v", got)
	}

	less, err := cs.Subtract(NewCoin(3, "ABC"))
	if err != nil {
		t.Fatalf("cannot subtract: %s", err)
	}
	if len(less) != 1 || less.Contains(NewCoin(1, "ABC")) {
		t.Fatalf("zero value must be removed: %s", less)
	}
	// The original set is not modified.
	if !cs.Contains(NewCoin(3, "ABC")) {
		t.Fatalf("receiver modified: %s", cs)
	}
	if !less.IsPositive() || !less.IsNonNegative() {
		t.Fatalf("unexpected sign: %s", less)
	}
}

func TestCoinsValidate(t *testing.T) {
	unsorted := Coins{NewCoinp(1, "XYZ"), NewCoinp(1, "ABC")}
	if err := unsorted.Validate(); !errors.ErrCurrency.Is(err) {
		t.Fatalf("want currency error, got %v", err)
	}
	zero := Coins{NewCoinp(0, "ABC")}
	if err := zero.Validate(); !errors.ErrAmount.Is(err) {
		t.Fatalf("want amount error, got %v", err)
	}
}
