package bankbook

import "testing"

func TestAmountArithmetic(t *testing.T) {
	a := A(100.0)
	b := A(40.0)

	if got := a.Sub(b).String(); got != "60" {
		t.Errorf("100 - 40 = %s, want 60", got)
	}
	if got := a.Add(b).String(); got != "140" {
		t.Errorf("100 + 40 = %s, want 140", got)
	}
	if got := b.Neg().String(); got != "-40" {
		t.Errorf("Neg(40) = %s, want -40", got)
	}
	if !A(0).IsZero() {
		t.Error("A(0) should be zero")
	}
	if !A(12.5).Equal(A(12.50)) {
		t.Error("12.5 and 12.50 should be equal")
	}
}

func TestAmountStringFixed(t *testing.T) {
	testCases := []struct {
		in   Amount
		want string
	}{
		{in: A(100.0), want: "100.00"},
		{in: A(60), want: "60.00"},
		{in: A(-3.5), want: "-3.50"},
		{in: A(0), want: "0.00"},
	}
	for _, tc := range testCases {
		if got := tc.in.StringFixed(); got != tc.want {
			t.Errorf("StringFixed(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAmountFormat(t *testing.T) {
	a := A(1234.5)
	if got := a.Format("USD"); got != "$1,234.50" {
		t.Errorf("Format(USD) = %q, want %q", got, "$1,234.50")
	}
	// no currency falls back to the plain fixed form.
	if got := a.Format(""); got != "1234.50" {
		t.Errorf("Format() = %q, want %q", got, "1234.50")
	}
	if got := a.Format("???"); got != "1234.50" {
		t.Errorf("Format(unknown) = %q, want %q", got, "1234.50")
	}
}
