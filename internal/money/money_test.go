package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatIndianGrouping(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "₹ 0"},
		{"540", "₹ 540"},
		{"1200", "₹ 1,200"},
		{"12340", "₹ 12,340"},
		{"123456", "₹ 1,23,456"},
		{"1234567", "₹ 12,34,567"},
		{"123456789", "₹ 12,34,56,789"},
		{"1450.5", "₹ 1,450.50"},
		{"-3560", "-₹ 3,560"},
	}
	for _, c := range cases {
		got := Format("₹", decimal.RequireFromString(c.in))
		if got != c.want {
			t.Errorf("Format(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatWithoutSymbol(t *testing.T) {
	if got := FormatInt("", 4500); got != "4,500" {
		t.Fatalf("FormatInt = %q", got)
	}
}

func TestPercent(t *testing.T) {
	total := decimal.NewFromInt(11340)
	if got := Percent(decimal.NewFromInt(5400), total); got != 48 {
		t.Fatalf("Percent = %d, want 48", got)
	}
	if got := Percent(decimal.NewFromInt(1), decimal.Zero); got != 0 {
		t.Fatalf("Percent zero total = %d", got)
	}
}
