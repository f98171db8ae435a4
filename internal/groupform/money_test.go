package groupform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyMoney(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{500, "500"},
		{1000, "1 000"},
		{10000, "10 000"},
		{500000, "500 000"},
		{1500000, "1 500 000"},
		{123456789, "123 456 789"},
		{-45000, "-45 000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PrettyMoney(tt.n))
	}
}

func TestParseMoneyInput(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{"500000", 500000, true},
		{"1 500 000", 1500000, true},
		{"  250 000 ", 250000, true},
		{"1000 so'm", 1000, true}, // хвостовой мусор отбрасывается
		{"0", 0, true},
		{"", 0, false},
		{"abc", 0, false},
		{"so'm 1000", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseMoneyInput(tt.raw)
		assert.Equal(t, tt.wantOK, ok, "вход %q", tt.raw)
		if ok {
			assert.Equal(t, tt.want, got, "вход %q", tt.raw)
		}
	}
}

// Форматирование и разбор взаимно обратны для любых неотрицательных сумм.
func TestMoneyRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 12, 123, 1234, 999999, 1000000, 98765432} {
		got, ok := ParseMoneyInput(PrettyMoney(n))
		assert.True(t, ok)
		assert.Equal(t, n, got)
	}
}
