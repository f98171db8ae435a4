// groop-admin/internal/groupform/money.go
package groupform

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var leadingInt = regexp.MustCompile(`^[+-]?\d+`)

// PrettyMoney форматирует сумму, разбивая цифры пробелами по три разряда
// справа: 1500000 -> "1 500 000". Без валюты и без копеек.
func PrettyMoney(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.Itoa(n)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return sign + b.String()
}

// ParseMoneyInput разбирает денежный ввод пользователя: убирает все пробельные
// символы и берёт целое число с начала строки. Хвостовой мусор ("1000 so'm")
// игнорируется, полностью нечисловой ввод считается пустым.
func ParseMoneyInput(raw string) (int, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	match := leadingInt.FindString(cleaned)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return n, true
}
