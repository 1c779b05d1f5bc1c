package link

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Num parses a human formatted count such as "1,234" or " 42 ".
//
// ok is false only when n is absent (nil or a nil *string). Input that is
// not a number after trimming and dropping commas yields NaN with ok set.
// An empty residue counts as zero. Hex, octal and binary literals with a
// 0x, 0o or 0b prefix are accepted.
func Num(n any) (v float64, ok bool) {
	switch t := n.(type) {
	case nil:
		return 0, false
	case *string:
		if t == nil {
			return 0, false
		}
		n = *t
	}

	s := strings.TrimSpace(fmt.Sprint(n))
	s = strings.ReplaceAll(s, ",", "")

	return parseNumber(s), true
}

func parseNumber(s string) float64 {
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if v, ok := parseRadix(s); ok {
		return v
	}

	// strconv accepts spellings like "inf", "nan" and "1_000" that are not
	// counts; only plain decimal forms get through.
	for _, r := range s {
		if !strings.ContainsRune("0123456789+-.eE", r) {
			return math.NaN()
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}

	return f
}

// parseRadix handles unsigned 0x, 0o and 0b literals. A prefix with no
// valid digits is NaN.
func parseRadix(s string) (float64, bool) {
	if len(s) < 2 || s[0] != '0' {
		return 0, false
	}

	var base int
	switch s[1] {
	case 'x', 'X':
		base = 16
	case 'o', 'O':
		base = 8
	case 'b', 'B':
		base = 2
	default:
		return 0, false
	}

	digits := s[2:]
	if digits == "" || strings.ContainsAny(digits, "+-_") {
		return math.NaN(), true
	}

	i, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN(), true
	}
	f, _ := new(big.Float).SetInt(i).Float64()
	return f, true
}
