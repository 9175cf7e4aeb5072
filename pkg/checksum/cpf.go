package checksum

import "strings"

// digits strips every non-digit character from s.
func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// padLeft zero-pads s on the left to the given width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// allSame reports whether every character of s equals the first one.
func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// cpfDigit computes one CPF check digit over the first n digits of s,
// with weights descending from n+1 down to 2.
func cpfDigit(s string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(s[i]-'0') * (n + 1 - i)
	}
	return ((10 * sum) % 11) % 10
}

// ValidCPF validates a Brazilian CPF number. Formatting characters are
// stripped and the number is zero-padded to 11 digits before the two check
// digits are verified. Sequences of identical digits are rejected even though
// their checksum holds.
func ValidCPF(value string) bool {
	cpf := padLeft(digits(value), 11)
	if len(cpf) != 11 {
		return false
	}
	if allSame(cpf) {
		return false
	}

	if cpfDigit(cpf, 9) != int(cpf[9]-'0') {
		return false
	}
	return cpfDigit(cpf, 10) == int(cpf[10]-'0')
}

// FormatCPF returns the canonical XXX.XXX.XXX-XX representation of a CPF
// number. The input is not validated; use ValidCPF first.
func FormatCPF(value string) string {
	cpf := padLeft(digits(value), 11)
	if len(cpf) != 11 {
		return value
	}
	return cpf[0:3] + "." + cpf[3:6] + "." + cpf[6:9] + "-" + cpf[9:11]
}
