package checksum

// cnpjDigit computes one CNPJ check digit over the first n digits of s.
// Weights cycle downward from start to 2 and wrap back to 9.
func cnpjDigit(s string, n, start int) int {
	weight := start
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(s[i]-'0') * weight
		weight--
		if weight < 2 {
			weight = 9
		}
	}
	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}

// ValidCNPJ validates a Brazilian CNPJ number. Formatting characters are
// stripped and the number is zero-padded to 14 digits before the two check
// digits are verified. Sequences of identical digits are rejected.
func ValidCNPJ(value string) bool {
	cnpj := padLeft(digits(value), 14)
	if len(cnpj) != 14 {
		return false
	}
	if allSame(cnpj) {
		return false
	}

	if cnpjDigit(cnpj, 12, 5) != int(cnpj[12]-'0') {
		return false
	}
	return cnpjDigit(cnpj, 13, 6) == int(cnpj[13]-'0')
}

// FormatCNPJ returns the canonical XX.XXX.XXX/XXXX-XX representation of a
// CNPJ number. The input is not validated; use ValidCNPJ first.
func FormatCNPJ(value string) string {
	cnpj := padLeft(digits(value), 14)
	if len(cnpj) != 14 {
		return value
	}
	return cnpj[0:2] + "." + cnpj[2:5] + "." + cnpj[5:8] + "/" + cnpj[8:12] + "-" + cnpj[12:14]
}
