package fluentcheck

import (
	"github.com/fluentcheck/fluentcheck/pkg/checksum"
)

// CardNumber asserts the value is a payment card number with a valid Luhn
// checksum.
func (c *Chain) CardNumber() *Chain {
	s, isStr := c.value.(string)
	return c.Assert(isStr && checksum.Luhn(s), "must be a valid card number", "cardNumber", nil)
}

// CPF asserts the value is a valid Brazilian CPF number.
func (c *Chain) CPF() *Chain {
	s, isStr := c.value.(string)
	return c.Assert(isStr && checksum.ValidCPF(s), "must be a valid CPF", "cpf", nil)
}

// CNPJ asserts the value is a valid Brazilian CNPJ number.
func (c *Chain) CNPJ() *Chain {
	s, isStr := c.value.(string)
	return c.Assert(isStr && checksum.ValidCNPJ(s), "must be a valid CNPJ", "cnpj", nil)
}
