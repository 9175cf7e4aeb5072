// Package checksum implements digit-checksum validation and formatting for
// payment card numbers (Luhn) and Brazilian national identifiers (CPF, CNPJ).
//
// All functions are pure and operate on strings. Validators tolerate common
// formatting (spaces, dots, dashes, slashes) by stripping non-digit characters
// before computing the checksum; formatters return the canonical punctuated
// representation.
package checksum
