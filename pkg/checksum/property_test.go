package checksum_test

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/fluentcheck/fluentcheck/pkg/checksum"
)

// Exactly one of the ten possible check digits completes any card number
// base to a Luhn-valid number.
func TestLuhn_PropertyUniqueCheckDigit(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("exactly one check digit validates", prop.ForAll(
		func(digits []int) bool {
			base := ""
			for _, d := range digits {
				base += strconv.Itoa(d)
			}

			valid := 0
			for d := 0; d < 10; d++ {
				if checksum.Luhn(base + strconv.Itoa(d)) {
					valid++
				}
			}
			return valid == 1
		},
		gen.SliceOfN(12, gen.IntRange(0, 9)),
	))

	properties.TestingRun(t)
}

// Formatting never changes validity: a valid number stays valid after being
// punctuated, an invalid one stays invalid.
func TestCPF_PropertyFormatPreservesValidity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("format preserves validity", prop.ForAll(
		func(digits []int) bool {
			raw := ""
			for _, d := range digits {
				raw += strconv.Itoa(d)
			}
			return checksum.ValidCPF(raw) == checksum.ValidCPF(checksum.FormatCPF(raw))
		},
		gen.SliceOfN(11, gen.IntRange(0, 9)),
	))

	properties.TestingRun(t)
}

func TestCNPJ_PropertyFormatPreservesValidity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("format preserves validity", prop.ForAll(
		func(digits []int) bool {
			raw := ""
			for _, d := range digits {
				raw += strconv.Itoa(d)
			}
			return checksum.ValidCNPJ(raw) == checksum.ValidCNPJ(checksum.FormatCNPJ(raw))
		},
		gen.SliceOfN(14, gen.IntRange(0, 9)),
	))

	properties.TestingRun(t)
}
