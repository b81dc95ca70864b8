package nup_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brdoc/nup/pkg/nup"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid standard form", func(t *testing.T) {
		valid := []string{
			"12345.678901/2023-29",
			"12345.678901/1999-48",
			"35041.000387/2000-56",
			"00000.000001/2024-30",
		}
		for _, s := range valid {
			assert.NoError(t, nup.Validate(s), "should be valid: %s", s)
			assert.True(t, nup.IsValid(s))
		}
	})

	t.Run("valid two digit year", func(t *testing.T) {
		assert.NoError(t, nup.Validate("12345.678901/23-08"))
	})

	t.Run("valid no-number form", func(t *testing.T) {
		valid := []string{
			"S/N/2023-04",
			"S/N/23-05",
			"S/N/99-03",
			"S/N/1999-23",
		}
		for _, s := range valid {
			assert.NoError(t, nup.Validate(s), "should be valid: %s", s)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		invalid := []string{
			"",
			"12345678901",
			"12345678901202329",
			"1234.678901/2023-29",
			"12345.67890/2023-29",
			"123456.678901/2023-29",
			"12345.678901/202-29",
			"12345.678901/20231-29",
			"12345.678901/2023-2",
			"12345.678901/2023-293",
			"12345-678901/2023-29",
			"12345.678901.2023-29",
			"abcde.fghijk/2023-29",
			"S/N",
			"S/N-04",
			"S/N/2023-4",
			" 12345.678901/2023-29",
			"12345.678901/2023-29 ",
		}
		for _, s := range invalid {
			err := nup.Validate(s)
			require.Error(t, err, "should be rejected: %q", s)
			assert.ErrorIs(t, err, nup.ErrInvalidFormat, "input: %q", s)
			assert.False(t, nup.IsValid(s))
		}
	})

	t.Run("invalid check digits", func(t *testing.T) {
		invalid := []string{
			"12345.678901/2023-30",
			"12345.678901/2023-00",
			"12345.678901/2023-92",
			"35041.000387/2000-65",
			"S/N/2023-05",
		}
		for _, s := range invalid {
			err := nup.Validate(s)
			require.Error(t, err, "should be rejected: %s", s)
			assert.ErrorIs(t, err, nup.ErrInvalidCheckDigits)
		}
	})

	t.Run("year contributes exactly as written", func(t *testing.T) {
		// 2023 and 23 weight different digit sequences, so the same prefix
		// needs different check digits per year form.
		require.NoError(t, nup.Validate("12345.678901/2023-29"))
		require.NoError(t, nup.Validate("12345.678901/23-08"))
		assert.ErrorIs(t, nup.Validate("12345.678901/23-29"), nup.ErrInvalidCheckDigits)
		assert.ErrorIs(t, nup.Validate("12345.678901/2023-08"), nup.ErrInvalidCheckDigits)
	})

	t.Run("single check digit perturbation flips verdict", func(t *testing.T) {
		const valid = "12345.678901/2023-29"
		require.NoError(t, nup.Validate(valid))

		for pos := len(valid) - 2; pos < len(valid); pos++ {
			for d := byte('0'); d <= '9'; d++ {
				if valid[pos] == d {
					continue
				}
				mutated := valid[:pos] + string(d) + valid[pos+1:]
				err := nup.Validate(mutated)
				require.Error(t, err, "perturbed input should be invalid: %s", mutated)
				assert.ErrorIs(t, err, nup.ErrInvalidCheckDigits)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{"12345.678901/2023-29", "12345.678901/2023-30", "not a nup", ""}
		for _, s := range inputs {
			first := nup.Validate(s)
			second := nup.Validate(s)
			if first == nil {
				assert.NoError(t, second)
			} else {
				require.Error(t, second)
				assert.Equal(t, first.Error(), second.Error())
			}
		}
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("standard fields extracted", func(t *testing.T) {
		p, err := nup.Parse("00123.000456/2023-29")
		require.NoError(t, err)
		assert.Equal(t, nup.FormStandard, p.Form)
		assert.Equal(t, "00123", p.Unit)
		assert.Equal(t, "000456", p.Sequence)
		assert.Equal(t, "2023", p.Year)
		assert.Equal(t, "29", p.CheckDigits)
	})

	t.Run("leading zeros preserved", func(t *testing.T) {
		p, err := nup.Parse("00000.000001/2024-30")
		require.NoError(t, err)
		assert.Equal(t, "00000", p.Unit)
		assert.Equal(t, "000001", p.Sequence)
	})

	t.Run("no-number fields extracted", func(t *testing.T) {
		p, err := nup.Parse("S/N/2023-04")
		require.NoError(t, err)
		assert.Equal(t, nup.FormNoNumber, p.Form)
		assert.Empty(t, p.Unit)
		assert.Empty(t, p.Sequence)
		assert.Equal(t, "2023", p.Year)
		assert.Equal(t, "04", p.CheckDigits)
	})

	t.Run("two digit year accepted", func(t *testing.T) {
		p, err := nup.Parse("12345.678901/99-00")
		require.NoError(t, err)
		assert.Equal(t, "99", p.Year)
	})

	t.Run("check digits not verified by parse", func(t *testing.T) {
		// Parse only matches the shape; 00 is almost certainly wrong here.
		_, err := nup.Parse("12345.678901/2023-00")
		assert.NoError(t, err)
	})

	t.Run("shape mismatch", func(t *testing.T) {
		_, err := nup.Parse("12345.678901/2023")
		assert.ErrorIs(t, err, nup.ErrInvalidFormat)
	})
}

func TestCheckDigits(t *testing.T) {
	t.Parallel()

	t.Run("derived digits validate round trip", func(t *testing.T) {
		prefixes := []struct {
			unit, sequence, year string
		}{
			{"12345", "678901", "2023"},
			{"12345", "678901", "23"},
			{"35041", "000387", "2000"},
			{"00000", "000001", "2024"},
			{"99999", "999999", "1988"},
			{"00001", "000100", "95"},
		}
		for _, p := range prefixes {
			parsed := nup.Parsed{Form: nup.FormStandard, Unit: p.unit, Sequence: p.sequence, Year: p.year}
			dd := nup.CheckDigits(parsed)
			require.Len(t, dd, 2)
			full := fmt.Sprintf("%s.%s/%s-%s", p.unit, p.sequence, p.year, dd)
			assert.NoError(t, nup.Validate(full), "derived digits should validate: %s", full)
		}
	})

	t.Run("no-number sequence is the year alone", func(t *testing.T) {
		bare := nup.CheckDigits(nup.Parsed{Form: nup.FormNoNumber, Year: "2023"})
		// Unit and sequence must not leak into the reduced computation.
		polluted := nup.CheckDigits(nup.Parsed{Form: nup.FormNoNumber, Unit: "12345", Sequence: "678901", Year: "2023"})
		assert.Equal(t, bare, polluted)

		full := fmt.Sprintf("S/N/%s-%s", "2023", bare)
		assert.NoError(t, nup.Validate(full))
	})

	t.Run("supplied digits ignored", func(t *testing.T) {
		p, err := nup.Parse("12345.678901/2023-00")
		require.NoError(t, err)
		assert.Equal(t, "29", nup.CheckDigits(p))
	})

	t.Run("remainder zero and one map to digit zero", func(t *testing.T) {
		// Year 2023 alone sums to 22 under weights 5,4,3,2, remainder 0.
		dd := nup.CheckDigits(nup.Parsed{Form: nup.FormNoNumber, Year: "2023"})
		assert.Equal(t, byte('0'), dd[0])
	})
}

func TestFormString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "standard", nup.FormStandard.String())
	assert.Equal(t, "no-number", nup.FormNoNumber.String())
}
