package escrow

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGigID(t *testing.T) {
	t.Parallel()

	t.Run("invalid values should error", func(t *testing.T) {
		t.Parallel()

		invalidValues := []string{"", "-1", "1.5", "abc", "0x10", "18446744073709551616"}
		for _, value := range invalidValues {
			gigID, err := ParseGigID(value)
			assert.ErrorIs(t, err, ErrInvalidGigID, "value %q", value)
			assert.Zero(t, gigID)
		}
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		gigID, err := ParseGigID("7")
		assert.Nil(t, err)
		assert.Equal(t, uint64(7), gigID)

		gigID, err = ParseGigID(" 42 ")
		assert.Nil(t, err)
		assert.Equal(t, uint64(42), gigID)

		gigID, err = ParseGigID("18446744073709551615")
		assert.Nil(t, err)
		assert.Equal(t, ^uint64(0), gigID)
	})
}

func TestParseDeadline(t *testing.T) {
	t.Parallel()

	deadline, err := ParseDeadline("-1700000000")
	assert.ErrorIs(t, err, ErrInvalidDeadline)
	assert.Zero(t, deadline)

	deadline, err = ParseDeadline("1700000000")
	assert.Nil(t, err)
	assert.Equal(t, uint64(1700000000), deadline)
}

func TestDenominateAmount(t *testing.T) {
	t.Parallel()

	t.Run("invalid amounts should error", func(t *testing.T) {
		t.Parallel()

		invalidAmounts := []string{"", " ", "-1", "+1", "ten", "1/2", "0x10", "1e3", "1.5 EGLD", "1,5"}
		for _, amount := range invalidAmounts {
			value, err := DenominateAmount(amount)
			assert.ErrorIs(t, err, ErrInvalidAmount, "amount %q", amount)
			assert.Nil(t, value)
		}
	})
	t.Run("should scale exactly", func(t *testing.T) {
		t.Parallel()

		testCases := map[string]string{
			"0":                            "0",
			"1":                            "1000000000000000000",
			"1.5":                          "1500000000000000000",
			"0.1":                          "100000000000000000",
			"0.3":                          "300000000000000000",
			"2.25":                         "2250000000000000000",
			"0.000000000000000001":         "1",
			"123456789.123456789123456789": "123456789123456789123456789",
		}
		for amount, expected := range testCases {
			value, err := DenominateAmount(amount)
			require.Nil(t, err, "amount %q", amount)
			assert.Equal(t, expected, value.String(), "amount %q", amount)
		}
	})
	t.Run("extra decimals should round half up", func(t *testing.T) {
		t.Parallel()

		value, err := DenominateAmount("0.0000000000000000005")
		require.Nil(t, err)
		assert.Equal(t, big.NewInt(1), value)

		value, err = DenominateAmount("0.0000000000000000004")
		require.Nil(t, err)
		assert.Equal(t, 0, value.Sign())

		value, err = DenominateAmount("1.0000000000000000015")
		require.Nil(t, err)
		assert.Equal(t, "1000000000000000002", value.String())
	})
}
