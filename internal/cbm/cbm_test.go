package cbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{Length: "100", Width: "50", Height: "60", Quantity: "2"})
	require.NoError(t, err)
	assert.Equal(t, "0.600", res.Volume)
	assert.Equal(t, "100.00", res.VolumetricWeight)
}

func TestCalculate_Zero(t *testing.T) {
	res, err := Calculate(Input{Length: "0", Width: "0", Height: "0", Quantity: "0"})
	require.NoError(t, err)
	assert.Equal(t, "0.000", res.Volume)
	assert.Equal(t, "0.00", res.VolumetricWeight)
}

func TestCalculate_Fractional(t *testing.T) {
	res, err := Calculate(Input{Length: "33.5", Width: "20", Height: "10", Quantity: "1"})
	require.NoError(t, err)
	assert.Equal(t, "0.007", res.Volume)
	assert.Equal(t, "1.12", res.VolumetricWeight)
}

func TestCalculate_RejectsNonNumeric(t *testing.T) {
	cases := []Input{
		{Length: "abc", Width: "1", Height: "1", Quantity: "1"},
		{Length: "1", Width: "", Height: "1", Quantity: "1"},
		{Length: "1", Width: "1", Height: "1x", Quantity: "1"},
		{Length: "1", Width: "1", Height: "1", Quantity: "many"},
		{Length: "-1", Width: "1", Height: "1", Quantity: "1"},
	}
	for _, c := range cases {
		_, err := Calculate(c)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
