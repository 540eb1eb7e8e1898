package bigbuf_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bigbuf "github.com/vekexasia/bigint-swissknife-sub000"
)

func TestNewCheckedSigned(t *testing.T) {
	c, err := bigbuf.NewCheckedSigned(big.NewInt(100), 1)
	require.NoError(t, err)
	assert.Zero(t, c.Cmp(big.NewInt(100)))
	assert.Equal(t, 1, c.Width())
	assert.True(t, c.Signed())

	_, err = bigbuf.NewCheckedSigned(big.NewInt(128), 1)
	assert.ErrorIs(t, err, bigbuf.ErrOutOfRange)
}

func TestNewCheckedUnsigned(t *testing.T) {
	c, err := bigbuf.NewCheckedUnsigned(big.NewInt(255), 1)
	require.NoError(t, err)
	assert.False(t, c.Signed())

	_, err = bigbuf.NewCheckedUnsigned(big.NewInt(-1), 1)
	assert.ErrorIs(t, err, bigbuf.ErrOutOfRange)
}

func TestCheckedAdd(t *testing.T) {
	c, err := bigbuf.NewCheckedSigned(big.NewInt(100), 1)
	require.NoError(t, err)

	d, err := c.Add(big.NewInt(27))
	require.NoError(t, err)
	assert.Zero(t, d.Cmp(big.NewInt(127)))

	// The original is untouched: Checked values are immutable.
	assert.Zero(t, c.Cmp(big.NewInt(100)))

	_, err = d.Add(big.NewInt(1))
	assert.ErrorIs(t, err, bigbuf.ErrOutOfRange)
}

func TestCheckedSub(t *testing.T) {
	c, err := bigbuf.NewCheckedUnsigned(big.NewInt(1), 2)
	require.NoError(t, err)

	d, err := c.Sub(big.NewInt(1))
	require.NoError(t, err)
	assert.Zero(t, d.Cmp(big.NewInt(0)))

	_, err = d.Sub(big.NewInt(1))
	assert.ErrorIs(t, err, bigbuf.ErrOutOfRange)
}

func TestCheckedMul(t *testing.T) {
	c, err := bigbuf.NewCheckedSigned(big.NewInt(-64), 1)
	require.NoError(t, err)

	d, err := c.Mul(big.NewInt(2))
	require.NoError(t, err)
	assert.Zero(t, d.Cmp(big.NewInt(-128)))

	_, err = c.Mul(big.NewInt(3))
	assert.ErrorIs(t, err, bigbuf.ErrOutOfRange)
}

func TestCheckedDiv(t *testing.T) {
	c, err := bigbuf.NewCheckedSigned(big.NewInt(-7), 1)
	require.NoError(t, err)

	d, err := c.Div(big.NewInt(2))
	require.NoError(t, err)
	assert.Zero(t, d.Cmp(big.NewInt(-3)), "quotient truncates toward zero")

	_, err = c.Div(big.NewInt(0))
	assert.ErrorIs(t, err, bigbuf.ErrInvalidArgument)

	// min / -1 overflows the signed range.
	m, err := bigbuf.NewCheckedSigned(big.NewInt(-128), 1)
	require.NoError(t, err)
	_, err = m.Div(big.NewInt(-1))
	assert.ErrorIs(t, err, bigbuf.ErrOutOfRange)
}

func TestCheckedMod(t *testing.T) {
	c, err := bigbuf.NewCheckedSigned(big.NewInt(-7), 1)
	require.NoError(t, err)

	d, err := c.Mod(big.NewInt(2))
	require.NoError(t, err)
	assert.Zero(t, d.Cmp(big.NewInt(-1)), "remainder keeps the dividend sign")

	_, err = c.Mod(big.NewInt(0))
	assert.ErrorIs(t, err, bigbuf.ErrInvalidArgument)
}

func TestCheckedNeg(t *testing.T) {
	c, err := bigbuf.NewCheckedSigned(big.NewInt(127), 1)
	require.NoError(t, err)
	d, err := c.Neg()
	require.NoError(t, err)
	assert.Zero(t, d.Cmp(big.NewInt(-127)))

	m, err := bigbuf.NewCheckedSigned(big.NewInt(-128), 1)
	require.NoError(t, err)
	_, err = m.Neg()
	assert.ErrorIs(t, err, bigbuf.ErrOutOfRange)
}

func TestCheckedNilOperand(t *testing.T) {
	c, err := bigbuf.NewCheckedSigned(big.NewInt(1), 1)
	require.NoError(t, err)
	_, err = c.Add(nil)
	assert.ErrorIs(t, err, bigbuf.ErrInvalidInput)
}

func TestCheckedBytes(t *testing.T) {
	c, err := bigbuf.NewCheckedSigned(big.NewInt(-1), 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, c.BytesBE())
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, c.BytesLE())

	u, err := bigbuf.NewCheckedUnsigned(big.NewInt(16909060), 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, u.BytesBE())
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, u.BytesLE())
}

func TestCheckedValueIsACopy(t *testing.T) {
	c, err := bigbuf.NewCheckedUnsigned(big.NewInt(5), 1)
	require.NoError(t, err)
	v := c.Value()
	v.Add(v, big.NewInt(100))
	assert.Zero(t, c.Cmp(big.NewInt(5)))
}
