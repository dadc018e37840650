package pixels

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/onemilpixels/pixels-contract/contracts/pixels/pixelconst"
	"github.com/stretchr/testify/require"
)

func TestSelectors(t *testing.T) {
	require.Equal(t, pixelconst.BuySelector, string(BuySelector[:]))
	require.Equal(t, pixelconst.UpdateSelector, string(UpdateSelector[:]))
	require.Equal(t, "172e4987", hex.EncodeToString(BuySelector[:]))
	require.Equal(t, "f0442e4c", hex.EncodeToString(UpdateSelector[:]))

	require.Equal(t, "buy", BuySelector.String())
	require.Equal(t, "update", UpdateSelector.String())
	require.Equal(t, "deadbeef", Selector{0xde, 0xad, 0xbe, 0xef}.String())
}

func TestParseColour(t *testing.T) {
	c, err := ParseColour("#ff8000")
	require.NoError(t, err)
	require.Equal(t, Colour{0xff, 0x80, 0x00}, c)
	require.Equal(t, "#ff8000", c.String())

	c, err = ParseColour("0a0b0c")
	require.NoError(t, err)
	require.Equal(t, Colour{0x0a, 0x0b, 0x0c}, c)

	for _, s := range []string{"", "#", "ff80", "ff800000", "zzzzzz"} {
		_, err = ParseColour(s)
		require.Error(t, err, s)
	}
}

func TestCallDataBytes(t *testing.T) {
	acc := util.Uint160{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}

	b, err := NewBuy(acc, 0x0a0b0c, Colour{0xaa, 0xbb, 0xcc}, big.NewInt(300)).Bytes()
	require.NoError(t, err)
	require.Len(t, b, pixelconst.CallDataSize)

	require.Equal(t, []byte(pixelconst.BuySelector), b[:4])
	require.Equal(t, acc.BytesBE(), b[4:24])
	require.Equal(t, []byte{0x0a, 0x0b, 0x0c}, b[24:27])
	require.Equal(t, []byte{0xaa, 0xbb, 0xcc}, b[27:30])

	amount := make([]byte, 32)
	amount[30], amount[31] = 0x01, 0x2c
	require.Equal(t, amount, b[30:])

	t.Run("nil amount", func(t *testing.T) {
		b, err := NewUpdate(acc, 1, Colour{}, nil).Bytes()
		require.NoError(t, err)
		require.Equal(t, make([]byte, 32), b[30:])
	})
	t.Run("pixel out of range", func(t *testing.T) {
		_, err := NewBuy(acc, pixelconst.CanvasSize, Colour{}, big.NewInt(10)).Bytes()
		require.Error(t, err)
	})
	t.Run("negative amount", func(t *testing.T) {
		_, err := NewBuy(acc, 1, Colour{}, big.NewInt(-1)).Bytes()
		require.ErrorIs(t, err, errAmountRange)
	})
	t.Run("amount overflow", func(t *testing.T) {
		huge := new(big.Int).Lsh(big.NewInt(1), 256)
		_, err := NewBuy(acc, 1, Colour{}, huge).Bytes()
		require.ErrorIs(t, err, errAmountRange)

		_, err = NewBuy(acc, 1, Colour{}, huge.Sub(huge, big.NewInt(1))).Bytes()
		require.NoError(t, err)
	})
}

func TestDecodeCallData(t *testing.T) {
	acc := util.Uint160{0xff, 0xee}
	d := NewUpdate(acc, pixelconst.CanvasSize-1, Colour{1, 2, 3}, big.NewInt(10))

	b, err := d.Bytes()
	require.NoError(t, err)

	actual, err := DecodeCallData(b)
	require.NoError(t, err)
	require.Equal(t, d, actual)

	_, err = DecodeCallData(b[:len(b)-1])
	require.ErrorIs(t, err, ErrInvalidCallData)

	_, err = DecodeCallData(append(b, 0))
	require.ErrorIs(t, err, ErrInvalidCallData)
}
