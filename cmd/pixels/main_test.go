package main

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/onemilpixels/pixels-contract/deploy"
	"github.com/onemilpixels/pixels-contract/rpc/pixels"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	cmd := newRootCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCallData(t *testing.T) {
	acc := util.Uint160{1, 2, 3}
	addr := address.Uint160ToString(acc)

	expected, err := pixels.NewBuy(acc, 42, pixels.Colour{0xff, 0, 0x10}, big.NewInt(20)).Bytes()
	require.NoError(t, err)

	t.Run("hex", func(t *testing.T) {
		out, err := execute(t, "calldata", "buy", addr, "42", "#ff0010", "20")
		require.NoError(t, err)
		require.Equal(t, hex.EncodeToString(expected), strings.TrimSpace(out))
	})

	t.Run("base58", func(t *testing.T) {
		out, err := execute(t, "calldata", "buy", addr, "42", "#ff0010", "20", "--encoding", "base58")
		require.NoError(t, err)
		require.Equal(t, base58.Encode(expected), strings.TrimSpace(out))
	})

	t.Run("update", func(t *testing.T) {
		out, err := execute(t, "calldata", "update", addr, "42", "#ff0010", "10", "-e", "hex")
		require.NoError(t, err)

		b, err := hex.DecodeString(strings.TrimSpace(out))
		require.NoError(t, err)

		d, err := pixels.DecodeCallData(b)
		require.NoError(t, err)
		require.Equal(t, pixels.UpdateSelector, d.Selector)
		require.Equal(t, acc, d.Account)
		require.EqualValues(t, 42, d.PixelID)
		require.Equal(t, int64(10), d.Amount.Int64())
	})

	t.Run("decode", func(t *testing.T) {
		out, err := execute(t, "calldata", "decode", hex.EncodeToString(expected))
		require.NoError(t, err)
		require.Contains(t, out, pixels.BuySelector.String())
		require.Contains(t, out, addr)
		require.Contains(t, out, "#ff0010")
		require.Contains(t, out, "Pixel:    42")
	})

	t.Run("invalid", func(t *testing.T) {
		for _, args := range [][]string{
			{"calldata", "buy", "not an address", "42", "#ff0010", "20"},
			{"calldata", "buy", addr, "1000000", "#ff0010", "20"},
			{"calldata", "buy", addr, "-1", "#ff0010", "20"},
			{"calldata", "buy", addr, "42", "red", "20"},
			{"calldata", "buy", addr, "42", "#ff0010", "0"},
			{"calldata", "buy", addr, "42", "#ff0010", "twenty"},
			{"calldata", "buy", addr, "42", "#ff0010", "20", "-e", "base32"},
			{"calldata", "decode", "zz"},
			{"calldata", "decode", "00"},
			{"calldata", "decode", "00", "-e", "base32"},
		} {
			_, err := execute(t, args...)
			require.Error(t, err, args)
		}
	})
}

func TestEncodeData(t *testing.T) {
	data := []byte{0x17, 0x2e, 0x49, 0x87, 0}

	for _, enc := range []string{encodingHex, encodingBase64, encodingBase58} {
		s, err := encodeData(enc, data)
		require.NoError(t, err, enc)

		b, err := decodeData(enc, s)
		require.NoError(t, err, enc)
		require.Equal(t, data, b, enc)
	}
}

func TestParsePixelID(t *testing.T) {
	id, err := parsePixelID("999999")
	require.NoError(t, err)
	require.EqualValues(t, 999999, id)

	for _, s := range []string{"", "-1", "1000000", "0x10", "4294967296"} {
		_, err = parsePixelID(s)
		require.Error(t, err, s)
	}
}

func TestPixelsContract(t *testing.T) {
	configured := util.Uint160{1}
	recorded := util.Uint160{2}

	var a app

	_, err := a.pixelsContract()
	require.Error(t, err)

	a.cfg.Record = filepath.Join(t.TempDir(), "deployment.json")
	_, err = a.pixelsContract()
	require.Error(t, err)

	require.NoError(t, deploy.WriteRecord(a.cfg.Record, deploy.Record{Pixels: recorded}))

	h, err := a.pixelsContract()
	require.NoError(t, err)
	require.Equal(t, recorded, h)

	a.cfg.Contracts.Pixels = configured

	h, err = a.pixelsContract()
	require.NoError(t, err)
	require.Equal(t, configured, h)
}

func TestWalletRequired(t *testing.T) {
	for _, args := range [][]string{
		{"deploy"},
		{"buy", "1", "#000000", "--contracts.pixels", "NbrUYaZgyhSkNoRo9ugRyEMdUZxrhkNaWB"},
	} {
		_, err := execute(t, args...)
		require.Error(t, err, args)
	}
}
