package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/onemilpixels/pixels-contract/rpc/pixels"
	"github.com/spf13/cobra"
)

const encodingFlag = "encoding"

// Supported call data encodings.
const (
	encodingHex    = "hex"
	encodingBase64 = "base64"
	encodingBase58 = "base58"
)

func newCallDataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calldata",
		Short: "Encode and decode pixels call data",
		Long: `Encode and decode data attached to token transfers to the pixels
contract. Encoded data can be passed to any NEP-17 wallet supporting
transfers with data.`,
	}

	cmd.PersistentFlags().StringP(encodingFlag, "e", encodingHex, "Data encoding: hex, base64 or base58")

	encode := func(sel pixels.Selector) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			enc, _ := cmd.Flags().GetString(encodingFlag)

			d, err := parseCallData(sel, args)
			if err != nil {
				return err
			}

			b, err := d.Bytes()
			if err != nil {
				return err
			}

			s, err := encodeData(enc, b)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "buy <account> <id> <colour> <amount>",
			Short: "Encode pixel purchase",
			Args:  cobra.ExactArgs(4),
			RunE:  encode(pixels.BuySelector),
		},
		&cobra.Command{
			Use:   "update <account> <id> <colour> <amount>",
			Short: "Encode pixel colour update",
			Args:  cobra.ExactArgs(4),
			RunE:  encode(pixels.UpdateSelector),
		},
		&cobra.Command{
			Use:   "decode <data>",
			Short: "Decode call data",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				enc, _ := cmd.Flags().GetString(encodingFlag)

				b, err := decodeData(enc, args[0])
				if err != nil {
					return err
				}

				d, err := pixels.DecodeCallData(b)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Selector: %s\nAccount:  %s\nPixel:    %d\nColour:   %s\nAmount:   %s\n",
					d.Selector, address.Uint160ToString(d.Account), d.PixelID, d.Colour, d.Amount)
				return nil
			},
		},
	)

	return cmd
}

func parseCallData(sel pixels.Selector, args []string) (pixels.CallData, error) {
	var d pixels.CallData

	acc, err := address.StringToUint160(args[0])
	if err != nil {
		return d, fmt.Errorf("invalid account %q", args[0])
	}

	ta, err := parseTradeArgs(args[1:3], args[3])
	if err != nil {
		return d, err
	}

	return pixels.CallData{
		Selector: sel,
		Account:  acc,
		PixelID:  ta.id,
		Colour:   ta.colour,
		Amount:   ta.amount,
	}, nil
}

func encodeData(enc string, b []byte) (string, error) {
	switch enc {
	case encodingHex:
		return hex.EncodeToString(b), nil
	case encodingBase64:
		return base64.StdEncoding.EncodeToString(b), nil
	case encodingBase58:
		return base58.Encode(b), nil
	default:
		return "", fmt.Errorf("unsupported encoding %q", enc)
	}
}

func decodeData(enc string, s string) ([]byte, error) {
	var (
		b   []byte
		err error
	)

	switch enc {
	case encodingHex:
		b, err = hex.DecodeString(s)
	case encodingBase64:
		b, err = base64.StdEncoding.DecodeString(s)
	case encodingBase58:
		b, err = base58.Decode(s)
	default:
		return nil, fmt.Errorf("unsupported encoding %q", enc)
	}

	if err != nil {
		return nil, fmt.Errorf("invalid %s data: %w", enc, err)
	}

	return b, nil
}
