package main

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/onemilpixels/pixels-contract/contracts/pixels/pixelconst"
	"github.com/onemilpixels/pixels-contract/rpc/pixels"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	amountFlag = "amount"
	forFlag    = "for"
)

func newBuyCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <id> <colour>",
		Short: "Buy the pixel paying with accepted tokens",
		Long: `Buy the pixel and paint it with the colour given as #rrggbb.
The current pixel price is paid unless the amount is set explicitly.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.trade(cmd, args, pixels.BuySelector)
		},
	}

	cmd.Flags().String(amountFlag, "", "Payment in fractional units, current price if empty")
	cmd.Flags().String(forFlag, "", "Account to buy the pixel for, sender if empty")

	return cmd
}

func newUpdateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id> <colour>",
		Short: "Repaint the owned pixel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.trade(cmd, args, pixels.UpdateSelector)
		},
	}

	cmd.Flags().String(amountFlag, strconv.Itoa(pixelconst.UpdatePrice), "Payment in fractional units")

	return cmd
}

type tradeArgs struct {
	id     uint32
	colour pixels.Colour
	amount *big.Int
}

func parseTradeArgs(args []string, amount string) (tradeArgs, error) {
	var (
		res tradeArgs
		err error
	)

	res.id, err = parsePixelID(args[0])
	if err != nil {
		return res, err
	}

	res.colour, err = pixels.ParseColour(args[1])
	if err != nil {
		return res, err
	}

	if amount != "" {
		var ok bool
		res.amount, ok = new(big.Int).SetString(amount, 10)
		if !ok || res.amount.Sign() <= 0 {
			return res, fmt.Errorf("invalid amount %q", amount)
		}
	}

	return res, nil
}

func (a *app) trade(cmd *cobra.Command, args []string, sel pixels.Selector) error {
	amountStr, _ := cmd.Flags().GetString(amountFlag)

	ta, err := parseTradeArgs(args, amountStr)
	if err != nil {
		return err
	}

	pixelsHash, err := a.pixelsContract()
	if err != nil {
		return err
	}

	b, err := dialSigner(cmd.Context(), a.cfg)
	if err != nil {
		return err
	}
	defer b.close()

	reader := b.pixelsReader(pixelsHash)

	token := a.cfg.Contracts.Luna
	if token.Equals(util.Uint160{}) {
		token, err = reader.AcceptedToken()
		if err != nil {
			return fmt.Errorf("get accepted token: %w", err)
		}
	}

	if ta.amount == nil {
		ta.amount, err = reader.PriceOf(ta.id)
		if err != nil {
			return fmt.Errorf("get pixel price: %w", err)
		}
	}

	d := pixels.CallData{
		Selector: sel,
		Account:  b.actor.Sender(),
		PixelID:  ta.id,
		Colour:   ta.colour,
		Amount:   ta.amount,
	}

	if cmd.Flags().Lookup(forFlag) != nil {
		forStr, _ := cmd.Flags().GetString(forFlag)
		if forStr != "" {
			d.Account, err = address.StringToUint160(forStr)
			if err != nil {
				return errors.New("invalid beneficiary address")
			}
		}
	}

	a.log.Info("sending pixel transaction",
		zap.Stringer("selector", d.Selector),
		zap.Uint32("id", d.PixelID),
		zap.Stringer("colour", d.Colour),
		zap.Stringer("amount", d.Amount),
	)

	h, vub, err := pixels.NewMarket(b.actor, token, pixelsHash).Send(d)
	err = b.wait(h, vub, err)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Transaction %s accepted\n", h.StringLE())

	return nil
}

func parsePixelID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id >= pixelconst.CanvasSize {
		return 0, fmt.Errorf("invalid pixel id %q", s)
	}
	return uint32(id), nil
}
