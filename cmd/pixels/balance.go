package main

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/onemilpixels/pixels-contract/rpc/luna"
	"github.com/spf13/cobra"
)

func newBalanceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balance [address]",
		Short: "Print accepted token balance of the account",
		Long: `Print the balance of the accepted token. Pixels contract balance is
printed if no address is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pixelsHash, err := a.pixelsContract()
			if err != nil {
				return err
			}

			acc := pixelsHash
			if len(args) > 0 {
				acc, err = address.StringToUint160(args[0])
				if err != nil {
					return errors.New("invalid address")
				}
			}

			b, err := dial(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			defer b.close()

			token := a.cfg.Contracts.Luna
			if token.Equals(util.Uint160{}) {
				token, err = b.pixelsReader(pixelsHash).AcceptedToken()
				if err != nil {
					return fmt.Errorf("get accepted token: %w", err)
				}
			}

			r := luna.NewReader(invoker.New(b.rpc, nil), token)

			symbol, err := r.Symbol()
			if err != nil {
				return fmt.Errorf("get token symbol: %w", err)
			}

			decimals, err := r.Decimals()
			if err != nil {
				return fmt.Errorf("get token decimals: %w", err)
			}

			balance, err := r.BalanceOf(acc)
			if err != nil {
				return fmt.Errorf("get balance: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", fixedn.ToString(balance, decimals), symbol)
			return nil
		},
	}
}
