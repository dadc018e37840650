package main

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/onemilpixels/pixels-contract/rpc/pixels"
	"github.com/spf13/cobra"
)

func newOwnerCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "owner <id>",
		Short: "Print the pixel owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(cmd, args[0], func(r *pixels.ContractReader, id uint32) error {
				owner, err := r.OwnerOf(id)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), address.Uint160ToString(owner))
				return nil
			})
		},
	}
}

func newPixelCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pixel <id>",
		Short: "Print the pixel state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(cmd, args[0], func(r *pixels.ContractReader, id uint32) error {
				p, err := r.GetPixel(id)
				if err != nil {
					return err
				}

				next, err := r.PriceOf(id)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Owner:  %s\nColour: %s\nPrice:  %s\nNext:   %s\n",
					address.Uint160ToString(p.Owner), p.Colour, p.Price, next)
				return nil
			})
		},
	}
}

func (a *app) query(cmd *cobra.Command, idArg string, f func(*pixels.ContractReader, uint32) error) error {
	id, err := parsePixelID(idArg)
	if err != nil {
		return err
	}

	h, err := a.pixelsContract()
	if err != nil {
		return err
	}

	b, err := dial(cmd.Context(), a.cfg)
	if err != nil {
		return err
	}
	defer b.close()

	err = f(b.pixelsReader(h), id)
	if err != nil {
		return fmt.Errorf("pixel %d: %w", id, err)
	}

	return nil
}
