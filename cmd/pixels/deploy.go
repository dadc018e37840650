package main

import (
	"errors"
	"fmt"
	"math/big"
	"path/filepath"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/onemilpixels/pixels-contract/deploy"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	contractsDirFlag = "contracts-dir"
	supplyFlag       = "supply"
	ownerFlag        = "owner"
	adminFlag        = "admin"
)

// 1 000 000 000 Lunas with 8 decimals.
const defaultSupply = "100000000000000000"

func newDeployCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy Luna and pixels contracts",
		Long: `Compile Luna and pixels contracts and deploy them to the network.
Already deployed contracts are reused. If the Luna contract is set in
configuration, only the pixels contract is deployed accepting it.
Resulting addresses are saved to the deployment record.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.deploy(cmd)
		},
	}

	fs := cmd.Flags()
	fs.String(contractsDirFlag, "contracts", "Directory with contract sources")
	fs.String(supplyFlag, defaultSupply, "Initial Luna supply in fractional units")
	fs.String(ownerFlag, "", "Account receiving the Luna supply, wallet account if empty")
	fs.String(adminFlag, "", "Pixels contract admin, wallet account if empty")

	return cmd
}

func (a *app) deploy(cmd *cobra.Command) error {
	fs := cmd.Flags()
	dir, _ := fs.GetString(contractsDirFlag)
	supplyStr, _ := fs.GetString(supplyFlag)
	ownerStr, _ := fs.GetString(ownerFlag)
	adminStr, _ := fs.GetString(adminFlag)

	supply, ok := new(big.Int).SetString(supplyStr, 10)
	if !ok || supply.Sign() < 0 {
		return fmt.Errorf("invalid supply %q", supplyStr)
	}

	acc, err := openAccount(a.cfg)
	if err != nil {
		return err
	}

	owner, err := accountOrDefault(ownerStr, acc.ScriptHash())
	if err != nil {
		return fmt.Errorf("owner: %w", err)
	}

	admin, err := accountOrDefault(adminStr, acc.ScriptHash())
	if err != nil {
		return fmt.Errorf("admin: %w", err)
	}

	var prm deploy.Prm

	prm.Logger = a.log
	prm.LocalAccount = acc
	prm.Luna.Owner = owner
	prm.Luna.Supply = supply
	prm.Pixels.Admin = admin

	if !a.cfg.Contracts.Luna.Equals(util.Uint160{}) {
		token := a.cfg.Contracts.Luna
		prm.Token = &token
	} else {
		prm.Luna.Common, err = deploy.Compile(filepath.Join(dir, "luna"))
		if err != nil {
			return fmt.Errorf("compile Luna contract: %w", err)
		}
	}

	prm.Pixels.Common, err = deploy.Compile(filepath.Join(dir, "pixels"))
	if err != nil {
		return fmt.Errorf("compile pixels contract: %w", err)
	}

	b, err := dial(cmd.Context(), a.cfg)
	if err != nil {
		return err
	}
	defer b.close()

	prm.Blockchain = b.rpc

	res, err := deploy.Deploy(cmd.Context(), prm)
	if err != nil {
		return err
	}

	magic, err := b.rpc.GetNetwork()
	if err != nil {
		return fmt.Errorf("get network magic: %w", err)
	}

	if a.cfg.Record != "" {
		err = deploy.WriteRecord(a.cfg.Record, deploy.Record{
			Network:  uint32(magic),
			Deployer: acc.Address,
			Luna:     res.Luna,
			Pixels:   res.Pixels,
		})
		if err != nil {
			return err
		}
		a.log.Info("deployment record saved", zap.String("path", a.cfg.Record))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Luna:   %s\nPixels: %s\n", address.Uint160ToString(res.Luna), address.Uint160ToString(res.Pixels))

	return nil
}

func accountOrDefault(s string, def util.Uint160) (util.Uint160, error) {
	if s == "" {
		return def, nil
	}

	h, err := address.StringToUint160(s)
	if err != nil {
		return h, errors.New("invalid address")
	}

	return h, nil
}
