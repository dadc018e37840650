package main

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/onemilpixels/pixels-contract/deploy"
	"github.com/onemilpixels/pixels-contract/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is shared by all commands, it is filled before any command runs.
type app struct {
	cfg config.Config
	log *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := new(app)

	root := &cobra.Command{
		Use:           "pixels",
		Short:         "OneMilNftPixels contracts toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v, err := config.NewViper(cmd.Flags())
			if err != nil {
				return err
			}

			a.cfg, err = config.Load(v)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			a.log, err = a.cfg.NewLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newDeployCommand(a),
		newBuyCommand(a),
		newUpdateCommand(a),
		newOwnerCommand(a),
		newPixelCommand(a),
		newBalanceCommand(a),
		newCallDataCommand(),
		newServeCommand(a),
	)

	return root
}

// pixelsContract returns configured pixels contract address falling back to
// the deployment record.
func (a *app) pixelsContract() (util.Uint160, error) {
	if !a.cfg.Contracts.Pixels.Equals(util.Uint160{}) {
		return a.cfg.Contracts.Pixels, nil
	}

	if a.cfg.Record == "" {
		return util.Uint160{}, errors.New("pixels contract is not configured")
	}

	r, err := deploy.ReadRecord(a.cfg.Record)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("pixels contract is not configured: %w", err)
	}

	return r.Pixels, nil
}
