package deploy

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/onemilpixels/pixels-contract/rpc/pixels"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// LunaPrm groups deployment parameters of the Luna token contract.
type LunaPrm struct {
	Common CommonDeployPrm

	// Account receiving the whole supply.
	Owner util.Uint160
	// Amount of tokens minted on deploy.
	Supply *big.Int
}

// PixelsPrm groups deployment parameters of the pixels contract.
type PixelsPrm struct {
	Common CommonDeployPrm

	// Account allowed to withdraw collected tokens.
	Admin util.Uint160
}

// Prm groups all parameters of the deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy contracts to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	LocalAccount *wallet.Account

	// Already deployed token to accept instead of the Luna contract. Luna
	// contract is not deployed if set.
	Token *util.Uint160

	Luna   LunaPrm
	Pixels PixelsPrm
}

// Result describes contracts the deployment ended up with.
type Result struct {
	Luna   util.Uint160
	Pixels util.Uint160
}

// Deploy deploys Luna and pixels contracts to the given blockchain in this
// order. Contracts already deployed by the local account with the same NEF and
// name are reused, so Deploy can be safely repeated.
//
// Deploy aborts by context or on the first error. Deployment progress is
// logged.
func Deploy(ctx context.Context, prm Prm) (Result, error) {
	var res Result

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return res, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	syncPrm := syncContractPrm{
		logger:   prm.Logger,
		states:   prm.Blockchain,
		deployer: management.New(act),
		waiter:   act,
		sender:   act.Sender(),
	}

	if prm.Token != nil {
		res.Luna = *prm.Token
		prm.Logger.Info("using already deployed token", zap.Stringer("address", res.Luna))
	} else {
		supply := prm.Luna.Supply
		if supply == nil {
			supply = new(big.Int)
		}

		syncPrm.localNEF = prm.Luna.Common.NEF
		syncPrm.localManifest = prm.Luna.Common.Manifest
		syncPrm.deployArgs = []any{prm.Luna.Owner, supply}

		prm.Logger.Info("synchronizing Luna contract with the chain...")

		res.Luna, err = syncContract(ctx, syncPrm)
		if err != nil {
			return res, fmt.Errorf("sync Luna contract with the chain: %w", err)
		}

		prm.Logger.Info("Luna contract successfully synchronized", zap.Stringer("address", res.Luna))
	}

	syncPrm.localNEF = prm.Pixels.Common.NEF
	syncPrm.localManifest = prm.Pixels.Common.Manifest
	syncPrm.deployArgs = []any{res.Luna, prm.Pixels.Admin}

	prm.Logger.Info("synchronizing pixels contract with the chain...")

	res.Pixels, err = syncContract(ctx, syncPrm)
	if err != nil {
		return res, fmt.Errorf("sync pixels contract with the chain: %w", err)
	}

	prm.Logger.Info("pixels contract successfully synchronized", zap.Stringer("address", res.Pixels))

	err = verifyAcceptedToken(pixels.NewReader(invoker.New(prm.Blockchain, nil), res.Pixels), res.Luna)
	if err != nil {
		return res, err
	}

	return res, nil
}

// AcceptedTokenReader is a part of pixels contract API reporting the token
// the contract accepts.
type AcceptedTokenReader interface {
	AcceptedToken() (util.Uint160, error)
}

var errTokenMismatch = errors.New("pixels contract accepts another token")

func verifyAcceptedToken(r AcceptedTokenReader, expected util.Uint160) error {
	token, err := r.AcceptedToken()
	if err != nil {
		return fmt.Errorf("read accepted token: %w", err)
	}

	if !token.Equals(expected) {
		return fmt.Errorf("%w: expected %s, got %s", errTokenMismatch, expected.StringLE(), token.StringLE())
	}

	return nil
}
