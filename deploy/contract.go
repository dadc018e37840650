package deploy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"go.uber.org/zap"
)

type contractStateReader interface {
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

type contractDeployer interface {
	Deploy(nefFile *nef.File, manif *manifest.Manifest, data any) (util.Uint256, uint32, error)
}

type transactionWaiter interface {
	Wait(h util.Uint256, vub uint32, err error) (*state.AppExecResult, error)
}

type syncContractPrm struct {
	logger   *zap.Logger
	states   contractStateReader
	deployer contractDeployer
	waiter   transactionWaiter

	// sender of the deploying transaction, contract address depends on it
	sender util.Uint160

	localNEF      nef.File
	localManifest manifest.Manifest
	deployArgs    []any
}

// errContractMismatch is returned when the address of the local contract is
// occupied by a contract with another NEF.
var errContractMismatch = errors.New("on-chain contract differs from the local one")

// syncContract makes the local contract present on the chain. The contract
// is deployed only if there is no contract at its address yet.
func syncContract(ctx context.Context, prm syncContractPrm) (util.Uint160, error) {
	addr := state.CreateContractHash(prm.sender, prm.localNEF.Checksum, prm.localManifest.Name)
	l := prm.logger.With(zap.String("contract", prm.localManifest.Name), zap.Stringer("address", addr))

	if err := ctx.Err(); err != nil {
		return addr, err
	}

	st, err := prm.states.GetContractStateByHash(addr)
	if err == nil && st != nil {
		if st.NEF.Checksum != prm.localNEF.Checksum {
			return addr, fmt.Errorf("%w: NEF checksum %d instead of %d", errContractMismatch, st.NEF.Checksum, prm.localNEF.Checksum)
		}

		l.Info("contract is already deployed, skip")
		return addr, nil
	}

	if err != nil && !isErrContractNotFound(err) {
		return addr, fmt.Errorf("get contract state: %w", err)
	}

	l.Info("contract is missing on the chain, deploying...")

	nefFile, manif := prm.localNEF, prm.localManifest

	res, err := prm.waiter.Wait(prm.deployer.Deploy(&nefFile, &manif, prm.deployArgs))
	if err != nil {
		return addr, fmt.Errorf("deploy contract: %w", err)
	}

	if res.VMState != vmstate.Halt {
		return addr, fmt.Errorf("deploy transaction %s failed: %s", res.Container.StringLE(), res.FaultException)
	}

	l.Info("contract successfully deployed", zap.Stringer("tx", res.Container))

	return addr, nil
}

func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}
