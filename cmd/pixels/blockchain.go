package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/onemilpixels/pixels-contract/internal/config"
	"github.com/onemilpixels/pixels-contract/rpc/pixels"
)

// wrapper over Neo RPC client providing services needed for pixels commands.
type remoteBlockchain struct {
	rpc *rpcclient.Client

	// nil for read-only connections
	actor *actor.Actor
}

// dial connects to the configured Neo RPC server. Connection and all
// requests are done within the configured timeout.
func dial(ctx context.Context, cfg config.Config) (*remoteBlockchain, error) {
	c, err := rpcclient.New(ctx, cfg.RPC.Endpoint, rpcclient.Options{
		DialTimeout:    cfg.RPC.Timeout,
		RequestTimeout: cfg.RPC.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	return &remoteBlockchain{rpc: c}, nil
}

// dialSigner is the same as dial, but also opens the configured wallet
// account to sign transactions with.
func dialSigner(ctx context.Context, cfg config.Config) (*remoteBlockchain, error) {
	acc, err := openAccount(cfg)
	if err != nil {
		return nil, err
	}

	b, err := dial(ctx, cfg)
	if err != nil {
		return nil, err
	}

	b.actor, err = actor.NewSimple(b.rpc, acc)
	if err != nil {
		b.close()
		return nil, fmt.Errorf("init actor: %w", err)
	}

	return b, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

func (x *remoteBlockchain) pixelsReader(h util.Uint160) *pixels.ContractReader {
	return pixels.NewReader(invoker.New(x.rpc, nil), h)
}

// wait waits for the transaction to be accepted and checks it succeeded.
// Faults of the pixels contract are reported as corresponding errors.
func (x *remoteBlockchain) wait(h util.Uint256, vub uint32, err error) error {
	res, err := x.actor.Wait(h, vub, err)
	if err != nil {
		return fmt.Errorf("wait for transaction: %w", err)
	}

	if res.VMState != vmstate.Halt {
		if fault := pixels.ParseFault(res.FaultException); fault != nil {
			return fmt.Errorf("transaction %s failed: %w", h.StringLE(), fault)
		}
		return fmt.Errorf("transaction %s failed: %s", h.StringLE(), res.FaultException)
	}

	if len(res.Stack) == 1 {
		ok, err := res.Stack[0].TryBool()
		if err == nil && !ok {
			return fmt.Errorf("transaction %s: token transfer refused", h.StringLE())
		}
	}

	return nil
}

func openAccount(cfg config.Config) (*wallet.Account, error) {
	if cfg.Wallet.Path == "" {
		return nil, errors.New("wallet is not configured")
	}

	w, err := wallet.NewWalletFromFile(cfg.Wallet.Path)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}

	h := w.GetChangeAddress()
	if cfg.Wallet.Address != "" {
		h, err = address.StringToUint160(cfg.Wallet.Address)
		if err != nil {
			return nil, fmt.Errorf("invalid wallet address: %w", err)
		}
	}

	acc := w.GetAccount(h)
	if acc == nil {
		return nil, fmt.Errorf("account %s not found in the wallet", address.Uint160ToString(h))
	}

	err = acc.Decrypt(cfg.Wallet.Password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account: %w", err)
	}

	return acc, nil
}
