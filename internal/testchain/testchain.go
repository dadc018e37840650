// Package testchain deploys repository contracts to a single-node neotest
// chain.
package testchain

import (
	"path"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

// Contract source directories relative to the repository root.
const (
	PixelsDir = "contracts/pixels"
	LunaDir   = "contracts/luna"
	MeowDir   = "internal/testcontracts/meow"
	PurrDir   = "internal/testcontracts/purr"
)

// Root returns the repository root directory.
func Root() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..")
}

// NewExecutor creates an executor over a fresh single-node chain.
func NewExecutor(t testing.TB) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// Compile compiles the contract from the given directory relative to the
// repository root.
func Compile(t testing.TB, e *neotest.Executor, dir string) *neotest.Contract {
	src := filepath.Join(Root(), dir)
	return neotest.CompileFile(t, e.CommitteeHash, src, path.Join(src, "config.yml"))
}

// DeployToken deploys the token from dir and mints supply to owner.
func DeployToken(t testing.TB, e *neotest.Executor, dir string, owner util.Uint160, supply int64) util.Uint160 {
	c := Compile(t, e, dir)
	e.DeployContract(t, c, []any{owner, supply})
	return c.Hash
}

// DeployLuna deploys Luna token minting supply to owner.
func DeployLuna(t testing.TB, e *neotest.Executor, owner util.Uint160, supply int64) util.Uint160 {
	return DeployToken(t, e, LunaDir, owner, supply)
}

// DeployPixels deploys pixels contract accepting the given token.
func DeployPixels(t testing.TB, e *neotest.Executor, token, admin util.Uint160) util.Uint160 {
	c := Compile(t, e, PixelsDir)
	e.DeployContract(t, c, []any{token, admin})
	return c.Hash
}

// BalanceOf returns NEP-17 balance of the account.
func BalanceOf(t testing.TB, token *neotest.ContractInvoker, acc util.Uint160) int64 {
	s, err := token.TestInvoke(t, "balanceOf", acc)
	require.NoError(t, err)
	return s.Pop().BigInt().Int64()
}
