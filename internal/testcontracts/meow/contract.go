// Package meow is a well-formed NEP-17 token which is not accepted by the
// pixels contract.
package meow

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const accPrefix = 'a'

func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}
	args := data.(struct {
		owner  interop.Hash160
		supply int
	})
	ctx := storage.GetContext()
	storage.Put(ctx, "supply", args.supply)
	storage.Put(ctx, append([]byte{accPrefix}, args.owner...), args.supply)

	var from interop.Hash160
	runtime.Notify("Transfer", from, args.owner, args.supply)
}

func Symbol() string {
	return "MEOW"
}

func Decimals() int {
	return 0
}

func TotalSupply() int {
	return storage.Get(storage.GetReadOnlyContext(), "supply").(int)
}

func BalanceOf(account interop.Hash160) int {
	return balanceOf(storage.GetReadOnlyContext(), account)
}

func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	if amount < 0 {
		panic("negative amount")
	}
	if !runtime.CheckWitness(from) {
		return false
	}
	have := balanceOf(ctx, from)
	if have < amount {
		return false
	}
	storage.Put(ctx, append([]byte{accPrefix}, from...), have-amount)
	storage.Put(ctx, append([]byte{accPrefix}, to...), balanceOf(ctx, to)+amount)
	runtime.Notify("Transfer", from, to, amount)

	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
	return true
}

func balanceOf(ctx storage.Context, account interop.Hash160) int {
	v := storage.Get(ctx, append([]byte{accPrefix}, account...))
	if v == nil {
		return 0
	}
	return v.(int)
}
