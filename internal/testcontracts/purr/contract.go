// Package purr is a token which moves balances without notifying the
// receiver, so it has no way to pay for pixels.
package purr

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
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
	storage.Put(ctx, append([]byte{accPrefix}, args.owner...), args.supply)
}

func BalanceOf(account interop.Hash160) int {
	return balanceOf(storage.GetReadOnlyContext(), account)
}

// Transfer has no data argument and never calls the receiver.
func Transfer(from, to interop.Hash160, amount int) bool {
	ctx := storage.GetContext()
	if amount < 0 || !runtime.CheckWitness(from) {
		return false
	}
	have := balanceOf(ctx, from)
	if have < amount {
		return false
	}
	storage.Put(ctx, append([]byte{accPrefix}, from...), have-amount)
	storage.Put(ctx, append([]byte{accPrefix}, to...), balanceOf(ctx, to)+amount)
	return true
}

func balanceOf(ctx storage.Context, account interop.Hash160) int {
	v := storage.Get(ctx, append([]byte{accPrefix}, account...))
	if v == nil {
		return 0
	}
	return v.(int)
}
