package luna

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/onemilpixels/pixels-contract/common"
)

// Token holds all token info.
type Token struct {
	// Ticker symbol
	Symbol string
	// Amount of decimals
	Decimals int
	// Storage key for circulation value
	CirculationKey string
}

const (
	symbol      = "LUNA"
	decimals    = 8
	circulation = "supply"
	accPrefix   = 'a'
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         symbol,
		Decimals:       decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		owner  interop.Hash160
		supply int
	})

	if len(args.owner) != interop.Hash160Len {
		panic("incorrect length of owner script hash")
	}

	if args.supply < 0 {
		panic("negative initial supply")
	}

	var from interop.Hash160
	if !token.transfer(ctx, from, args.owner, args.supply, true, nil) {
		panic("can't mint initial supply")
	}

	storage.Put(ctx, token.CirculationKey, args.supply)

	runtime.Log("luna contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(common.ErrCommitteeOnly)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("luna contract updated")
}

// Symbol is a NEP-17 standard method that returns LUNA token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of Luna
// balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns total amount of Lunas
// minted on deploy.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns Luna balance of the
// specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers Lunas from one account
// to another. It can be invoked only by the account owner.
//
// If the receiver is a contract, its onNEP17Payment method is called with
// data. A failure of the callback fails the whole transfer.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	return token.transfer(ctx, from, to, amount, false, data)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, t.CirculationKey)
	if supply != nil {
		return supply.(int)
	}

	return 0
}

// balanceOf gets the token balance of a specific address.
func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	balance := storage.Get(ctx, append([]byte{accPrefix}, holder...))
	if balance != nil {
		return balance.(int)
	}

	return 0
}

func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int, minting bool, data any) bool {
	if amount < 0 {
		panic("negative amount")
	}

	if len(to) != interop.Hash160Len {
		panic("invalid receiver")
	}

	amountFrom, ok := t.canTransfer(ctx, from, amount, minting)
	if !ok {
		return false
	}

	if len(from) == interop.Hash160Len {
		var fromKey = append([]byte{accPrefix}, from...)

		if amountFrom == amount {
			storage.Delete(ctx, fromKey)
		} else {
			storage.Put(ctx, fromKey, amountFrom-amount)
		}
	}

	var toKey = append([]byte{accPrefix}, to...)
	storage.Put(ctx, toKey, t.balanceOf(ctx, to)+amount)

	runtime.Notify("Transfer", from, to, amount)

	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}

	return true
}

// canTransfer returns the amount it can transfer.
func (t Token) canTransfer(ctx storage.Context, from interop.Hash160, amount int, minting bool) (int, bool) {
	if minting {
		return 0, true
	}

	if !isUsableAddress(from) {
		runtime.Log("bad script hashes")
		return 0, false
	}

	amountFrom := t.balanceOf(ctx, from)
	if amountFrom < amount {
		runtime.Log("not enough assets")
		return 0, false
	}

	// return amountFrom value back to transfer, reduces extra Get
	return amountFrom, true
}

// isUsableAddress checks if the sender is either a correct NEO address or SC address.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if callingScriptHash.Equals(addr) {
			return true
		}
	}

	return false
}
