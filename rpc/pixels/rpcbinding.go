// Package pixels contains RPC wrappers and call data codec for
// OneMilNftPixels contract.
package pixels

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Pixel is a contract-specific pixels.Pixel type used by its methods.
type Pixel struct {
	Owner  util.Uint160
	Colour Colour
	Price  *big.Int
}

// PixelBoughtEvent represents "PixelBought" event emitted by the contract.
type PixelBoughtEvent struct {
	ID     *big.Int
	Owner  util.Uint160
	Colour []byte
	Price  *big.Int
}

// PixelUpdatedEvent represents "PixelUpdated" event emitted by the contract.
type PixelUpdatedEvent struct {
	ID     *big.Int
	Owner  util.Uint160
	Colour []byte
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Hash returns the contract hash.
func (c *ContractReader) Hash() util.Uint160 {
	return c.hash
}

// OwnerOf invokes `ownerOf` method of contract. Pixels nobody has bought yet
// are owned by zero account.
func (c *ContractReader) OwnerOf(id uint32) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "ownerOf", id))
}

// GetPixel invokes `getPixel` method of contract.
func (c *ContractReader) GetPixel(id uint32) (*Pixel, error) {
	return itemToPixel(unwrap.Item(c.invoker.Call(c.hash, "getPixel", id)))
}

// PriceOf invokes `priceOf` method of contract.
func (c *ContractReader) PriceOf(id uint32) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "priceOf", id))
}

// AcceptedToken invokes `acceptedToken` method of contract.
func (c *ContractReader) AcceptedToken() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "acceptedToken"))
}

// Admin invokes `admin` method of contract.
func (c *ContractReader) Admin() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "admin"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Withdraw creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Withdraw(amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdraw", amount)
}

// WithdrawTransaction creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawTransaction(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdraw", amount)
}

// WithdrawUnsigned creates a transaction invoking `withdraw` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawUnsigned(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdraw", nil, amount)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// itemToPixel converts stack item into *Pixel.
func itemToPixel(item stackitem.Item, err error) (*Pixel, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Pixel)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Pixel from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Pixel) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Owner, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	colour, err := arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Colour: %w", err)
	}
	if len(colour) != len(res.Colour) {
		return fmt.Errorf("field Colour: wrong length %d", len(colour))
	}
	copy(res.Colour[:], colour)

	index++
	res.Price, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Price: %w", err)
	}

	return nil
}

// PixelBoughtEventsFromApplicationLog retrieves a set of all emitted events
// with "PixelBought" name from the provided [result.ApplicationLog].
func PixelBoughtEventsFromApplicationLog(log *result.ApplicationLog) ([]*PixelBoughtEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PixelBoughtEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PixelBought" {
				continue
			}
			event := new(PixelBoughtEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PixelBoughtEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PixelBoughtEvent or
// returns an error if it's not possible to do to so.
func (e *PixelBoughtEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Owner, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Colour, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Colour: %w", err)
	}

	index++
	e.Price, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Price: %w", err)
	}

	return nil
}

// PixelUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "PixelUpdated" name from the provided [result.ApplicationLog].
func PixelUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PixelUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PixelUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PixelUpdated" {
				continue
			}
			event := new(PixelUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PixelUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PixelUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *PixelUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Owner, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Colour, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Colour: %w", err)
	}

	return nil
}

func itemToUint160(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	return util.Uint160DecodeBytesBE(b)
}
