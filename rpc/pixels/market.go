package pixels

import (
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// MarketActor is used by Market to pay for pixels. Transfers are made from
// the Sender account.
type MarketActor interface {
	nep17.Actor

	Sender() util.Uint160
}

// Market buys and updates pixels by transferring accepted tokens to the
// pixels contract with the call data attached.
type Market struct {
	token  *nep17.Token
	sender util.Uint160
	pixels util.Uint160
}

// NewMarket creates a Market paying with the token at tokenHash to the
// pixels contract at pixelsHash.
func NewMarket(actor MarketActor, tokenHash, pixelsHash util.Uint160) *Market {
	return &Market{
		token:  nep17.New(actor, tokenHash),
		sender: actor.Sender(),
		pixels: pixelsHash,
	}
}

// Buy sends a transaction buying the pixel for the account, amount is the
// payment. The values returned are its hash, ValidUntilBlock value and error
// if any.
func (m *Market) Buy(account util.Uint160, id uint32, colour Colour, amount *big.Int) (util.Uint256, uint32, error) {
	return m.Send(NewBuy(account, id, colour, amount))
}

// Update sends a transaction changing the colour of the pixel owned by the
// account. The values returned are its hash, ValidUntilBlock value and error
// if any.
func (m *Market) Update(account util.Uint160, id uint32, colour Colour, amount *big.Int) (util.Uint256, uint32, error) {
	return m.Send(NewUpdate(account, id, colour, amount))
}

// Send transfers d.Amount tokens to the pixels contract with the encoded call
// data attached. The transaction is signed and immediately sent to the
// network.
func (m *Market) Send(d CallData) (util.Uint256, uint32, error) {
	data, err := d.Bytes()
	if err != nil {
		return util.Uint256{}, 0, fmt.Errorf("encode call data: %w", err)
	}
	return m.token.Transfer(m.sender, m.pixels, payment(d), data)
}

// SendUnsigned is the same as Send, but the transaction is returned to the
// caller not signed.
func (m *Market) SendUnsigned(d CallData) (*transaction.Transaction, error) {
	data, err := d.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encode call data: %w", err)
	}
	return m.token.TransferUnsigned(m.sender, m.pixels, payment(d), data)
}

func payment(d CallData) *big.Int {
	if d.Amount == nil {
		return new(big.Int)
	}
	return d.Amount
}
