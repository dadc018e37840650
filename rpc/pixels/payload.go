package pixels

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/onemilpixels/pixels-contract/contracts/pixels/pixelconst"
)

// Selector identifies the pixel operation requested by the call data.
type Selector [pixelconst.SelectorSize]byte

// Known selectors.
var (
	BuySelector    = SelectorOf(pixelconst.BuySignature)
	UpdateSelector = SelectorOf(pixelconst.UpdateSignature)
)

// SelectorOf returns the first four bytes of SHA-256 of the method signature.
func SelectorOf(signature string) Selector {
	var s Selector
	h := sha256.Sum256([]byte(signature))
	copy(s[:], h[:])
	return s
}

// String implements fmt.Stringer.
func (s Selector) String() string {
	switch s {
	case BuySelector:
		return "buy"
	case UpdateSelector:
		return "update"
	default:
		return hex.EncodeToString(s[:])
	}
}

// Colour is an RGB pixel value.
type Colour [pixelconst.ColourSize]byte

// ParseColour parses a colour from its 6-digit hex representation, optionally
// prefixed with '#'.
func ParseColour(s string) (Colour, error) {
	var c Colour
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return c, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	if len(b) != len(c) {
		return c, fmt.Errorf("invalid colour %q: want %d bytes, got %d", s, len(c), len(b))
	}
	copy(c[:], b)
	return c, nil
}

// String returns colour in '#rrggbb' form.
func (c Colour) String() string {
	return "#" + hex.EncodeToString(c[:])
}

// CallData is the payload attached to a token transfer to the pixels
// contract.
type CallData struct {
	Selector Selector
	// Account the pixel is bought for or updated on behalf of.
	Account util.Uint160
	PixelID uint32
	Colour  Colour
	// Declared token amount. The contract relies on the transferred amount,
	// this one is informational.
	Amount *big.Int
}

var (
	errAmountRange = errors.New("token amount must be a non-negative 256-bit integer")
	errPixelRange  = fmt.Errorf("pixel id must be less than %d", pixelconst.CanvasSize)
)

// NewBuy returns call data of a pixel purchase.
func NewBuy(account util.Uint160, id uint32, colour Colour, amount *big.Int) CallData {
	return CallData{Selector: BuySelector, Account: account, PixelID: id, Colour: colour, Amount: amount}
}

// NewUpdate returns call data of a pixel colour update.
func NewUpdate(account util.Uint160, id uint32, colour Colour, amount *big.Int) CallData {
	return CallData{Selector: UpdateSelector, Account: account, PixelID: id, Colour: colour, Amount: amount}
}

// Bytes encodes call data into the fixed 62-byte layout. It returns an error
// if some field doesn't fit its slot.
func (d CallData) Bytes() ([]byte, error) {
	if d.PixelID >= pixelconst.CanvasSize {
		return nil, errPixelRange
	}

	amount := d.Amount
	if amount == nil {
		amount = new(big.Int)
	}
	if amount.Sign() < 0 || amount.BitLen() > 8*pixelconst.TokenAmountSize {
		return nil, errAmountRange
	}

	b := make([]byte, pixelconst.CallDataSize)
	copy(b, d.Selector[:])
	copy(b[pixelconst.AccountOffset:], d.Account.BytesBE())
	b[pixelconst.PixelIDOffset] = byte(d.PixelID >> 16)
	b[pixelconst.PixelIDOffset+1] = byte(d.PixelID >> 8)
	b[pixelconst.PixelIDOffset+2] = byte(d.PixelID)
	copy(b[pixelconst.ColourOffset:], d.Colour[:])
	amount.FillBytes(b[pixelconst.TokenAmountOffset:])
	return b, nil
}

// DecodeCallData parses call data. Unknown selectors are not an error, the
// contract rejects them on its own.
func DecodeCallData(b []byte) (CallData, error) {
	var d CallData
	if len(b) != pixelconst.CallDataSize {
		return d, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidCallData, pixelconst.CallDataSize, len(b))
	}

	copy(d.Selector[:], b)

	var err error
	d.Account, err = util.Uint160DecodeBytesBE(b[pixelconst.AccountOffset:pixelconst.PixelIDOffset])
	if err != nil {
		return d, fmt.Errorf("account: %w", err)
	}

	idb := b[pixelconst.PixelIDOffset:pixelconst.ColourOffset]
	d.PixelID = uint32(idb[0])<<16 | uint32(idb[1])<<8 | uint32(idb[2])
	copy(d.Colour[:], b[pixelconst.ColourOffset:])
	d.Amount = new(big.Int).SetBytes(b[pixelconst.TokenAmountOffset:])
	return d, nil
}
