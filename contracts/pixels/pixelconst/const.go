/*
Package pixelconst contains constants shared by the OneMilNftPixels contract
and its off-chain clients.
*/
package pixelconst

const (
	// BuySelector is the call data selector of a pixel purchase: the first
	// four bytes of SHA-256("buy(address,uint24,bytes3,uint256)").
	BuySelector = "\x17\x2e\x49\x87"
	// UpdateSelector is the call data selector of a pixel colour update: the
	// first four bytes of SHA-256("update(address,uint24,bytes3,uint256)").
	UpdateSelector = "\xf0\x44\x2e\x4c"

	// BuySignature and UpdateSignature are the method signatures selectors
	// are derived from.
	BuySignature    = "buy(address,uint24,bytes3,uint256)"
	UpdateSignature = "update(address,uint24,bytes3,uint256)"
)

// Call data layout. All integers are big-endian.
const (
	SelectorSize    = 4
	AccountSize     = 20
	PixelIDSize     = 3
	ColourSize      = 3
	TokenAmountSize = 32

	AccountOffset     = SelectorSize
	PixelIDOffset     = AccountOffset + AccountSize
	ColourOffset      = PixelIDOffset + PixelIDSize
	TokenAmountOffset = ColourOffset + ColourSize

	// CallDataSize is the only accepted length of the call data.
	CallDataSize = TokenAmountOffset + TokenAmountSize
)

const (
	// CanvasSize is the number of addressable pixels, ids are [0, CanvasSize).
	CanvasSize = 1_000_000

	// MinPrice is the price of a pixel nobody has bought yet.
	MinPrice = 10
	// ResaleFactor multiplies the last paid price to get the price of an
	// owned pixel.
	ResaleFactor = 2
	// UpdatePrice is the fee for a colour change of an owned pixel.
	UpdatePrice = 10
)

// Fault messages of the contract.
const (
	ErrWrongToken          = "accepts purchases in Lunas only"
	ErrNoPayment           = "Stop fooling me! Are you going to pay?"
	ErrUnknownCall         = "Unknown function call"
	ErrInsufficientPayment = "insufficient payment"
	ErrNotOwner            = "caller is not the pixel owner"
	ErrInvalidCallData     = "invalid call data"
	ErrOutOfBounds         = "pixel id out of bounds"
	ErrInvalidAccount      = "invalid account"
)

// ZeroAccount is the owner of pixels nobody has bought yet.
const ZeroAccount = "\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00"

// DefaultColour is the colour of pixels nobody has bought yet.
const DefaultColour = "\x00\x00\x00"
