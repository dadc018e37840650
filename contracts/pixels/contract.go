package pixels

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/onemilpixels/pixels-contract/common"
	"github.com/onemilpixels/pixels-contract/contracts/pixels/pixelconst"
)

// Pixel is a single addressable unit of the canvas.
type Pixel struct {
	// Current owner, pixelconst.ZeroAccount for unowned pixels.
	Owner interop.Hash160
	// 3-byte RGB value.
	Colour []byte
	// Amount of tokens paid by the current owner.
	Price int
}

const (
	tokenKey    = "token"
	adminKey    = "admin"
	pixelPrefix = "p"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		token interop.Hash160
		admin interop.Hash160
	})

	if len(args.token) != interop.Hash160Len {
		panic("incorrect length of token script hash")
	}

	if len(args.admin) != interop.Hash160Len {
		panic("incorrect length of admin script hash")
	}

	storage.Put(ctx, tokenKey, args.token)
	storage.Put(ctx, adminKey, args.admin)

	runtime.Log("pixels contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(common.ErrCommitteeOnly)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("pixels contract updated")
}

// OnNEP17Payment is a callback for the accepted NEP-17 token. Data must be
// the call data of a pixel purchase or update, see pixelconst for the layout.
// The transferred amount is the payment, the token amount declared in the
// call data is ignored.
//
// Any failure aborts the token transfer, so a rejected purchase never debits
// the buyer.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()

	token := storage.Get(ctx, tokenKey).(interop.Hash160)
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(token) {
		panic(pixelconst.ErrWrongToken)
	}

	if amount <= 0 {
		panic(pixelconst.ErrNoPayment)
	}

	callData := data.([]byte)
	if len(callData) != pixelconst.CallDataSize {
		panic(pixelconst.ErrInvalidCallData)
	}

	selector := callData[:pixelconst.SelectorSize]
	account := interop.Hash160(callData[pixelconst.AccountOffset:pixelconst.PixelIDOffset])
	id := readPixelID(callData)
	colour := callData[pixelconst.ColourOffset:pixelconst.TokenAmountOffset]

	if common.BytesEqual(selector, []byte(pixelconst.BuySelector)) {
		buyPixel(ctx, account, id, colour, amount)
	} else if common.BytesEqual(selector, []byte(pixelconst.UpdateSelector)) {
		updatePixel(ctx, account, from, id, colour, amount)
	} else {
		panic(pixelconst.ErrUnknownCall)
	}
}

// OwnerOf returns the owner of the pixel. Pixels nobody has bought yet belong
// to pixelconst.ZeroAccount.
func OwnerOf(id int) interop.Hash160 {
	checkPixelID(id)

	ctx := storage.GetReadOnlyContext()
	return getPixel(ctx, id).Owner
}

// GetPixel returns the full record of the pixel.
func GetPixel(id int) Pixel {
	checkPixelID(id)

	ctx := storage.GetReadOnlyContext()
	return getPixel(ctx, id)
}

// PriceOf returns the minimal amount of tokens a purchase of the pixel
// requires.
func PriceOf(id int) int {
	checkPixelID(id)

	ctx := storage.GetReadOnlyContext()
	return requiredPrice(getPixel(ctx, id))
}

// AcceptedToken returns the hash of the only token pixels can be paid with.
func AcceptedToken() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, tokenKey).(interop.Hash160)
}

// Admin returns the account collected tokens can be withdrawn to.
func Admin() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, adminKey).(interop.Hash160)
}

// Withdraw transfers collected tokens to the admin account. It can be invoked
// only by the admin.
func Withdraw(amount int) {
	ctx := storage.GetReadOnlyContext()

	admin := storage.Get(ctx, adminKey).(interop.Hash160)
	common.CheckAdminWitness(admin)

	if amount <= 0 {
		panic("non positive amount number")
	}

	token := storage.Get(ctx, tokenKey).(interop.Hash160)
	self := runtime.GetExecutingScriptHash()

	transferred := contract.Call(token, "transfer", contract.All, self, admin, amount, nil).(bool)
	if !transferred {
		panic("can't transfer assets")
	}

	runtime.Log("collected tokens have been withdrawn")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func buyPixel(ctx storage.Context, account interop.Hash160, id int, colour []byte, amount int) {
	checkPixelID(id)

	// zero account owns unassigned pixels only
	if common.BytesEqual(account, []byte(pixelconst.ZeroAccount)) {
		panic(pixelconst.ErrInvalidAccount)
	}

	p := getPixel(ctx, id)
	if amount < requiredPrice(p) {
		panic(pixelconst.ErrInsufficientPayment)
	}

	p.Owner = account
	p.Colour = colour
	p.Price = amount
	common.SetSerialized(ctx, pixelKey(id), p)

	runtime.Notify("PixelBought", id, account, colour, amount)
}

func updatePixel(ctx storage.Context, account, from interop.Hash160, id int, colour []byte, amount int) {
	checkPixelID(id)

	p := getPixel(ctx, id)
	checkPixelOwner(p, account, from)

	if amount < pixelconst.UpdatePrice {
		panic(pixelconst.ErrInsufficientPayment)
	}

	p.Colour = colour
	common.SetSerialized(ctx, pixelKey(id), p)

	runtime.Notify("PixelUpdated", id, p.Owner, colour)
}

// checkPixelOwner panics unless both the account from call data and the
// token sender own the pixel.
func checkPixelOwner(p Pixel, account, from interop.Hash160) {
	if !isOwned(p) || !common.BytesEqual(p.Owner, account) || !common.BytesEqual(p.Owner, from) {
		panic(pixelconst.ErrNotOwner)
	}
}

func checkPixelID(id int) {
	if id < 0 || id >= pixelconst.CanvasSize {
		panic(pixelconst.ErrOutOfBounds)
	}
}

func requiredPrice(p Pixel) int {
	if !isOwned(p) {
		return pixelconst.MinPrice
	}

	return p.Price * pixelconst.ResaleFactor
}

func isOwned(p Pixel) bool {
	return !common.BytesEqual(p.Owner, []byte(pixelconst.ZeroAccount))
}

func readPixelID(callData []byte) int {
	id := 0
	for i := pixelconst.PixelIDOffset; i < pixelconst.ColourOffset; i++ {
		id = id*256 + int(callData[i])
	}

	return id
}

func pixelKey(id int) string {
	return pixelPrefix + std.Itoa(id, 10)
}

func getPixel(ctx storage.Context, id int) Pixel {
	if p := common.GetSerialized(ctx, pixelKey(id)); p != nil {
		return p.(Pixel)
	}

	return Pixel{
		Owner:  interop.Hash160(pixelconst.ZeroAccount),
		Colour: []byte(pixelconst.DefaultColour),
		Price:  0,
	}
}
