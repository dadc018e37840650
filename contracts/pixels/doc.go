/*
Package pixels implements OneMilNftPixels contract: a canvas of a million
pixels which can be bought and recoloured with a single accepted NEP-17 token
(Luna).

Pixels are never bought by a direct call. A buyer transfers Lunas to the
contract, attaching call data to the transfer. The token calls
onNEP17Payment of the contract, which decodes the call data and either buys
the pixel or updates its colour. If anything goes wrong, the contract aborts
execution and the whole transfer fails, so no tokens leave the buyer.

Prices: a pixel nobody owns costs MinPrice, an owned pixel can be bought
from its owner for twice the last paid price without owner's consent, and a
colour update costs UpdatePrice (see pixelconst).

# Contract notifications

PixelBought notification. This notification is produced when a pixel gets a
new owner.

	PixelBought:
	  - name: id
	    type: Integer
	  - name: owner
	    type: Hash160
	  - name: colour
	    type: ByteArray
	  - name: price
	    type: Integer

PixelUpdated notification. This notification is produced when the owner
changes pixel colour.

	PixelUpdated:
	  - name: id
	    type: Integer
	  - name: owner
	    type: Hash160
	  - name: colour
	    type: ByteArray
*/
package pixels

/*
Contract storage model.

# Summary
Key-value storage format:
  - 'token' -> interop.Hash160
    accepted NEP-17 token, set on deploy and never changed
  - 'admin' -> interop.Hash160
    account collected tokens are withdrawn to
  - 'p'<decimal pixel id> -> std.Serialize(Pixel)
    pixel records (here Pixel is a structure defined in current package);
    pixels nobody has bought have no record
*/
