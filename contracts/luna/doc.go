/*
Package luna implements Luna token contract, the only currency
OneMilNftPixels contract accepts.

Luna is a plain NEP-17 token. The whole supply is minted to the owner
account on deploy, there is no way to mint or burn tokens afterwards.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package luna

/*
Contract storage model.

# Summary
Key-value storage format:
  - 'supply' -> int
    total amount of Lunas
  - a<interop.Hash160> -> int
    balance sheet of all Luna holders
*/
