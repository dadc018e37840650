package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/neo"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// ErrCommitteeOnly is thrown on update attempts not witnessed by committee.
const ErrCommitteeOnly = "only committee can update contract"

// HasUpdateAccess returns true if the current invocation is witnessed by the
// chain committee, i.e. contract can be updated.
func HasUpdateAccess() bool {
	return runtime.CheckWitness(committeeAddress())
}

// committeeAddress returns M = N/2+1 multisignature account of the committee.
func committeeAddress() []byte {
	committee := neo.GetCommittee()

	keys := []interop.PublicKey{}
	for _, key := range committee {
		keys = append(keys, key)
	}

	return contract.CreateMultisigAccount(len(keys)/2+1, keys)
}
