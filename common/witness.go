package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

// ErrAdminWitnessFailed appears when the method must be called by the
// contract administrator but was not.
var ErrAdminWitnessFailed = "admin witness check failed"

// CheckAdminWitness checks witness of the passed administrator.
// It panics with ErrAdminWitnessFailed message on fail.
func CheckAdminWitness(admin []byte) {
	if !runtime.CheckWitness(admin) {
		panic(ErrAdminWitnessFailed)
	}
}
