package common

import "github.com/nspcc-dev/neo-go/pkg/interop/native/std"

// Contract versions are encoded as major*1_000_000 + minor*1_000 + patch.
const (
	major = 0
	minor = 2
	patch = 0

	// Oldest version the contracts can be updated from.
	prevMajor = 0
	prevMinor = 1
	prevPatch = 0

	Version     = major*1_000_000 + minor*1_000 + patch
	PrevVersion = prevMajor*1_000_000 + prevMinor*1_000 + prevPatch

	// ErrVersionMismatch is thrown by CheckVersion on updates from too old
	// contract versions.
	ErrVersionMismatch = "previous version mismatch"

	// ErrAlreadyUpdated is thrown by CheckVersion if the contract is updated
	// to the version it already has.
	ErrAlreadyUpdated = "contract is already of the latest version"
)

// CheckVersion is called on contract update with the version of the code
// being replaced.
func CheckVersion(from int) {
	if from < PrevVersion {
		panic(ErrVersionMismatch + ": expected >=" + std.Itoa(PrevVersion, 10))
	}
	if from == Version {
		panic(ErrAlreadyUpdated + ": " + std.Itoa(Version, 10))
	}
}

// AppendVersion appends current contract version to the update data, so
// the new code can check it with CheckVersion.
func AppendVersion(data any) []any {
	if data == nil {
		return []any{Version}
	}
	return append(data.([]any), Version)
}
