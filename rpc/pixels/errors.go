package pixels

import (
	"errors"
	"strings"

	"github.com/onemilpixels/pixels-contract/contracts/pixels/pixelconst"
)

// Errors the contract faults with.
var (
	ErrWrongToken          = errors.New(pixelconst.ErrWrongToken)
	ErrNoPayment           = errors.New(pixelconst.ErrNoPayment)
	ErrUnknownCall         = errors.New(pixelconst.ErrUnknownCall)
	ErrInsufficientPayment = errors.New(pixelconst.ErrInsufficientPayment)
	ErrNotOwner            = errors.New(pixelconst.ErrNotOwner)
	ErrInvalidCallData     = errors.New(pixelconst.ErrInvalidCallData)
	ErrOutOfBounds         = errors.New(pixelconst.ErrOutOfBounds)
	ErrInvalidAccount      = errors.New(pixelconst.ErrInvalidAccount)
)

var faults = []error{
	ErrWrongToken,
	ErrNoPayment,
	ErrUnknownCall,
	ErrInsufficientPayment,
	ErrNotOwner,
	ErrInvalidCallData,
	ErrOutOfBounds,
	ErrInvalidAccount,
}

// ParseFault maps the fault exception of a FAULTed invocation to one of the
// errors above. It returns nil if the exception is not a pixels contract
// fault.
func ParseFault(exception string) error {
	for _, err := range faults {
		if strings.Contains(exception, err.Error()) {
			return err
		}
	}
	return nil
}
