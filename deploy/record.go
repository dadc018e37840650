package deploy

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Record is a deployment record stored after successful Deploy so that
// clients can find the contracts later. Record is JSON-encoded on disk:
//
//	{
//	  "network": 860833102,
//	  "deployer": "NbrUYaZgyhSkNoRo9ugRyEMdUZxrhkNaWB",
//	  "luna": "0x...",
//	  "pixels": "0x..."
//	}
type Record struct {
	Network  uint32       `json:"network"`
	Deployer string       `json:"deployer"`
	Luna     util.Uint160 `json:"luna"`
	Pixels   util.Uint160 `json:"pixels"`
}

// WriteRecord writes the record into the file at path. Existing file is
// overwritten.
func WriteRecord(path string, r Record) error {
	b, err := json.MarshalIndent(r, "", " ")
	if err != nil {
		return fmt.Errorf("encode deployment record: %w", err)
	}

	err = os.WriteFile(path, append(b, '\n'), 0o644)
	if err != nil {
		return fmt.Errorf("write deployment record: %w", err)
	}

	return nil
}

// ReadRecord reads the record written by WriteRecord.
func ReadRecord(path string) (Record, error) {
	var r Record

	b, err := os.ReadFile(path)
	if err != nil {
		return r, fmt.Errorf("read deployment record: %w", err)
	}

	err = json.Unmarshal(b, &r)
	if err != nil {
		return r, fmt.Errorf("decode deployment record: %w", err)
	}

	if r.Pixels.Equals(util.Uint160{}) {
		return r, errors.New("deployment record has no pixels contract address")
	}

	return r, nil
}
