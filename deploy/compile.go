package deploy

import (
	"fmt"
	"path/filepath"

	"github.com/nspcc-dev/neo-go/cli/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/compiler"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
)

// ConfigFile is the name of contract configuration file expected next to the
// contract sources.
const ConfigFile = "config.yml"

// Compile compiles Go contract from the given directory. Contract name,
// events, permissions and other manifest data are taken from ConfigFile of
// the same directory.
func Compile(dir string) (CommonDeployPrm, error) {
	var res CommonDeployPrm

	ne, di, err := compiler.CompileWithOptions(dir, nil, nil)
	if err != nil {
		return res, fmt.Errorf("compile %s: %w", dir, err)
	}

	conf, err := smartcontract.ParseContractConfig(filepath.Join(dir, ConfigFile))
	if err != nil {
		return res, fmt.Errorf("parse contract config: %w", err)
	}

	o := &compiler.Options{}
	o.Name = conf.Name
	o.ContractEvents = conf.Events
	o.ContractSupportedStandards = conf.SupportedStandards
	o.Permissions = make([]manifest.Permission, len(conf.Permissions))
	for i := range conf.Permissions {
		o.Permissions[i] = manifest.Permission(conf.Permissions[i])
	}
	o.SafeMethods = conf.SafeMethods
	m, err := compiler.CreateManifest(di, o)
	if err != nil {
		return res, fmt.Errorf("create manifest: %w", err)
	}

	res.NEF = *ne
	res.Manifest = *m
	return res, nil
}
