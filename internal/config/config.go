// Package config loads pixels tool configuration from flags, environment
// and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// e.g. PIXELS_RPC_ENDPOINT for rpc.endpoint.
const EnvPrefix = "PIXELS"

// Config keys.
const (
	ConfigFileKey     = "config"
	RPCEndpointKey    = "rpc.endpoint"
	RPCTimeoutKey     = "rpc.timeout"
	WalletPathKey     = "wallet.path"
	WalletAddressKey  = "wallet.address"
	WalletPasswordKey = "wallet.password"
	PixelsContractKey = "contracts.pixels"
	LunaContractKey   = "contracts.luna"
	RecordKey         = "record"
	ListenKey         = "listen"
	LogLevelKey       = "log.level"
)

// Config is the resulting configuration.
type Config struct {
	RPC struct {
		Endpoint string
		Timeout  time.Duration
	}

	Wallet struct {
		Path     string
		Address  string
		Password string
	}

	// Contract addresses, zero if not configured.
	Contracts struct {
		Pixels util.Uint160
		Luna   util.Uint160
	}

	// Deployment record file.
	Record string

	// Address of the HTTP API.
	Listen string

	LogLevel zapcore.Level
}

// BindFlags defines all configuration flags in the given set.
func BindFlags(fs *pflag.FlagSet) {
	fs.StringP(ConfigFileKey, "c", "", "Path to YAML config file")
	fs.StringP(RPCEndpointKey, "r", "http://localhost:30333", "Neo RPC node endpoint")
	fs.Duration(RPCTimeoutKey, time.Minute, "Timeout of RPC operations")
	fs.StringP(WalletPathKey, "w", "", "Path to NEP-6 wallet")
	fs.StringP(WalletAddressKey, "a", "", "Wallet account address, default account if empty")
	fs.String(WalletPasswordKey, "", "Wallet account password")
	fs.String(PixelsContractKey, "", "Pixels contract address or script hash")
	fs.String(LunaContractKey, "", "Luna token address or script hash")
	fs.String(RecordKey, "deployment.json", "Deployment record file")
	fs.String(ListenKey, ":8080", "HTTP API listen address")
	fs.String(LogLevelKey, "info", "Logging level")
}

// NewViper returns the viper environment over the given flags, environment
// variables and the config file named by the ConfigFileKey flag.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if path := v.GetString(ConfigFileKey); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return v, nil
}

// Load reads Config from the viper environment.
func Load(v *viper.Viper) (Config, error) {
	var (
		c   Config
		err error
	)

	c.RPC.Endpoint = v.GetString(RPCEndpointKey)
	c.RPC.Timeout = v.GetDuration(RPCTimeoutKey)
	c.Wallet.Path = v.GetString(WalletPathKey)
	c.Wallet.Address = v.GetString(WalletAddressKey)
	c.Wallet.Password = v.GetString(WalletPasswordKey)
	c.Record = v.GetString(RecordKey)
	c.Listen = v.GetString(ListenKey)

	if c.RPC.Timeout <= 0 {
		return c, errors.New("non-positive RPC timeout")
	}

	c.Contracts.Pixels, err = ParseContract(v.GetString(PixelsContractKey))
	if err != nil {
		return c, fmt.Errorf("pixels contract: %w", err)
	}

	c.Contracts.Luna, err = ParseContract(v.GetString(LunaContractKey))
	if err != nil {
		return c, fmt.Errorf("luna contract: %w", err)
	}

	c.LogLevel, err = zapcore.ParseLevel(v.GetString(LogLevelKey))
	if err != nil {
		return c, err
	}

	return c, nil
}

// ParseContract parses contract reference given either as Neo address or as
// LE script hash with an optional 0x prefix. Empty string gives zero hash.
func ParseContract(s string) (util.Uint160, error) {
	if s == "" {
		return util.Uint160{}, nil
	}

	if h, err := address.StringToUint160(s); err == nil {
		return h, nil
	}

	h, err := util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return h, fmt.Errorf("neither address nor script hash: %q", s)
	}

	return h, nil
}

// NewLogger builds production zap logger of the configured level.
func (c Config) NewLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(c.LogLevel)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}
