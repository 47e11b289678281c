package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// config is the inspector configuration. Environment variables are read
// first, command line flags override them.
type config struct {
	RPCEndpoint string        `env:"VAULT_RPC_ENDPOINT"`
	Contract    string        `env:"VAULT_CONTRACT"`
	Tokens      []string      `env:"VAULT_TOKENS"       envSeparator:","`
	Timeout     time.Duration `env:"VAULT_TIMEOUT"      envDefault:"15s"`
}

// settings is the validated form of config.
type settings struct {
	endpoint string
	contract util.Uint160
	tokens   []util.Uint160
	timeout  time.Duration
}

// loadConfig parses environ (nil means the process environment) and then
// command line arguments.
func loadConfig(environ map[string]string, args []string, output io.Writer) (config, error) {
	var cfg config

	opts := env.Options{Environment: environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("vault", flag.ContinueOnError)
	fs.SetOutput(output)

	endpoint := fs.String("rpc", cfg.RPCEndpoint, "Network address of the Neo RPC server")
	contract := fs.String("contract", cfg.Contract, "Vault contract address or script hash")
	tokens := fs.String("tokens", strings.Join(cfg.Tokens, ","), "Comma-separated NEP-17 token addresses or script hashes")
	timeout := fs.Duration("timeout", cfg.Timeout, "Dial and request timeout")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.RPCEndpoint = *endpoint
	cfg.Contract = *contract
	cfg.Tokens = splitList(*tokens)
	cfg.Timeout = *timeout

	return cfg, nil
}

// validate checks cfg and decodes all the hashes in it.
func (cfg config) validate() (settings, error) {
	var (
		s   settings
		err error
	)

	switch {
	case cfg.RPCEndpoint == "":
		return s, errors.New("missing Neo RPC endpoint")
	case cfg.Contract == "":
		return s, errors.New("missing vault contract")
	case cfg.Timeout <= 0:
		return s, fmt.Errorf("invalid timeout %s", cfg.Timeout)
	}

	s.endpoint = cfg.RPCEndpoint
	s.timeout = cfg.Timeout

	s.contract, err = parseHash(cfg.Contract)
	if err != nil {
		return s, fmt.Errorf("vault contract: %w", err)
	}

	s.tokens = make([]util.Uint160, 0, len(cfg.Tokens))
	for _, t := range cfg.Tokens {
		h, err := parseHash(t)
		if err != nil {
			return s, fmt.Errorf("token '%s': %w", t, err)
		}

		s.tokens = append(s.tokens, h)
	}

	return s, nil
}

// parseHash accepts both Neo address and little-endian hex script hash with
// optional 0x prefix.
func parseHash(s string) (util.Uint160, error) {
	if h, err := address.StringToUint160(s); err == nil {
		return h, nil
	}

	h, err := util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return h, fmt.Errorf("neither address nor script hash: %s", s)
	}

	return h, nil
}

func splitList(s string) []string {
	var res []string

	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			res = append(res, v)
		}
	}

	return res
}
