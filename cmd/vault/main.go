package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(fmt.Errorf("init logger: %w", err))
	}

	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(nil, os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Fatal("invalid command line", zap.Error(err))
	}

	s, err := cfg.validate()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	err = run(logger, s)
	if err != nil {
		logger.Fatal("vault inspection failed", zap.Error(err))
	}
}

func run(logger *zap.Logger, s settings) error {
	logger.Info("dialing Neo RPC server...",
		zap.String("endpoint", s.endpoint), zap.Duration("timeout", s.timeout))

	c, err := rpcclient.New(context.Background(), s.endpoint, rpcclient.Options{
		DialTimeout:    s.timeout,
		RequestTimeout: s.timeout,
	})
	if err != nil {
		return fmt.Errorf("RPC client dial: %w", err)
	}

	defer c.Close()

	err = c.Init()
	if err != nil {
		return fmt.Errorf("init RPC client: %w", err)
	}

	r, err := inspect(invoker.New(c, nil), s.contract, s.tokens)
	if err != nil {
		return err
	}

	logger.Info("vault state fetched",
		zap.Stringer("contract", s.contract), zap.Int("tokens", len(r.Tokens)))

	r.print(os.Stdout)

	return nil
}
