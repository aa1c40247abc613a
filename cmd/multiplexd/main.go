// Command multiplexd runs a single-node replicated state-machine
// multiplexer: it hosts the counter, map, and lock primitives behind one
// dispatcher and serves them over gRPC.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jrife/statemux/config"
	"github.com/jrife/statemux/primitives/atomicmap"
	"github.com/jrife/statemux/primitives/counter"
	"github.com/jrife/statemux/primitives/lock"
	"github.com/jrife/statemux/statemachine/manager"
	"github.com/jrife/statemux/statemachine/registry"
	"github.com/jrife/statemux/transport"
	transportgrpc "github.com/jrife/statemux/transport/grpc"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg := config.Default()

	if *configPath != "" {
		loaded, err := config.Load(*configPath)

		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		cfg = loaded
	}

	logger, err := newLogger(cfg.LogLevel)

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	defer logger.Sync()

	reg := registry.New()

	if err := registerPrimitives(reg, cfg.Primitives); err != nil {
		logger.Fatal("could not register primitives", zap.Error(err))
	}

	sm := manager.New(reg, logger.Named("manager"))
	server := transport.NewServer(sm)
	frontend := transportgrpc.NewFrontend(server, logger.Named("grpc"))

	listener, err := net.Listen("tcp", cfg.ListenAddress)

	if err != nil {
		logger.Fatal("could not listen", zap.String("address", cfg.ListenAddress), zap.Error(err))
	}

	logger.Info("listening", zap.String("address", cfg.ListenAddress), zap.Strings("primitives", cfg.Primitives))

	if err := frontend.Listen(listener); err != nil {
		logger.Fatal("frontend stopped", zap.Error(err))
	}
}

func registerPrimitives(reg *registry.Registry, typeNames []string) error {
	for _, typeName := range typeNames {
		switch typeName {
		case "counter":
			reg.Register("counter", counter.New)
		case "map":
			reg.Register("map", atomicmap.New)
		case "lock":
			reg.Register("lock", lock.New)
		default:
			return fmt.Errorf("unknown primitive type %q", typeName)
		}
	}

	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level

	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	return cfg.Build()
}
