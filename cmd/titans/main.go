package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	titanscmd "github.com/louisbranch/titans/internal/cmd/titans"
	"github.com/louisbranch/titans/internal/platform/config"
)

func main() {
	cfg, err := titanscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[TITANS] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := titanscmd.Run(ctx, cfg); err != nil {
		config.Exitf("titans: %v", err)
	}
}
