package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/MiniGrep/internal/appmode"
	"github.com/UnendingLoop/MiniGrep/internal/parser"
	"github.com/UnendingLoop/MiniGrep/internal/processor"
)

func main() {
	// инициализировать параметры запуска
	nodeParam, err := parser.InitNodeParam(os.Args[1:])
	if err != nil {
		log.Printf("Failed to launch search-node: %q", err.Error())
		os.Exit(1)
	}

	// готовим слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appmode.RunNode(ctx, stop, nodeParam, processor.Processor{})
}
