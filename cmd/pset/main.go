// Command pset resolves the layered problem-set configuration and writes the
// generated LaTeX template to stdout, or to the file named by the "output"
// key. All warnings go to stderr before the document is emitted.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"pset/internal/config"
	"pset/internal/document"
	"pset/internal/logging"
)

func main() {
	logger, err := logging.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.NewBuilder().
		WithArgs(os.Args[1:]).
		WithLogger(logger).
		Build()
	if err != nil {
		logger.Fatal("failed to resolve configuration", zap.Error(err))
	}

	doc := document.Generate(cfg)
	path, ok := cfg.String("output")
	cfg.WarnUnused()

	if ok && path != "" {
		if err := atomic.WriteFile(path, strings.NewReader(doc+"\n")); err != nil {
			logger.Fatal("failed to write document", zap.String("path", path), zap.Error(err))
		}
		return
	}
	fmt.Println(doc)
}
