package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/presbrey/demo-tools/cvt-filelist-js/lib"
	"github.com/presbrey/demo-tools/internal/config"
	"github.com/presbrey/demo-tools/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to parse configuration: %v", err)
	}

	logger, err := logging.New(cfg, os.Stderr)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logger.Sync()

	// always the working directory: file_list.txt in, list.js out
	if err := lib.Run(".", os.Stdout, logger); err != nil {
		logger.Fatal("Conversion failed", zap.Error(err))
	}
}
