package main

import (
	"fmt"
	"os"

	"sync_assets/cli"
	"sync_assets/mapping"
	"sync_assets/syncer"
	"sync_assets/util/logger"
	"sync_assets/util/tw"

	goFlags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

func main() {
	// Init logger
	log := logger.New(logrus.InfoLevel)

	// Parse command line arguments
	log.Debug("Parsing command line arguments")
	flags, err := cli.Parse()
	if flags.Version {
		fmt.Println("v1.0.0")
		os.Exit(0)
	}
	if cli.IsErrOfType(err, goFlags.ErrHelp) {
		// Help message will be printed by go-flags
		os.Exit(0)
	}
	if err != nil {
		log.Panic(err)
	}
	log.SetLevel(flags.LogLevel)

	// Resolve reference and target directories
	roots, err := syncer.ExecutableRoots()
	if err != nil {
		log.Panic(err)
	}
	roots, err = roots.Override(flags.ReferenceDir, flags.TargetDir)
	if err != nil {
		log.Panic(err)
	}

	// Read asset mapping
	log.Debug("Reading asset mapping")
	table, err := mapping.Default()
	if err != nil {
		log.Panic(err)
	}

	// Copy assets
	tw := tw.New()
	syncRepo := syncer.NewRepo(log, tw, roots)
	if _, err := syncRepo.Sync(table.Entries()); err != nil {
		log.Panic(err)
	}
	if flags.Table {
		tw.Render()
	}
}
