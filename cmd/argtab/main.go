package main

import (
	"fmt"
	"io"
	"os"

	"argtab/internal/argtable"
	"argtab/internal/config"
	"argtab/internal/logger"
	"argtab/internal/options"
	"argtab/internal/render"
)

var log = logger.Named("cli")

func main() {
	logger.Configure()
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run is the whole command: parse argv, layer config under it and either
// answer -get lookups or dump the table. It returns the exit code.
func run(argv []string, stdout, stderr io.Writer) int {
	tbl := argtable.Parse(argv)

	if closer := setupLogging(tbl, stderr); closer != nil {
		defer closer.Close()
	}
	log.WithField("flags", tbl.Len()).Debug("parsed command line")
	warnUnknown(tbl)
	warnRepeated(tbl)

	tbl, err := layerConfig(tbl)
	if err != nil {
		log.Errorf("load config: %v", err)
		fmt.Fprintf(stderr, "argtab: %v\n", err)
		return 1
	}
	for _, spec := range options.Specs {
		if spec.Default == "" {
			continue
		}
		var applied bool
		if tbl, applied = tbl.WithDefault(spec.Name, spec.Default); applied {
			log.WithField("flag", spec.Name).Debugf("applied default %q", spec.Default)
		}
	}

	if path := tbl.String("-saveconf", ""); path != "" {
		if err := config.Save(path, tbl, options.Persistent); err != nil {
			log.Errorf("save config: %v", err)
			fmt.Fprintf(stderr, "argtab: save config: %v\n", err)
			return 1
		}
		log.WithField("path", path).Info("saved config")
	}

	if queries := tbl.All("-get"); len(queries) > 0 {
		if err := lookupAll(stdout, tbl, queries); err != nil {
			fmt.Fprintf(stderr, "argtab: %v\n", err)
			return 1
		}
		return 0
	}
	if err := render.Table(stdout, tbl.Entries(), render.Options{Color: tbl.Flag("-color")}); err != nil {
		fmt.Fprintf(stderr, "argtab: %v\n", err)
		return 1
	}
	return 0
}

func setupLogging(tbl *argtable.Table, stderr io.Writer) io.Closer {
	logger.SetDebug(tbl.Flag("-debug"))
	if tbl.Flag("-printtoconsole") {
		logger.SetOutput(stderr)
		return nil
	}
	closer, _, err := logger.SetupFile(logger.DefaultLogPath)
	if err != nil {
		logger.SetOutput(stderr)
		log.Warnf("failed to initialize log file: %v", err)
		return nil
	}
	return closer
}

// layerConfig merges -c overrides and the config file under the command
// line. An explicit -conf wins over -noconf.
func layerConfig(tbl *argtable.Table) (*argtable.Table, error) {
	var f config.File
	if !tbl.IsSet("-conf") && tbl.Flag("-noconf") {
		log.Debug("config file disabled")
	} else {
		loaded, err := config.Load(tbl.String("-conf", ""))
		if err != nil {
			return tbl, err
		}
		f = loaded
		log.WithField("path", f.Source).WithField("settings", len(f.Settings)).Debug("loaded config")
	}
	f = config.ApplyKVOverrides(f, tbl.All("-c"))
	return tbl.Merge(f.Settings), nil
}

func warnUnknown(tbl *argtable.Table) {
	for _, name := range tbl.Keys() {
		if options.IsKnown(name) {
			continue
		}
		entry := log.WithField("flag", name)
		if hints := options.Suggest(name, 2); len(hints) > 0 {
			entry = entry.WithField("did_you_mean", hints)
		}
		entry.Warn("flag is not an argtab option")
	}
}

func warnRepeated(tbl *argtable.Table) {
	for _, spec := range options.Specs {
		if spec.Repeatable {
			continue
		}
		if n := len(tbl.All(spec.Name)); n > 1 {
			log.WithField("flag", spec.Name).WithField("count", n).Warn("option given more than once, using the last value")
		}
	}
}
