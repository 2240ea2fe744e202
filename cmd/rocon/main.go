// seehuhn.de/go/rocon - rounded corners for HTML documents
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


// Command rocon adds rounded corners to the marked regions of an HTML
// file.
//
// Regions are marked by class names like "rc8" or "rc4-8-shape", see
// [corner.ParseClass].  The corner images and style rules are embedded in
// the output document.
//
// Usage:
//
//	rocon [-config file] [-backend name] [-o output.html] input.html
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"seehuhn.de/go/rocon"
	"seehuhn.de/go/rocon/config"
	"seehuhn.de/go/rocon/dom"
)

func main() {
	configFile := flag.String("config", "", "configuration file (TOML)")
	backend := flag.String("backend", "", "override the configured backend")
	output := flag.String("o", "", "output file (default: standard output)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] input.html\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *output, *configFile, *backend); err != nil {
		fmt.Fprintln(os.Stderr, "rocon:", err)
		os.Exit(1)
	}
}

func run(input, output, configFile, backend string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if backend != "" {
		cfg.Backend = backend
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	rocon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	in, err := os.Open(input)
	if err != nil {
		return err
	}
	doc, err := dom.Parse(in)
	in.Close()
	if err != nil {
		return err
	}

	engine, err := cfg.NewEngine(dom.NewSheet(doc))
	if err != nil {
		return err
	}

	stats, err := dom.Process(doc, engine)
	if err != nil {
		// regions with errors are left unchanged
		rocon.Logger().Warn("some regions were skipped", "err", err)
	}
	rocon.Logger().Info("corners added",
		"regions", stats.Regions-stats.Failed,
		"drawn", stats.Drawn,
		"rules", stats.Rules)

	if output == "" {
		return doc.Render(os.Stdout)
	}
	out, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := doc.Render(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
