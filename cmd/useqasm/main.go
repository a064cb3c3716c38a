/*
 * useqasm - Main process.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	getopt "github.com/pborman/getopt/v2"

	"github.com/tomstdenis/useqasm/internal/assembler"
	"github.com/tomstdenis/useqasm/internal/hexfile"
	"github.com/tomstdenis/useqasm/internal/report"
	"github.com/tomstdenis/useqasm/internal/variant"
	"github.com/tomstdenis/useqasm/util/logger"
)

var Logger *slog.Logger

func main() {
	optVariant := getopt.StringLong("variant", 'v', "256", "ROM variant: 256 or 4096")
	optConfig := getopt.StringLong("config", 'c', "", "Variant override file")
	optOutput := getopt.StringLong("output", 'o', "", "Output hex file (default <input>.hex)")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optQuiet := getopt.BoolLong("quiet", 'q', "Suppress the usage listing")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file io.Writer
	if *optLogFile != "" {
		f, err := os.Create(*optLogFile)
		if err != nil {
			os.Stderr.WriteString("useqasm: " + err.Error() + "\n")
			os.Exit(1)
		}
		file = f
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelInfo)
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, new(bool)))
	slog.SetDefault(Logger)

	args := getopt.Args()
	if len(args) != 1 {
		getopt.Usage()
		os.Exit(0)
	}
	inputPath := args[0]

	v, err := variant.Builtin(variant.Name(*optVariant))
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}
	if *optConfig != "" {
		v, err = variant.LoadOverride(*optConfig, v)
		if err != nil {
			Logger.Error("loading config override", "error", err.Error())
			os.Exit(1)
		}
	}

	source, err := os.ReadFile(inputPath)
	if err != nil {
		Logger.Error("reading source", "path", inputPath, "error", err.Error())
		os.Exit(1)
	}
	lines := strings.Split(string(source), "\n")

	a := assembler.New(v)
	if err := a.Assemble(lines); err != nil {
		Logger.Error("assembly failed", "error", err.Error())
		os.Exit(1)
	}
	for _, w := range a.Warnings {
		Logger.Warn(w.Msg, "line", w.Line)
	}
	if err := hexfile.Resolve(a); err != nil {
		Logger.Error("resolving labels", "error", err.Error())
		os.Exit(1)
	}

	outputPath := *optOutput
	if outputPath == "" {
		outputPath = inputPath + ".hex"
	}
	if err := os.WriteFile(outputPath, []byte(hexfile.Write(a.Image)), 0o644); err != nil {
		Logger.Error("writing hex file", "path", outputPath, "error", err.Error())
		os.Exit(1)
	}

	Logger.Info("assembly complete", "input", inputPath, "output", outputPath, "variant", v.Name)
	if !*optQuiet {
		os.Stdout.WriteString(report.Listing(a))
		os.Stdout.WriteString(report.Symbols(a))
		os.Stdout.WriteString(report.Usage(a))
	}
}
