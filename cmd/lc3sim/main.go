// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"os"
	"os/signal"

	"github.com/hashicorp/go-hclog"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/ezrec/lc3sim/cpu"
	"github.com/ezrec/lc3sim/io"
)

func main() {
	var output string
	var input string
	var trace string
	var instrs []string
	var userOnly bool
	var osImage string
	var data []string
	var verbose bool

	flag.StringVarP(&output, "output", "o", "", "display output file (default: the terminal)")
	flag.StringVarP(&input, "input", "i", "", "keyboard input file (default: the keyboard)")
	flag.StringVarP(&trace, "trace", "t", "", "trace output file (default: no tracing)")
	flag.StringArrayVar(&instrs, "instr", nil, "restrict tracing to a mnemonic (repeatable)")
	flag.BoolVarP(&userOnly, "user-only", "u", false, "only trace user space (addresses >= 0x3000)")
	flag.StringVar(&osImage, "os", "LC3_OS.obj", "operating system image loaded before the program")
	flag.StringArrayVar(&data, "data", nil, "additional image loaded before the program (repeatable)")
	flag.BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	flag.Parse()

	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "lc3sim",
		Level:  level,
		Output: os.Stderr,
	})

	if flag.NArg() != 1 {
		logger.Error("usage: lc3sim [flags] <program.obj>", "args", flag.Args())
		os.Exit(2)
	}
	program := flag.Arg(0)

	var reader cpu.Reader
	var keyboard *io.Keyboard
	if input == "" {
		keyboard = io.NewKeyboard(os.Stdin)
		reader = keyboard
	} else {
		inf, err := os.Open(input)
		if err != nil {
			logger.Error("input", "file", input, "error", err)
			os.Exit(1)
		}
		defer inf.Close()
		reader = io.NewFileReader(inf)
	}

	var writer cpu.Writer
	if output == "" {
		writer = &io.Terminal{Output: os.Stdout}
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			logger.Error("output", "file", output, "error", err)
			os.Exit(1)
		}
		defer ouf.Close()
		writer = &io.FileWriter{Output: ouf}
	}

	var tracer *cpu.Tracer
	if trace != "" {
		mask, err := cpu.ParseMnemonics(instrs)
		if err != nil {
			logger.Error("trace", "error", err)
			os.Exit(2)
		}
		trf, err := os.Create(trace)
		if err != nil {
			logger.Error("trace", "file", trace, "error", err)
			os.Exit(1)
		}
		defer trf.Close()
		tracer = cpu.NewTracer(trf, mask, userOnly)
	}

	sim := cpu.NewCpu(reader, writer, tracer)
	sim.Logger = logger
	sim.Verbose = verbose

	// The operating system first, then data images, then the program;
	// the program's origin becomes the entry point.
	for _, path := range append(append([]string{osImage}, data...), program) {
		image, err := os.ReadFile(path)
		if err != nil {
			logger.Error("load", "file", path, "error", err)
			os.Exit(1)
		}
		err = sim.Load(image)
		if err != nil {
			logger.Error("load", "file", path, "error", err)
			os.Exit(1)
		}
	}

	if keyboard != nil && term.IsTerminal(int(os.Stdin.Fd())) {
		err := keyboard.MakeRaw()
		if err != nil {
			logger.Error("terminal", "error", err)
			os.Exit(1)
		}
		defer keyboard.Restore()
	}

	// An interrupt requests the same graceful halt the machine uses for
	// input exhaustion.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		sim.Halt()
	}()

	err := sim.Run()
	if err != nil {
		logger.Info("halted", "reason", err)
	}
}
