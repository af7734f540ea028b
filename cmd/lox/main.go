// This file is part of lox - https://github.com/db47h/lox
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/db47h/lox/asm"
	"github.com/db47h/lox/vm"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

// Exit codes not covered by vm.Result.
const (
	exitUsage   = 64
	exitNoInput = 66
	exitConfig  = 78
)

var log = commonlog.GetLogger("lox")

// verbosity is a flag that can be either given a value or repeated to
// increase the log level.
type verbosity int

func (v *verbosity) String() string { return strconv.Itoa(int(*v)) }
func (v *verbosity) Set(s string) error {
	if s == "true" {
		*v++
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*v = verbosity(n)
	return nil
}
func (v *verbosity) Get() interface{} { return int(*v) }
func (v *verbosity) IsBoolFlag() bool { return true }

type lox struct {
	i      *vm.Instance
	out    *bufio.Writer
	stderr io.Writer
	asm    bool
	disasm bool
	debug  bool
}

// exec runs a script or a single REPL line.
func (l *lox) exec(name string, src []byte) error {
	if !l.asm {
		return l.i.InterpretSource(src)
	}
	c, err := asm.Assemble(name, bytes.NewReader(src))
	if err != nil {
		return err
	}
	defer c.Free()
	if l.disasm {
		if err = asm.DisassembleAll(c, name, l.out); err != nil {
			return err
		}
	}
	return l.i.Interpret(c)
}

func (l *lox) report(err error) {
	l.out.Flush()
	if l.debug {
		fmt.Fprintf(l.stderr, "%+v\n", err)
		if data := l.i.Data(); len(data) > 0 {
			fmt.Fprintf(l.stderr, "PC: %d, Stack: %v\n", l.i.PC, data)
		}
		return
	}
	fmt.Fprintf(l.stderr, "%v\n", err)
}

// repl reads and executes lines from r until EOF or an empty line.
func (l *lox) repl(r io.Reader, prompt bool) {
	s := bufio.NewScanner(r)
	for {
		if prompt {
			l.out.WriteString("> ")
		}
		l.out.Flush()
		if !s.Scan() {
			break
		}
		line := bytes.TrimRight(s.Bytes(), "\r")
		if len(line) == 0 {
			break
		}
		if err := l.exec("repl", line); err != nil {
			l.report(err)
		}
	}
	if err := s.Err(); err != nil {
		l.report(err)
	}
	if prompt {
		l.out.WriteString("\n")
	}
	l.out.Flush()
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		fl  config
		v   verbosity
		cfg config
	)
	fs := flag.NewFlagSet("lox", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: lox [flags] [script]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	cfgFile := fs.String("config", "", "load configuration from `filename` (default \""+defaultConfigFile+"\" if present)")
	asmMode := fs.Bool("asm", false, "treat input as bytecode assembly and execute it")
	disasm := fs.Bool("disasm", false, "with -asm, print the disassembled chunk before running it")
	debug := fs.Bool("debug", false, "enable debug diagnostics")
	fs.BoolVar(&fl.Trace, "trace", false, "trace execution")
	fs.BoolVar(&fl.Unchecked, "unchecked", false, "disable runtime stack checks")
	fs.Var(&v, "v", "log verbosity, repeat or give a `level` to increase")
	fs.StringVar(&fl.LogFile, "log", "", "write log to `filename` instead of stderr")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return exitUsage
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}

	name, err := loadConfig(*cfgFile, &cfg)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitConfig
	}
	// explicit flags override the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace":
			cfg.Trace = fl.Trace
		case "unchecked":
			cfg.Unchecked = fl.Unchecked
		case "v":
			cfg.Verbosity = int(v)
		case "log":
			cfg.LogFile = fl.LogFile
		}
	})

	var logPath *string
	if cfg.LogFile != "" {
		logPath = &cfg.LogFile
	}
	commonlog.Configure(cfg.Verbosity, logPath)
	if name != "" {
		log.Infof("loaded config from %s", name)
	}

	l := &lox{
		out:    bufio.NewWriter(stdout),
		stderr: stderr,
		asm:    *asmMode,
		disasm: *disasm,
		debug:  *debug,
	}
	opts := []vm.Option{vm.Output(l.out), vm.Unchecked(cfg.Unchecked)}
	if cfg.Trace {
		opts = append(opts, vm.Trace(l.out))
	}
	if l.i, err = vm.New(opts...); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return vm.ResultRuntimeError.ExitCode()
	}

	if fs.NArg() == 0 {
		prompt := false
		if f, ok := stdin.(*os.File); ok {
			prompt = isTerminal(f)
		}
		log.Debugf("starting REPL, prompt=%t", prompt)
		l.repl(stdin, prompt)
		return 0
	}

	file := fs.Arg(0)
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitNoInput
	}
	log.Debugf("running %s", file)
	err = l.exec(file, src)
	if err != nil {
		l.report(err)
	}
	if ferr := l.out.Flush(); ferr != nil && err == nil {
		fmt.Fprintf(stderr, "%v\n", ferr)
		err = ferr
	}
	return vm.ResultOf(err).ExitCode()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
