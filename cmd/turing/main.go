package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/drivers"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/modes"
	"github.com/reusee/turing/rules"
	"github.com/reusee/turing/sources"
	"github.com/reusee/turing/tmconfigs"
	"golang.org/x/term"
)

var (
	programFlag   = cmds.Var[string]("-program", "rules file, URL, or - for stdin")
	inputFlag     = cmds.Var[string]("-input", "initial tape cells, None or _ for blank")
	inputExprFlag = cmds.Var[string]("-input-expr", "starlark expression yielding the initial tape")
	resumeFlag    = cmds.Switch("-resume", "resume from the checkpoint file")
	consoleFlag   = cmds.Switch("-console", "interactive console")
	windowFlag    = cmds.Var[int]("-window", "print cells within this radius of the head")
)

func main() {
	cmds.Execute(os.Args[1:])

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if *programFlag == "" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: -program <rules file | URL | -> is required")
			os.Exit(1)
		}
		*programFlag = "-"
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var err error
	scope.Call(func(
		symbols tmconfigs.Symbols,
		load sources.Load,
		env drivers.Env,
		tap debugs.Tap,
		logger logs.Logger,
	) {
		src, e := load(ctx, *programFlag)
		if e != nil {
			err = e
			return
		}
		logger.InfoContext(ctx, "program loaded",
			"location", *programFlag,
			"symbols", symbols,
		)
		deps := deps{
			Env: env,
			Tap: tap,
		}
		switch symbols {
		case tmconfigs.SymbolsBool:
			err = run(ctx, deps, src, rules.Bools)
		case tmconfigs.SymbolsString:
			err = run(ctx, deps, src, rules.Strings)
		case tmconfigs.SymbolsInt:
			err = run(ctx, deps, src, rules.Ints)
		}
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
