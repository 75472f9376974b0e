package tmconfigs

import (
	"fmt"

	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/vars"
)

// Symbols names the symbol type of tapes and rules: bool, string or int.
type Symbols string

const (
	SymbolsBool   Symbols = "bool"
	SymbolsString Symbols = "string"
	SymbolsInt    Symbols = "int"
)

var symbolsFlag = cmds.Var[string]("-symbols", "symbol type: bool, string or int")

func (Module) Symbols(
	loader configs.Loader,
) Symbols {
	symbols := Symbols(vars.FirstNonZero(
		*symbolsFlag,
		configs.First[string](loader, "symbols"),
		string(SymbolsBool),
	))
	switch symbols {
	case SymbolsBool, SymbolsString, SymbolsInt:
		return symbols
	}
	panic(fmt.Errorf("unknown symbols: %s", symbols))
}
