package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/cajaferia/caja/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completer describes the CLI for shell completion. Complete() only acts
// when invoked by the shell completion hook, it is a no-op otherwise.
var completer = &complete.Command{
	Flags: map[string]complete.Predictor{
		"store":    predict.Files("*.json"),
		"currency": predict.Something,
	},
	Sub: map[string]*complete.Command{
		"product-add": {Flags: map[string]complete.Predictor{
			"name":  predict.Something,
			"cost":  predict.Something,
			"price": predict.Something,
			"stock": predict.Something,
		}},
		"product-update": {Flags: map[string]complete.Predictor{
			"id":    predict.Something,
			"name":  predict.Something,
			"cost":  predict.Something,
			"price": predict.Something,
			"stock": predict.Something,
		}},
		"product-rm": {Flags: map[string]complete.Predictor{
			"id": predict.Something,
		}},
		"products": {},
		"sell": {Flags: map[string]complete.Predictor{
			"pay": predict.Set{"cash", "transfer"},
		}},
		"sales": {Flags: map[string]complete.Predictor{
			"d": predict.Something,
			"p": predict.Set{"day", "week", "month", "year"},
		}},
		"void": {},
		"daily": {Flags: map[string]complete.Predictor{
			"d":    predict.Something,
			"json": predict.Nothing,
		}},
		"close": {Flags: map[string]complete.Predictor{
			"d": predict.Something,
		}},
		"import": {Flags: map[string]complete.Predictor{
			"i":     predict.Files("*.json"),
			"rows":  predict.Something,
			"name":  predict.Something,
			"cost":  predict.Something,
			"price": predict.Something,
			"stock": predict.Something,
		}},
		"export": {Flags: map[string]complete.Predictor{
			"o": predict.Files("*.json"),
		}},
		"fmt":   {},
		"topic": {},
	},
}

func main() {
	completer.Complete("caja")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
