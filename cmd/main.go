package main

import (
	"fmt"
	"os"

	"github.com/sanity-io/litter"
	"tinygo.org/x/go-llvm"

	"github.com/csynth/csynth/internal/ast"
	ast_types "github.com/csynth/csynth/internal/ast/types"
	"github.com/csynth/csynth/internal/builder"
	"github.com/csynth/csynth/internal/compiler_errors"
	"github.com/csynth/csynth/internal/lift"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: csynth <module.bc|module.ll>")
		os.Exit(2)
	}
	fileName := os.Args[1]

	eh := compiler_errors.NewErrorHandler(os.Stderr)

	context := llvm.NewContext()
	buf, err := llvm.NewMemoryBufferFromFile(fileName)
	if err != nil {
		fmt.Println(err)
		return
	}

	module, err := context.ParseIR(buf)
	if err != nil {
		fmt.Println(err)
		return
	}

	registry := ast_types.NewRegistry()
	lifter := lift.NewLifter(registry, builder.New(registry))

	exprs := make(map[string]ast.Expr)
	for global := module.FirstGlobal(); !global.IsNil(); global = llvm.NextGlobal(global) {
		init := global.Initializer()
		if init.IsNil() {
			continue
		}

		expr, err := lifter.Constant(init)
		if err != nil {
			eh.AddError(&lift.LiftError{GlobalName: global.Name(), Err: err})
			continue
		}
		exprs[global.Name()] = expr
	}

	litter.Dump(exprs)

	if eh.HasErrors() {
		eh.FailNow()
	}
}
