package cli

import (
	"errors"
	"fmt"

	"github.com/espdhub/qualimport/internal/registry"
)

// loadRegistry builds the definition registry from the --defs directory
// or, when none is given, from the embedded standard set. Load failures
// are command-level errors with a definition-specific code.
func loadRegistry(opts *RootOptions, formatter *OutputFormatter) (*registry.Registry, error) {
	if opts.Defs == "" {
		formatter.VerboseLog("Using embedded definition set")
		reg, err := registry.Load()
		if err != nil {
			return nil, defsError(formatter, err)
		}
		return reg, nil
	}

	formatter.VerboseLog("Loading definitions from %s", opts.Defs)
	reg, err := registry.LoadDir(opts.Defs)
	if err != nil {
		return nil, defsError(formatter, err)
	}
	return reg, nil
}

func defsError(formatter *OutputFormatter, err error) error {
	code := ErrCodeDefsInvalid
	var compileErr *registry.CompileError
	if errors.As(err, &compileErr) {
		_ = formatter.Error(code, compileErr.Error(), nil)
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", code, compileErr.Error()))
	}
	_ = formatter.Error(code, err.Error(), nil)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, err.Error()))
}
