package sample

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	cocogen "github.com/wictorwilen/cocogen-sub001"
)

// override is one compiled value-override program, keyed by property name or
// property.path for entity leaves.
type override struct {
	key     string
	program *vm.Program
}

// compileOverrides compiles each override source against the fixed env.
// Compile errors are fatal so a bad program fails the run, not one cell.
func compileOverrides(sources map[string]string) (map[string]*override, error) {
	out := make(map[string]*override, len(sources))

	for key, src := range sources {
		program, err := expr.Compile(src, expr.Env(overrideEnv(nil)))
		if err != nil {
			return nil, fmt.Errorf("override %s: %w", key, err)
		}

		out[key] = &override{key: key, program: program}
	}

	return out, nil
}

// overrideEnv is the variable set visible to override programs.
type overrideEnv map[string]any

func newOverrideEnv(name, address string, t cocogen.PropertyType, index int) overrideEnv {
	return overrideEnv{
		"name":   name,
		"header": address,
		"type":   string(t),
		"index":  index,
	}
}

// eval runs the program for one cell and stringifies the result.
func (o *override) eval(env overrideEnv) (string, error) {
	out, err := expr.Run(o.program, env)
	if err != nil {
		return "", fmt.Errorf("override %s: %w", o.key, err)
	}

	return fmt.Sprint(out), nil
}
