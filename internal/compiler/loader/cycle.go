package loader

import (
	"fmt"
	"strings"

	errspkg "github.com/fnasraoui/logicaldecoding/internal/compiler/errors"
)

type visitState uint8

const (
	stateVisiting visitState = iota + 1
	stateDone
)

// detectCycle walks the import graph depth-first from each root. The first
// back edge found becomes a resolution error positioned at the import that
// closes the cycle.
func detectCycle(roots []string, edges map[string][]importEdge) error {
	states := make(map[string]visitState, len(edges))
	var stack []string

	var visit func(name string) error
	visit = func(name string) error {
		if states[name] != 0 {
			return nil
		}
		states[name] = stateVisiting
		stack = append(stack, name)
		for _, e := range edges[name] {
			if states[e.to] == stateVisiting {
				return cycleError(stack, name, e)
			}
			if err := visit(e.to); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
		states[name] = stateDone
		return nil
	}

	for _, r := range roots {
		if err := visit(r); err != nil {
			return err
		}
	}
	return nil
}

func cycleError(stack []string, from string, e importEdge) error {
	start := 0
	for i, name := range stack {
		if name == e.to {
			start = i
			break
		}
	}
	chain := append(append([]string{}, stack[start:]...), e.to)
	err := fmt.Errorf("%w: %s", errspkg.ErrImportCycle, strings.Join(chain, " -> "))
	return positioned(errspkg.KindResolution, e.pos, from, err)
}
