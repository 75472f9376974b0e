package tmconfigs

import (
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/vars"
)

// MaxSteps bounds a run. Zero means unbounded.
type MaxSteps int

var maxStepsFlag = cmds.Var[int]("-max-steps", "stop a run after this many steps")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(vars.FirstNonZero(
		*maxStepsFlag,
		configs.First[int](loader, "max_steps"),
	))
}
