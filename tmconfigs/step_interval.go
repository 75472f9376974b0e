package tmconfigs

import (
	"fmt"
	"time"

	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
)

// StepInterval is the pause between two steps of a run.
type StepInterval time.Duration

var stepIntervalFlag = cmds.Var[time.Duration]("-interval", "pause between steps")

func (Module) StepInterval(
	loader configs.Loader,
) StepInterval {
	if *stepIntervalFlag != 0 {
		return StepInterval(*stepIntervalFlag)
	}
	str := configs.First[string](loader, "step_interval")
	if str == "" {
		return 0
	}
	d, err := time.ParseDuration(str)
	if err != nil {
		panic(fmt.Errorf("step_interval: %w", err))
	}
	return StepInterval(d)
}
