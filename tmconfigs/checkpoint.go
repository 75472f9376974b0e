package tmconfigs

import (
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/vars"
)

// CheckpointPath is the JSON file a run is saved to. Empty disables checkpoints.
type CheckpointPath string

var checkpointFlag = cmds.Var[string]("-checkpoint", "checkpoint file saved after each run")

func (Module) CheckpointPath(
	loader configs.Loader,
) CheckpointPath {
	return CheckpointPath(vars.FirstNonZero(
		*checkpointFlag,
		configs.First[string](loader, "checkpoint"),
	))
}
