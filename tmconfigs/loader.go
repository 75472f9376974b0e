package tmconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/logs"
)

//go:embed schema.cue
var Schema string

var configFiles = cmds.Collect[string]("-config", "add a cue config file")

var filenames = []string{
	"turing.cue",
	".turing.cue",
}

// ConfigsLoader reads -config files first, then turing.cue files found in
// the working directory, the user config dir and /etc, in that precedence.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := append([]string(nil), *configFiles...)

	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, Schema)
}
