package sources

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/nets"
)

type Module struct {
	dscope.Module
	Logs logs.Module
	Nets nets.Module
}
