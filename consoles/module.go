package consoles

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/drivers"
)

type Module struct {
	dscope.Module
	Drivers drivers.Module
	Debugs  debugs.Module
}
