package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/consoles"
	"github.com/reusee/turing/drivers"
	"github.com/reusee/turing/sources"
	"github.com/reusee/turing/tmconfigs"
)

type Module struct {
	dscope.Module
	Configs  tmconfigs.Module
	Drivers  drivers.Module
	Consoles consoles.Module
	Sources  sources.Module
}
