package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	indent := strings.Repeat("  ", depth)
	seen := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || seen[command] || slices.Contains(command.Aliases, name) {
			continue
		}
		seen[command] = true
		names := append([]string{name}, command.Aliases...)
		if command.Description != "" {
			fmt.Fprintf(w, "%s%s\t%s\n", indent, strings.Join(names, ", "), command.Description)
		} else {
			fmt.Fprintf(w, "%s%s\n", indent, strings.Join(names, ", "))
		}
		if len(command.Subs) > 0 {
			writeCommands(w, command.Subs, depth+1)
		}
	}
}
