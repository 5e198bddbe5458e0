package agent

import (
	"context"
	"fmt"
	"strings"
)

// Agent is a named handler for a closed set of text commands
type Agent interface {
	Name() string
	Description() string
	// Commands returns the descriptors of every command the agent accepts
	Commands() Registry
	// Execute runs a command and always returns a user-facing string
	Execute(ctx context.Context, command string, args []string) string
	// Run runs a command; failures come back as *OpError whose message is
	// what Execute would have returned
	Run(ctx context.Context, command string, args []string) (string, error)
}

// CommandInfo is the help text for one command
type CommandInfo struct {
	Description string
	Usage       string
	Examples    []string
}

// CommandSpec names a CommandInfo for registry construction
type CommandSpec struct {
	Name string
	Info CommandInfo
}

// Registry is an immutable, ordered set of command descriptors. Lookups hand
// out copies, so callers cannot change what the registry holds.
type Registry struct {
	names    []string
	commands map[string]CommandInfo
}

// NewRegistry builds a registry in declaration order. A later spec with a
// duplicate name replaces the earlier descriptor but keeps its position.
func NewRegistry(specs ...CommandSpec) Registry {
	r := Registry{commands: make(map[string]CommandInfo, len(specs))}
	for _, s := range specs {
		if _, exists := r.commands[s.Name]; !exists {
			r.names = append(r.names, s.Name)
		}
		r.commands[s.Name] = copyInfo(s.Info)
	}
	return r
}

// Names returns the command names in declaration order
func (r Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Lookup returns the descriptor for name
func (r Registry) Lookup(name string) (CommandInfo, bool) {
	info, ok := r.commands[name]
	if !ok {
		return CommandInfo{}, false
	}
	return copyInfo(info), true
}

// Has reports whether name is registered
func (r Registry) Has(name string) bool {
	_, ok := r.commands[name]
	return ok
}

func (r Registry) Len() int {
	return len(r.names)
}

func copyInfo(info CommandInfo) CommandInfo {
	info.Examples = append([]string(nil), info.Examples...)
	return info
}

// Listing renders an agent's full help: identity plus every command with
// its usage and examples.
func Listing(a Agent) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Agent: %s\n", a.Name())
	fmt.Fprintf(&sb, "Description: %s\n\n", a.Description())
	sb.WriteString("Available Commands:\n")

	cmds := a.Commands()
	for _, name := range cmds.Names() {
		info, _ := cmds.Lookup(name)
		fmt.Fprintf(&sb, "- %s: %s\n", name, info.Description)
		fmt.Fprintf(&sb, "  Usage: %s\n", info.Usage)
		if len(info.Examples) > 0 {
			sb.WriteString("  Examples:\n")
			for _, ex := range info.Examples {
				fmt.Fprintf(&sb, "    %s\n", ex)
			}
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
