package agent

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/google/shlex"
	"github.com/hashicorp/go-hclog"

	"commander/store"
)

const (
	DefaultCommanderName    = "The Commander"
	DefaultCommanderVersion = "1.0.0"

	defaultHistoryCount = 10
	maxSuggestions      = 5
	maxSuggestDistance  = 3
)

// AgentBinding registers an agent under a top-level command name
type AgentBinding struct {
	Key   string
	Agent Agent
	Info  CommandInfo
}

// CommanderOptions holds configuration for creating a commander
type CommanderOptions struct {
	// Name and Version are shown by the about command
	Name    string
	Version string
	// Agents are routed to by their Key, in the order given
	Agents []AgentBinding
	// History records every executed line (optional)
	History store.HistoryStore
	Logger  hclog.Logger
}

// Commander parses command lines and routes them to built-in commands or
// registered agents. Its command table is fixed at construction.
type Commander struct {
	name     string
	version  string
	agents   map[string]Agent
	keys     []string
	commands Registry
	history  store.HistoryStore
	logger   hclog.Logger
}

// NewCommander creates a commander
func NewCommander(opts CommanderOptions) *Commander {
	if opts.Name == "" {
		opts.Name = DefaultCommanderName
	}
	if opts.Version == "" {
		opts.Version = DefaultCommanderVersion
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}

	c := &Commander{
		name:    opts.Name,
		version: opts.Version,
		agents:  make(map[string]Agent, len(opts.Agents)),
		history: opts.History,
		logger:  opts.Logger,
	}

	specs := []CommandSpec{
		{Name: "help", Info: CommandInfo{
			Description: "Display available commands and their usage",
			Usage:       "help [command]",
			Examples:    []string{"help", "help researcher"},
		}},
		{Name: "about", Info: CommandInfo{
			Description: "Display information about " + opts.Name,
			Usage:       "about",
			Examples:    []string{"about"},
		}},
		{Name: "history", Info: CommandInfo{
			Description: "Show recently executed commands",
			Usage:       "history [count]",
			Examples:    []string{"history", "history 5"},
		}},
	}
	for _, b := range opts.Agents {
		key := strings.ToLower(b.Key)
		c.agents[key] = b.Agent
		c.keys = append(c.keys, key)
		specs = append(specs, CommandSpec{Name: key, Info: b.Info})
	}
	c.commands = NewRegistry(specs...)
	return c
}

// ResearcherBinding registers r under "researcher"
func ResearcherBinding(r *Researcher) AgentBinding {
	return AgentBinding{
		Key:   "researcher",
		Agent: r,
		Info: CommandInfo{
			Description: "Web scraping and document analysis operations",
			Usage:       "researcher <command> <args>",
			Examples: []string{
				"researcher scrape https://news.ycombinator.com",
				"researcher summarize 'Long text that needs to be summarized...'",
				"researcher extract-links https://example.com",
				"researcher analyze 'Text to analyze for readability and statistics'",
			},
		},
	}
}

func (c *Commander) Name() string    { return c.name }
func (c *Commander) Version() string { return c.version }

// Commands returns the top-level command table
func (c *Commander) Commands() Registry {
	return c.commands
}

// Agent returns the agent registered under key
func (c *Commander) Agent(key string) (Agent, bool) {
	a, ok := c.agents[strings.ToLower(key)]
	return a, ok
}

// ExecuteCommand runs one command line and returns its output. The line and
// a truncated result are recorded in history; history failures are logged
// and never change the output.
func (c *Commander) ExecuteCommand(ctx context.Context, line string) string {
	result, failed := c.dispatch(ctx, line)
	c.record(ctx, strings.TrimSpace(line), result, failed)
	return result
}

// History lists recent entries, most recent first
func (c *Commander) History(ctx context.Context, limit int) ([]store.Entry, error) {
	if c.history == nil {
		return nil, nil
	}
	return c.history.List(ctx, limit)
}

func (c *Commander) dispatch(ctx context.Context, line string) (result string, failed bool) {
	defer func() {
		if p := recover(); p != nil {
			c.logger.Error("error executing command", "line", line, "panic", p)
			result, failed = fmt.Sprintf("Error executing command: %v", p), true
		}
	}()

	tokens, err := shlex.Split(line)
	if err != nil {
		c.logger.Error("error parsing command", "line", line, "error", err)
		return fmt.Sprintf("Error parsing command: %v", err), true
	}
	if len(tokens) == 0 {
		return c.help(nil)
	}

	command := strings.ToLower(tokens[0])
	args := tokens[1:]
	c.logger.Debug("executing command", "command", command, "args", args)

	switch command {
	case "help":
		return c.help(args)
	case "about":
		return c.about(), false
	case "history":
		return c.listHistory(ctx, args)
	}

	if a, ok := c.agents[command]; ok {
		return c.agentCommand(ctx, command, a, args)
	}
	return c.unknown(command), true
}

func (c *Commander) agentCommand(ctx context.Context, key string, a Agent, args []string) (string, bool) {
	if len(args) == 0 {
		var sb strings.Builder
		fmt.Fprintf(&sb, "Agent: %s\n", a.Name())
		fmt.Fprintf(&sb, "Description: %s\n\n", a.Description())
		sb.WriteString("Available Commands:\n")
		cmds := a.Commands()
		for _, name := range cmds.Names() {
			info, _ := cmds.Lookup(name)
			fmt.Fprintf(&sb, "- %s: %s\n", name, info.Description)
		}
		fmt.Fprintf(&sb, "\nUse '%s <command> [args]' to execute a command.", key)
		return sb.String(), false
	}

	out, err := a.Run(ctx, strings.ToLower(args[0]), args[1:])
	if err != nil {
		return err.Error(), true
	}
	return out, false
}

func (c *Commander) help(args []string) (string, bool) {
	if len(args) == 0 {
		var sb strings.Builder
		sb.WriteString("Available commands:\n\n")
		for _, name := range c.commands.Names() {
			info, _ := c.commands.Lookup(name)
			fmt.Fprintf(&sb, "- %s: %s\n", name, info.Description)
		}
		sb.WriteString("\nType 'help <command>' for more information on a specific command.")
		return sb.String(), false
	}

	topic := strings.ToLower(args[0])
	if a, ok := c.agents[topic]; ok {
		return Listing(a), false
	}

	info, ok := c.commands.Lookup(topic)
	if !ok {
		return fmt.Sprintf("Unknown command: '%s'. Type 'help' for available commands.", topic), true
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Command: %s\n", topic)
	fmt.Fprintf(&sb, "Description: %s\n", info.Description)
	fmt.Fprintf(&sb, "Usage: %s\n\n", info.Usage)
	sb.WriteString("Examples:\n")
	for _, ex := range info.Examples {
		fmt.Fprintf(&sb, "- %s\n", ex)
	}
	return strings.TrimRight(sb.String(), "\n"), false
}

func (c *Commander) about() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s - v%s\n\n", c.name, c.version)
	sb.WriteString("Routes text commands to specialised agents.\n\n")
	sb.WriteString("Agents:\n")
	for _, key := range c.keys {
		a := c.agents[key]
		fmt.Fprintf(&sb, "- %s: %s (%s)\n", key, a.Name(), a.Description())
	}
	sb.WriteString("\nType 'help' to see available commands.")
	return sb.String()
}

func (c *Commander) listHistory(ctx context.Context, args []string) (string, bool) {
	if c.history == nil {
		return "Command history is not enabled.", false
	}

	count := defaultHistoryCount
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Sprintf("Error: history count must be a positive number, got '%s'", args[0]), true
		}
		count = n
	}

	entries, err := c.history.List(ctx, count)
	if err != nil {
		c.logger.Error("error listing history", "error", err)
		return fmt.Sprintf("Error executing command: %v", err), true
	}
	if len(entries) == 0 {
		return "No commands in history.", false
	}
	return FormatHistory(entries), false
}

// FormatHistory renders entries as a numbered list
func FormatHistory(entries []store.Entry) string {
	var sb strings.Builder
	sb.WriteString("Recent commands:\n")
	for i, e := range entries {
		status := ""
		if e.Failed {
			status = " (failed)"
		}
		fmt.Fprintf(&sb, "\n%d. [%s] %s%s\n", i+1, e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.Command, status)
		fmt.Fprintf(&sb, "   %s", strings.ReplaceAll(e.Result, "\n", " "))
	}
	return sb.String()
}

func (c *Commander) unknown(command string) string {
	suggestions := c.suggest(command)
	if len(suggestions) == 0 {
		return fmt.Sprintf("Unknown command: '%s'. Type 'help' for available commands.", command)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Unknown command: '%s'.\n\nDid you mean:\n", command)
	for i, s := range suggestions {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, s)
	}
	sb.WriteString("\nType 'help' for available commands.")
	return sb.String()
}

// suggest ranks known commands sharing the first letter or within a small
// edit distance, closest first.
func (c *Commander) suggest(command string) []string {
	if command == "" {
		return nil
	}

	type candidate struct {
		name     string
		distance int
	}
	var candidates []candidate
	for _, name := range c.commands.Names() {
		if name == command {
			continue
		}
		d := levenshtein.Distance(command, name, nil)
		if d <= maxSuggestDistance || name[0] == command[0] {
			candidates = append(candidates, candidate{name: name, distance: d})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	var result []string
	for _, cand := range candidates {
		if len(result) == maxSuggestions {
			break
		}
		result = append(result, cand.name)
	}
	return result
}

func (c *Commander) record(ctx context.Context, line, result string, failed bool) {
	if c.history == nil {
		return
	}
	if err := c.history.Record(ctx, store.NewEntry(line, result, failed)); err != nil {
		c.logger.Warn("failed to record history", "command", line, "error", err)
	}
}
