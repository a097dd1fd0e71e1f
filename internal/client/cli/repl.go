package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// command is one REPL verb. Commands with auth set are hidden and refused
// while signed out.
type command struct {
	name    string
	aliases []string
	usage   string
	auth    bool
	run     func(ctx context.Context, args []string) error
}

type commandSet struct {
	byName map[string]command
	list   []command
}

func newCommandSet(cmds ...command) commandSet {
	s := commandSet{byName: make(map[string]command, len(cmds))}
	for _, c := range cmds {
		s.byName[c.name] = c
		for _, a := range c.aliases {
			s.byName[a] = c
		}
		s.list = append(s.list, c)
	}
	sort.Slice(s.list, func(i, j int) bool { return s.list[i].name < s.list[j].name })
	return s
}

func (s commandSet) help(loggedIn bool) string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, c := range s.list {
		if c.auth && !loggedIn {
			continue
		}
		fmt.Fprintf(&b, "  %-14s %s\n", c.name, c.usage)
	}
	b.WriteString("  exit           leave the program")
	return b.String()
}

// runREPL reads one command per line from reader and dispatches it. The
// loop exits on EOF or when the user types "exit" or "quit". Command errors
// are printed and never end the loop.
func runREPL(ctx context.Context, cmds commandSet, loggedIn func() bool, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("portal %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printlnFn(cmds.help(loggedIn()))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		c, ok := cmds.byName[name]
		if !ok {
			printlnFn("Unknown command:", name)
			continue
		}
		if c.auth && !loggedIn() {
			printlnFn("Please login first")
			continue
		}
		if err := c.run(ctx, args); err != nil {
			printlnFn("Error:", err)
		}
	}
}
