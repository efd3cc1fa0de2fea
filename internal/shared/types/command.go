package types

import "strings"

// Command is one tokenized input line
type Command struct {
	Name string   `json:"name"`
	Args []string `json:"args"`
}

// ParseCommand splits line on whitespace. It reports false for blank lines.
func ParseCommand(line string) (Command, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, false
	}
	return Command{Name: fields[0], Args: fields[1:]}, true
}

// Arg returns the i-th operand, or "" when absent
func (c Command) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}

// String reassembles the command for logs
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}
