package domain

// Command is one external process invocation.
type Command struct {
	// Tool names the program in error messages.
	Tool string
	Name string
	Args []string
	Dir  string
	Env  map[string]string
}

// Argv returns the full argument vector.
func (c *Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}
