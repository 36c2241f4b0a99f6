package domain

// Command is one rendered shell line together with the context it runs in.
type Command struct {
	// Line is the shell source passed to the interpreter.
	Line string
	// Dir is the working directory.
	Dir string
	// Env is the variable set layered over the inherited process environment.
	Env Options
	// Hermetic limits the inherited process environment to an allow-list.
	Hermetic bool
}
