package streamers

// SessionHandler defines the interface for interactive command session I/O.
// Implementations can target a terminal, a pipe, or a test buffer.
type SessionHandler interface {
	// Welcome displays the banner when the session starts
	Welcome(name string, version string)

	// AwaitCommand prompts for and reads one command line
	AwaitCommand() (string, error)

	// Working is called while a command is executing
	Working(command string)

	// Result displays the output of a finished command
	Result(output string)

	// Error displays an error that ends or interrupts the session
	Error(err error)

	// Goodbye displays the farewell message when the session ends
	Goodbye()
}
