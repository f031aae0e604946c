// Package iocli abstracts terminal input and output so commands can be
// tested against a fake console.
package iocli

// IO is the console surface used by the CLI commands.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}
