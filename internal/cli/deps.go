package cli

import (
	"io"
	"os"

	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/service"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Services
	Services *service.Services

	Config config.Config
}

// NewDeps creates a new Deps with the given services writing to the process streams
func NewDeps(services *service.Services, cfg config.Config) *Deps {
	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Exit:     os.Exit,
		Services: services,
		Config:   cfg,
	}
}

// WithStreams returns a copy of d that uses the given streams and exit function
func (d *Deps) WithStreams(stdout, stderr io.Writer, stdin io.Reader, exit func(int)) *Deps {
	c := *d
	c.Stdout = stdout
	c.Stderr = stderr
	c.Stdin = stdin
	c.Exit = exit
	return &c
}
