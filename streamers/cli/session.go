package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"

	"commander/streamers"
)

var _ streamers.SessionHandler = (*SessionHandler)(nil)

// SessionHandler implements streamers.SessionHandler for terminal I/O
type SessionHandler struct {
	reader      *bufio.Reader
	out         io.Writer
	interactive bool
	spinner     *spinner
	renderer    *glamour.TermRenderer
}

// SessionOptions configures a SessionHandler. Nil In and Out default to the
// process stdin and stdout.
type SessionOptions struct {
	In  io.Reader
	Out io.Writer
	// Interactive enables the spinner and in-place echo of typed commands
	Interactive bool
}

// NewSessionHandler creates a new CLI session handler
func NewSessionHandler(opts SessionOptions) *SessionHandler {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	return &SessionHandler{
		reader:      bufio.NewReader(opts.In),
		out:         opts.Out,
		interactive: opts.Interactive,
		spinner:     newSpinner(opts.Out),
		renderer:    renderer,
	}
}

func (s *SessionHandler) Welcome(name string, version string) {
	banner := fmt.Sprintf("# %s v%s\n\nType `help` to list commands, `exit` or `quit` to leave.", name, version)
	rendered := banner
	if s.renderer != nil {
		if out, err := s.renderer.Render(banner); err == nil {
			rendered = strings.TrimSpace(out)
		}
	}
	fmt.Fprintf(s.out, "%s%s%s\n\n", ColorOrange, rendered, ColorReset)
}

func (s *SessionHandler) AwaitCommand() (string, error) {
	fmt.Fprintf(s.out, "%s>  %s", ColorGray, ColorReset)
	input, err := s.reader.ReadString('\n')
	if err != nil {
		// A final line without a newline is still a command
		if err == io.EOF && strings.TrimSpace(input) != "" {
			return strings.TrimSpace(input), nil
		}
		return "", err
	}
	input = strings.TrimSpace(input)
	if input != "" && s.interactive {
		// Move cursor up, clear line, then echo the command in light brown
		fmt.Fprint(s.out, "\033[1A\033[K")
		fmt.Fprintf(s.out, "%s>  %s%s\n\n", ColorGray, ColorLightBrown, input+ColorReset)
	}
	return input, nil
}

func (s *SessionHandler) Working(command string) {
	if !s.interactive {
		return
	}
	s.spinner.Start(fmt.Sprintf("Running %s%s%s...", ColorBold, command, ColorReset))
}

func (s *SessionHandler) Result(output string) {
	s.spinner.Stop()
	if output == "" {
		return
	}
	fmt.Fprintf(s.out, "%s•%s %s\n\n", ColorGray, ColorReset, output)
}

func (s *SessionHandler) Error(err error) {
	s.spinner.Stop()
	fmt.Fprintf(os.Stderr, "%sError: %v%s\n", ColorRed, err, ColorReset)
}

func (s *SessionHandler) Goodbye() {
	s.spinner.Stop()
	fmt.Fprintf(s.out, "%sGoodbye!%s\n", ColorGray, ColorReset)
}

// spinner handles the loading animation
type spinner struct {
	out     io.Writer
	frames  []string
	stop    chan struct{}
	stopped chan struct{}
	mu      sync.Mutex
	running bool
}

func newSpinner(out io.Writer) *spinner {
	return &spinner{
		out:     out,
		frames:  []string{"◐", "◓", "◑", "◒"},
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

func (s *spinner) Start(message string) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.stopped = make(chan struct{})
	s.mu.Unlock()

	go func() {
		defer close(s.stopped)
		i := 0
		for {
			select {
			case <-s.stop:
				fmt.Fprint(s.out, "\r\033[K") // Clear line
				return
			default:
				fmt.Fprintf(s.out, "\r%s%s%s %s", ColorOrange, s.frames[i%len(s.frames)], ColorReset, message)
				i++
				time.Sleep(80 * time.Millisecond)
			}
		}
	}()
}

func (s *spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stop)
	<-s.stopped
}
