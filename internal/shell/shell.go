package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/vfsemu/vfsemu/internal/infrastructure/logging"
	"github.com/vfsemu/vfsemu/internal/vfs"
)

// Info is the static configuration the config command reports.
type Info struct {
	VFSPath string
	Script  string
	Strict  bool
	Debug   bool
}

// Shell executes commands against a single navigation context.
type Shell struct {
	nav      *vfs.NavContext
	out      io.Writer
	info     Info
	logger   *logging.Logger
	commands map[string]func(args []string) error
	running  bool
}

// New creates a shell writing command output to out.
func New(nav *vfs.NavContext, out io.Writer, info Info, logger *logging.Logger) *Shell {
	s := &Shell{
		nav:     nav,
		out:     out,
		info:    info,
		logger:  logger,
		running: true,
	}
	s.commands = map[string]func(args []string) error{
		"pwd":     s.cmdPwd,
		"cd":      s.cmdCd,
		"ls":      s.cmdLs,
		"cat":     s.cmdCat,
		"vfsinfo": s.cmdVFSInfo,
		"stat":    s.cmdStat,
		"find":    s.cmdFind,
		"echo":    s.cmdEcho,
		"config":  s.cmdConfig,
		"help":    s.cmdHelp,
		"exit":    s.cmdExit,
	}
	return s
}

// Nav returns the navigation context the shell drives.
func (s *Shell) Nav() *vfs.NavContext { return s.nav }

// Execute runs a single command line. Empty lines are no-ops. The error
// reports command failure; the shell itself stays usable.
func (s *Shell) Execute(line string) error {
	name, args := Split(line)
	if name == "" {
		return nil
	}
	name = strings.ToLower(name)
	cmd, ok := s.commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	s.logger.Debug("executing command",
		zap.String("command", name),
		zap.Strings("args", args),
	)
	return cmd(args)
}

// Run reads command lines from r until exit or EOF, rendering the prompt
// before each. Command errors are printed, never fatal.
func (s *Shell) Run(r io.Reader) error {
	s.running = true
	scanner := bufio.NewScanner(r)
	for s.running {
		fmt.Fprintf(s.out, "%s$ ", s.nav.Pwd())
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			break
		}
		if err := s.Execute(scanner.Text()); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
	return scanner.Err()
}

// Running reports whether an exit command has been seen.
func (s *Shell) Running() bool { return s.running }

// Split tokenizes a command line into a command name and arguments,
// honoring single and double quotes so names with spaces survive. An
// unterminated quote is tolerated and runs to the end of the line.
func Split(line string) (string, []string) {
	var (
		parts     []string
		current   strings.Builder
		inQuotes  bool
		quoteChar byte
		pending   bool
	)
	flush := func() {
		if pending {
			parts = append(parts, current.String())
			current.Reset()
			pending = false
		}
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"' || c == '\'':
			if !inQuotes {
				inQuotes = true
				quoteChar = c
				pending = true
			} else if c == quoteChar {
				inQuotes = false
			} else {
				current.WriteByte(c)
			}
		case c == ' ' && !inQuotes:
			flush()
		default:
			current.WriteByte(c)
			pending = true
		}
	}
	flush()
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0], parts[1:]
}
