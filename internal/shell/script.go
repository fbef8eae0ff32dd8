package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// RunScript executes a startup script through the shell: one command per
// line, blank lines and "#" comments skipped, each command echoed with a
// "$ " prefix before running. Execution stops at the first failing
// command, reported with its line number.
func (s *Shell) RunScript(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}
	defer f.Close()
	return s.runScript(path, f)
}

func (s *Shell) runScript(path string, r io.Reader) error {
	s.running = true
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			s.logger.Debug("script comment",
				zap.String("script", path),
				zap.Int("line", lineNo),
			)
			continue
		}
		fmt.Fprintf(s.out, "$ %s\n", line)
		if err := s.Execute(line); err != nil {
			return fmt.Errorf("script %s line %d: %w", path, lineNo, err)
		}
		if !s.running {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}
	return nil
}
