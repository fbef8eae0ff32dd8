package shell

import (
	"fmt"
	"strings"
)

func (s *Shell) cmdPwd(args []string) error {
	fmt.Fprintln(s.out, s.nav.Pwd())
	return nil
}

func (s *Shell) cmdCd(args []string) error {
	switch len(args) {
	case 0:
		return s.nav.ChangeDir("/")
	case 1:
		return s.nav.ChangeDir(args[0])
	default:
		return fmt.Errorf("cd: too many arguments")
	}
}

func (s *Shell) cmdLs(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("ls: too many arguments")
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	names, err := s.nav.List(path)
	if err != nil {
		return fmt.Errorf("ls: %w", err)
	}
	if len(names) > 0 {
		fmt.Fprintln(s.out, strings.Join(names, "  "))
	}
	return nil
}

func (s *Shell) cmdCat(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("cat: expected exactly one path")
	}
	data, err := s.nav.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cat: %w", err)
	}
	s.out.Write(data)
	if len(data) == 0 || data[len(data)-1] != '\n' {
		fmt.Fprintln(s.out)
	}
	return nil
}

func (s *Shell) cmdVFSInfo(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("vfsinfo: too many arguments")
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	stats, err := s.nav.Describe(path)
	if err != nil {
		return fmt.Errorf("vfsinfo: %w", err)
	}
	if s.info.VFSPath != "" {
		fmt.Fprintf(s.out, "Source: %s\n", s.info.VFSPath)
	}
	fmt.Fprintf(s.out, "Directories: %d\n", stats.Dirs)
	fmt.Fprintf(s.out, "Files: %d\n", stats.Files)
	return nil
}

func (s *Shell) cmdStat(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("stat: expected exactly one path")
	}
	info, err := s.nav.Stat(args[0])
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}
	fmt.Fprintf(s.out, "Path: %s\n", info.Path)
	fmt.Fprintf(s.out, "Kind: %s\n", info.Kind)
	if info.Kind == "file" {
		fmt.Fprintf(s.out, "Size: %d\n", info.Size)
		fmt.Fprintf(s.out, "Encoding: %s\n", info.Encoding)
		if info.MIME != "" {
			fmt.Fprintf(s.out, "MIME: %s\n", info.MIME)
		}
		if info.Charset != "" {
			fmt.Fprintf(s.out, "Charset: %s\n", info.Charset)
		}
	} else {
		fmt.Fprintf(s.out, "Entries: %d\n", info.Entries)
	}
	return nil
}

func (s *Shell) cmdFind(args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("find: expected a pattern and an optional base path")
	}
	base := ""
	if len(args) == 2 {
		base = args[1]
	}
	matches, err := s.nav.Glob(base, args[0])
	if err != nil {
		return fmt.Errorf("find: %w", err)
	}
	for _, match := range matches {
		fmt.Fprintln(s.out, match)
	}
	return nil
}

func (s *Shell) cmdEcho(args []string) error {
	fmt.Fprintln(s.out, strings.Join(args, " "))
	return nil
}

func (s *Shell) cmdConfig(args []string) error {
	orDefault := func(v string) string {
		if v == "" {
			return "Not specified"
		}
		return v
	}
	fmt.Fprintln(s.out, "Current configuration:")
	fmt.Fprintf(s.out, "  VFS Path: %s\n", orDefault(s.info.VFSPath))
	fmt.Fprintf(s.out, "  Startup Script: %s\n", orDefault(s.info.Script))
	fmt.Fprintf(s.out, "  Strict Load: %v\n", s.info.Strict)
	fmt.Fprintf(s.out, "  Debug Mode: %v\n", s.info.Debug)
	return nil
}

func (s *Shell) cmdHelp(args []string) error {
	fmt.Fprint(s.out, `Available commands:
  pwd              - Print current directory
  cd [dir]         - Change directory (no argument: root)
  ls [path]        - List directory contents
  cat <path>       - Print file contents
  stat <path>      - Show entry details
  find <pat> [dir] - Find entries matching a glob pattern
  vfsinfo [path]   - Show file and directory counts
  echo [args]      - Print arguments
  config           - Show emulator configuration
  help             - Show this help message
  exit             - Exit the emulator
`)
	return nil
}

func (s *Shell) cmdExit(args []string) error {
	fmt.Fprintln(s.out, "Exiting VFS emulator...")
	s.running = false
	return nil
}
