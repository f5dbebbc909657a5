// Package logx is a small leveled logger for the command line tools. Each
// line carries a level tag and a section name, and tags are colored when
// the destination is a terminal.
package logx

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	LevelCount
)

type UseColor int

const (
	ColorAuto UseColor = iota
	ColorOn
	ColorOff
)

var levelstrings = [2][LevelCount]string{
	// uncolored
	{
		DEBUG: "  DEBUG",
		INFO:  "   INFO",
		WARN:  "WARNING",
		ERROR: "  ERROR",
	},
	// colored
	{
		DEBUG: "\033[37m  DEBUG\033[0m",
		INFO:  "\033[34m   INFO\033[0m",
		WARN:  "\033[33mWARNING\033[0m",
		ERROR: "\033[31m  ERROR\033[0m",
	},
}

var formatstrings = [2]string{
	// uncolored
	"%s [%s] ",
	// colored
	"%s [\033[36m%s\033[0m] ",
}

func (l Level) String() string {
	if l < DEBUG || l >= LevelCount {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return strings.TrimSpace(levelstrings[0][l])
}

type sink struct {
	mu sync.Mutex
	w  *bufio.Writer
	t  int
	m  Level
}

// Logger writes leveled lines under one section name. Loggers derived with
// Section share the destination and its lock.
type Logger struct {
	s       *sink
	section string
}

// New returns a logger writing to w that drops messages below lvl. With
// ColorAuto, tags are colored only when w is a terminal; the terminal is
// then wrapped with go-colorable so the escapes work on Windows consoles.
func New(w io.Writer, section string, lvl Level, c UseColor) *Logger {
	s := &sink{m: lvl}
	if c == ColorOn {
		s.t = 1
	}
	if f, ok := w.(*os.File); ok && c != ColorOff {
		fd := f.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			w = colorable.NewColorable(f)
			s.t = 1
		}
	}
	s.w = bufio.NewWriter(w)
	return &Logger{s: s, section: section}
}

// Section returns a logger for another section sharing this destination.
func (l *Logger) Section(name string) *Logger {
	return &Logger{s: l.s, section: name}
}

// Level returns the minimum level that is written.
func (l *Logger) Level() Level {
	return l.s.m
}

// Enabled reports whether messages at lvl are written.
func (l *Logger) Enabled(lvl Level) bool {
	return lvl >= l.s.m
}

func (l *Logger) LogPrintf(lvl Level, format string, v ...interface{}) {
	if !l.Enabled(lvl) {
		return
	}
	l.write(lvl, fmt.Sprintf(format, v...))
}

func (l *Logger) LogPrintln(lvl Level, v ...interface{}) {
	if !l.Enabled(lvl) {
		return
	}
	msg := fmt.Sprintln(v...)
	l.write(lvl, msg[:len(msg)-1])
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.LogPrintf(DEBUG, format, v...) }
func (l *Logger) Infof(format string, v ...interface{})  { l.LogPrintf(INFO, format, v...) }
func (l *Logger) Warnf(format string, v ...interface{})  { l.LogPrintf(WARN, format, v...) }
func (l *Logger) Errorf(format string, v ...interface{}) { l.LogPrintf(ERROR, format, v...) }

func (l *Logger) write(lvl Level, msg string) {
	s := l.s
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(s.w, formatstrings[s.t], levelstrings[s.t][lvl], l.section)
	s.w.WriteString(msg)
	s.w.WriteByte('\n')
	s.w.Flush()
}
