package logging

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const timestampFormat = "2006/01/02 15:04:05.000"

// logWriter serializes the lines of every logger sharing the same output.
type logWriter struct {
	mu     sync.Mutex
	out    io.Writer
	isTerm bool
}

func (w *logWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Write(b)
}

// writeLine writes one rendered line, colored only for terminals.
func (w *logWriter) writeLine(ts string, lvl Level, name string, body string) {
	var line string
	if w.isTerm {
		begin, end := levelColor(lvl)
		line = fmt.Sprintf("%s %s%-5s%s %s %s\n", ts, begin, LogLevelName(lvl), end, name, body)
	} else {
		line = fmt.Sprintf("%s %-5s %s %s\n", ts, LogLevelName(lvl), name, removeEscape(body))
	}
	w.Write([]byte(line))
}

func levelColor(lvl Level) (string, string) {
	switch lvl {
	case LevelWarn:
		return yellow, reset
	case LevelError:
		return red, reset
	}
	return "", ""
}

var utcTimestamp atomic.Bool

func now() time.Time {
	if utcTimestamp.Load() {
		return time.Now().UTC()
	}
	return time.Now()
}

func (l *levelLogger) _log(lvl Level, callstackOffset int, args []any) {
	if lvl < l.level {
		return
	}
	toks := make([]string, len(args))
	for i, a := range args {
		if s, ok := a.(string); ok {
			toks[i] = s
		} else {
			toks[i] = fmt.Sprintf("%v", a)
		}
	}
	l.emit(lvl, callstackOffset+1, strings.Join(toks, " "))
}

func (l *levelLogger) _logf(lvl Level, callstackOffset int, format string, args []any) {
	if lvl < l.level {
		return
	}
	l.emit(lvl, callstackOffset+1, fmt.Sprintf(format, args...))
}

// emit counts and writes a rendered message to every writer of the logger.
func (l *levelLogger) emit(lvl Level, callstackOffset int, body string) {
	totalCounter.Inc(1)
	switch lvl {
	case LevelWarn:
		warnCounter.Inc(1)
	case LevelError:
		errorCounter.Inc(1)
	}
	if len(l.underlying) == 0 {
		return
	}

	name := fmt.Sprintf("%-*s", l.prefixWidth, l.name)
	if l.enableSrcLoc {
		_, file, lineNo, _ := runtime.Caller(2 + callstackOffset)
		file = filepath.Base(file)
		width := max(l.prefixWidth-len(file)-5, 1)
		name = fmt.Sprintf("%-*s %s %3d", width, l.name, file, lineNo)
	}
	ts := now().Format(timestampFormat)
	for _, w := range l.underlying {
		w.writeLine(ts, lvl, name, body)
	}
}

// Write copies raw output, e.g. of a standard library logger, prefixed
// with a timestamp.
func (l *levelLogger) Write(buff []byte) (n int, err error) {
	ts := now().Format(timestampFormat) + " -     "
	for _, w := range l.underlying {
		n, err = w.Write(append([]byte(ts), buff...))
		n -= len(ts)
	}
	return
}

func removeEscape(str string) string {
	for {
		idx := strings.Index(str, "\033[")
		if idx == -1 {
			break
		}
		period := strings.Index(str[idx:], "m")
		if period == -1 {
			break
		}
		str = str[0:idx] + str[idx+period+1:]
	}
	return str
}
