// Package logging provides named, leveled loggers writing to the console
// and/or a rotated log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/robfig/cron/v3"
	"gopkg.in/natefinch/lumberjack.v2"
)

/*
	Log rotation schedule

	"0 30 * * * *"             Every hour on the half hour
	"@hourly"                  Every hour
	"@every 1h30m"             Every hour thirty

	@yearly
	@monthly
	@daily
	@hourly
	@midnight
*/

type Config struct {
	Console                     bool          `yaml:"console"`
	Filename                    string        `yaml:"filename"`
	Append                      bool          `yaml:"append"`
	RotateSchedule              string        `yaml:"rotateSchedule"`
	MaxSize                     int           `yaml:"maxSize"`
	MaxBackups                  int           `yaml:"maxBackups"`
	MaxAge                      int           `yaml:"maxAge"`
	Compress                    bool          `yaml:"compress"`
	Levels                      []LevelConfig `yaml:"levels"`
	UTC                         bool          `yaml:"utc"`
	DefaultPrefixWidth          int           `yaml:"defaultPrefixWidth"`
	DefaultEnableSourceLocation bool          `yaml:"defaultEnableSourceLocation"`
	DefaultLevel                string        `yaml:"defaultLevel"`
}

type LevelConfig struct {
	Pattern string `yaml:"pattern"`
	Level   Level  `yaml:"level"`
}

// PresetConfigStdout writes every level to stdout.
var PresetConfigStdout = Config{
	Filename:           "-",
	Append:             true,
	DefaultPrefixWidth: 18,
	DefaultLevel:       "TRACE",
}

// PresetConfigDiscard drops all output.
var PresetConfigDiscard = Config{
	Filename:     ".",
	DefaultLevel: "TRACE",
}

var rotateCron = cron.New()

var (
	writerLock    sync.RWMutex
	defaultWriter []*logWriter
)

// Configure sets the default writers and levels of loggers created
// afterwards by GetLog.
func Configure(cfg *Config) error {
	for _, c := range cfg.Levels {
		SetLevel(c.Pattern, c.Level)
	}
	SetDefaultPrefixWidth(cfg.DefaultPrefixWidth)
	if cfg.DefaultLevel != "" {
		lvl, ok := ParseLogLevelP(cfg.DefaultLevel)
		if !ok {
			return fmt.Errorf("invalid log level: %q", cfg.DefaultLevel)
		}
		SetDefaultLevel(lvl)
	}
	SetDefaultEnableSourceLocation(cfg.DefaultEnableSourceLocation)
	utcTimestamp.Store(cfg.UTC)

	var writers []*logWriter
	switch cfg.Filename {
	case "", ".":
		writers = []*logWriter{}
	case "-":
		writers = []*logWriter{{out: os.Stdout, isTerm: true}}
	default:
		lj := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
			LocalTime:  !cfg.UTC,
		}
		if !cfg.Append {
			if err := lj.Rotate(); err != nil {
				return fmt.Errorf("log file %s: %w", cfg.Filename, err)
			}
		}
		if len(cfg.RotateSchedule) > 0 {
			if _, err := rotateCron.AddFunc(cfg.RotateSchedule, func() { lj.Rotate() }); err != nil {
				return fmt.Errorf("log rotate schedule %q: %w", cfg.RotateSchedule, err)
			}
			rotateCron.Start()
		}
		writers = []*logWriter{{out: lj}}
		if cfg.Console {
			writers = append(writers, &logWriter{out: os.Stdout, isTerm: true})
		}
	}
	writerLock.Lock()
	defaultWriter = writers
	writerLock.Unlock()
	return nil
}

func GetLog(name string) Log {
	writerLock.RLock()
	underlying := defaultWriter
	writerLock.RUnlock()
	return &levelLogger{
		name:         name,
		level:        GetLevel(name),
		underlying:   underlying,
		prefixWidth:  DefaultPrefixWidth(),
		enableSrcLoc: enableSourceLocationDefault,
	}
}

func NewLog(name string, writer io.Writer) Log {
	return &levelLogger{
		name:         name,
		level:        GetLevel(name),
		underlying:   []*logWriter{{out: writer}},
		prefixWidth:  DefaultPrefixWidth(),
		enableSrcLoc: enableSourceLocationDefault,
	}
}
