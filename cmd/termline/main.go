// Command termline is a small interactive shell exercising the line editor
// on a raw-mode terminal. Debug events go to a log file since stdout belongs
// to the editor.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"termline"
)

// fileConfig is the optional termline.toml overriding the built-in tuning.
type fileConfig struct {
	Prompt      string `toml:"prompt"`
	LineLen     int    `toml:"line-length"`
	HistorySize int    `toml:"history-size"`
	MaxTokens   int    `toml:"max-tokens"`
}

func loadFileConfig() (fileConfig, error) {
	path := os.Getenv("TERMLINE_CONFIG")
	if path == "" {
		path = "termline.toml"
	}
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		if os.IsNotExist(err) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("load %s: %w", path, err)
	}
	return fc, nil
}

func newLogger() (*zap.SugaredLogger, func(), error) {
	path := os.Getenv("TERMLINE_LOG_FILE")
	if path == "" {
		path = filepath.Join(os.TempDir(), "termline.log")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	enc := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(f), zapcore.DebugLevel)
	l := zap.New(core)
	return l.Sugar(), func() {
		_ = l.Sync()
		_ = f.Close()
	}, nil
}

const secretPassword = "admin"

// shell is the host side of the session: command table, completion and the
// mock login flow demonstrating masked input.
type shell struct {
	log    *zap.SugaredLogger
	prompt string
	done   bool
	login  bool
}

var commands = []string{"clear", "echo", "exit", "help", "login", "quit"}

func (a *shell) print(_ *termline.Session, text string) {
	os.Stdout.WriteString(text)
}

func (a *shell) execute(s *termline.Session, argv []string) {
	a.log.Debugw("execute", "argv", argv)

	if a.login {
		a.login = false
		s.SetPrompt(a.prompt)
		if len(argv) == 1 && argv[0] == secretPassword {
			fmt.Print("logged in\r\n")
		} else {
			fmt.Print("wrong password\r\n")
		}
		return
	}

	switch argv[0] {
	case "help":
		fmt.Print("commands: " + strings.Join(commands, " ") + "\r\n")
		fmt.Print("use Tab for completion, Up/Down for history\r\n")
	case "clear":
		fmt.Print("\x1b[2J\x1b[H")
	case "echo":
		fmt.Print(strings.Join(argv[1:], " ") + "\r\n")
	case "login":
		a.login = true
		s.SetPrompt("password: ")
		s.SetEcho(termline.EchoOnce)
	case "exit", "quit":
		a.done = true
	default:
		fmt.Printf("%s: unknown command, try 'help'\r\n", argv[0])
	}
}

func (a *shell) complete(_ *termline.Session, argv []string) []string {
	if len(argv) != 1 {
		return nil
	}
	var out []string
	for _, c := range commands {
		if strings.HasPrefix(c, argv[0]) {
			out = append(out, c)
		}
	}
	return out
}

func (a *shell) sigint(_ *termline.Session) {
	a.log.Debugw("interrupt")
	fmt.Print("^C\r\n")
	a.done = true
}

func main() {
	log, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer closeLog()

	fc, err := loadFileConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg := termline.DefaultConfig()
	if fc.Prompt != "" {
		cfg.Prompt = fc.Prompt
		cfg.PromptLen = 0 // measure the new prompt
	}
	if fc.LineLen > 0 {
		cfg.LineLen = fc.LineLen
	}
	if fc.HistorySize > 0 {
		cfg.HistorySize = fc.HistorySize
	}
	if fc.MaxTokens > 0 {
		cfg.MaxTokens = fc.MaxTokens
	}

	restore, err := rawMode(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintln(os.Stderr, "raw mode:", err)
		os.Exit(1)
	}
	defer restore()

	app := &shell{log: log, prompt: cfg.Prompt}
	sess, err := termline.New(cfg, termline.Hooks{
		Print:    app.print,
		Execute:  app.execute,
		Complete: app.complete,
		Sigint:   app.sigint,
	})
	if err != nil {
		restore()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Debugw("session started", "prompt", cfg.Prompt, "line-length", cfg.LineLen)

	buf := make([]byte, 1)
	for !app.done {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			break
		}
		if n == 1 {
			sess.ProcessByte(buf[0])
		}
	}
	fmt.Print("\r\n")
}
