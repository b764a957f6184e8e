package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/2beens/fittrack/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const sentryFlushTimeout = 2 * time.Second

type LoggerSetupParams struct {
	// Console receives the logs next to (or instead of) the log file; os.Stdout when nil.
	// The stdio MCP server and the CLI pass os.Stderr to keep stdout clean.
	Console          io.Writer
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the global logrus logger and returns a func that flushes
// sentry and closes the log file.
func Setup(params LoggerSetupParams) (closeFn func()) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	console := params.Console
	if console == nil {
		console = os.Stdout
	}

	sentryOn := params.SentryEnabled && setupSentry(params)

	file := fileSink(params.LogFileName)
	switch {
	case file == nil:
		logrus.SetOutput(console)
		logrus.Debugln("logging to console only")
	case params.LogToStdout:
		logrus.SetOutput(pkg.NewCombinedWriter(console, file))
		logrus.Debugf("logging to console and [%s]", file.Filename)
	default:
		logrus.SetOutput(file)
	}

	return func() {
		if sentryOn {
			sentry.Flush(sentryFlushTimeout)
		}
		if file != nil {
			_ = file.Close()
		}
	}
}

func setupSentry(params LoggerSetupParams) bool {
	if err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 1.0,
		ServerName:       params.SentryServerName,
	}); err != nil {
		logrus.Errorf("sentry init: %s", err)
		return false
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("sentry hook installed")
	return true
}

// fileSink returns nil when no log file is configured.
func fileSink(name string) *lumberjack.Logger {
	if name == "" {
		return nil
	}
	if !strings.HasSuffix(name, ".log") {
		name += ".log"
	}
	return &lumberjack.Logger{
		Filename:   name,
		MaxSize:    20, // megabytes
		MaxBackups: 10,
		LocalTime:  false, // UTC
		Compress:   true,
	}
}

func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil || parsed == logrus.PanicLevel {
		return logrus.InfoLevel
	}
	return parsed
}
