package logging

import (
	"io"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/2beens/gymroutines/pkg"
)

const (
	defaultMaxSizeMB  = 50
	defaultMaxBackups = 10
	defaultMaxAgeDays = 365
)

type LoggerSetupParams struct {
	LogFileName   string
	LogToStdout   bool
	LogLevel      string
	LogFormatJSON bool
	// rotation of LogFileName, defaults apply to zero values
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	Environment      string
	Release          string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the global logrus logger. Error and worse entries also go to
// sentry when it is enabled.
func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.SentryEnabled {
		if err := setupSentry(params); err != nil {
			logrus.Errorf("sentry.Init: %s", err)
		} else {
			logrus.Infoln("Sentry set up successfully")
		}
	}

	logrus.SetOutput(newOutput(params))
}

func setupSentry(params LoggerSetupParams) error {
	err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Release:          params.Release,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 1.0,
		ServerName:       params.SentryServerName,
	})
	if err != nil {
		return err
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	return nil
}

// newOutput writes to stdout when no log file is set, otherwise to a rotated log
// file, optionally mirrored to stdout.
func newOutput(params LoggerSetupParams) io.Writer {
	if params.LogFileName == "" {
		logrus.Println("writing logs only to STDOUT")
		return os.Stdout
	}

	fileName := params.LogFileName
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}

	fileLogger := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    orDefault(params.MaxSizeMB, defaultMaxSizeMB),
		MaxBackups: orDefault(params.MaxBackups, defaultMaxBackups),
		MaxAge:     orDefault(params.MaxAgeDays, defaultMaxAgeDays),
		LocalTime:  false, // UTC file names
		Compress:   true,
	}

	if params.LogToStdout {
		logrus.Println("writing logs to file and STDOUT")
		return pkg.NewCombinedWriter(os.Stdout, fileLogger)
	}
	return fileLogger
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.TraceLevel
	}
	return parsed
}
