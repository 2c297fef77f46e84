package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/posturelab/posturecheck/pkg"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func Setup(logFileName, logLevel string, logToStdout bool) error {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	logLvl := GetLevel(logLevel)
	log.SetLevel(logLvl)

	if logFileName == "" {
		if logToStdout {
			log.SetOutput(os.Stdout)
		} else {
			// no file, no stdout - discard everything
			log.SetOutput(nullWriter{})
		}
		return nil
	}

	if !filepath.IsAbs(logFileName) {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working dir: %w", err)
		}
		logFileName = filepath.Join(wd, logFileName)
	}

	rotatedWriter := &lumberjack.Logger{
		Filename:   logFileName,
		MaxSize:    50, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}

	if logToStdout {
		log.SetOutput(pkg.NewCombinedWriter(rotatedWriter, os.Stdout))
	} else {
		log.SetOutput(rotatedWriter)
	}

	return nil
}

func GetLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "trace":
		return log.TraceLevel
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.TraceLevel
	}
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}
