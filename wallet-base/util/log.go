package util

import (
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

const day = time.Hour * 24

// InitDaysJSONRotationLogger init rotation log config with maxAgeDays and json format.
func InitDaysJSONRotationLogger(filePath, fileName string, maxAgeDays uint) error {
	return InitRotationLogger(filePath, fileName, time.Duration(maxAgeDays)*day, day, &logrus.JSONFormatter{})
}

// InitRotationLogger hooks a rotating file writer into logrus, next to the
// existing output.
func InitRotationLogger(filePath, fileName string, maxAge, rotationTime time.Duration, formatter logrus.Formatter) error {
	err := os.MkdirAll(filePath, 0700)
	if err != nil {
		return errors.Wrapf(err, "create log dir %s failed", filePath)
	}

	logFile, err := filepath.Abs(filepath.Join(filePath, fileName))
	if err != nil {
		return err
	}

	writer, err := rotatelogs.New(
		logFile+".%Y%m%d%H%M%S",
		rotatelogs.WithLinkName(logFile),
		rotatelogs.WithMaxAge(maxAge),
		rotatelogs.WithRotationTime(rotationTime),
	)
	if err != nil {
		return errors.Wrap(err, "create rotation writer failed")
	}

	writers := make(lfshook.WriterMap, len(logrus.AllLevels))
	for _, level := range logrus.AllLevels {
		writers[level] = writer
	}

	logrus.AddHook(lfshook.NewHook(writers, formatter))
	return nil
}
