// Package logging wraps zap with file rotation and optional Sentry
// reporting. Callers that never call InitLogger still get a working,
// silent logger: every package-level function is safe to call against
// the zero value.
package logging

import (
	"os"
	"path"
	"strings"
	"time"

	"github.com/LinkinStars/golang-util/gu"
	"github.com/getsentry/sentry-go"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var projectName = "fpgrowth"

var global = zap.NewNop()

// InitLogger wires a console core plus size/time-rotated error and info
// file cores, and, when dsn is non-empty, a Sentry reporting core for
// warning-and-above entries. logPath is created if absent. maxAge and
// rotationTime are given in days and hours respectively; rotationSize in
// MB (0 defaults to 1024).
func InitLogger(name, logPath string, maxAgeDays, rotationHours int, rotationSizeMB uint32, dsn string) error {
	if name != "" {
		projectName = name
	}
	if rotationSizeMB == 0 {
		rotationSizeMB = 1024
	}

	if err := gu.CreateDirIfNotExist(logPath); err != nil {
		return err
	}
	base := path.Join(logPath, projectName)

	errWriter, err := rotatelogs.New(
		base+"_err_%Y-%m-%d.log",
		rotatelogs.WithLinkName(base+"_err_last.log"),
		rotatelogs.WithMaxAge(time.Duration(maxAgeDays)*24*time.Hour),
		rotatelogs.WithRotationTime(time.Duration(rotationHours)*time.Hour),
		rotatelogs.WithRotationSize(int64(rotationSizeMB)*1024*1024),
	)
	if err != nil {
		return err
	}
	infoWriter, err := rotatelogs.New(
		base+"_info_%Y-%m-%d.log",
		rotatelogs.WithLinkName(base+"_info_last.log"),
		rotatelogs.WithMaxAge(time.Duration(maxAgeDays)*24*time.Hour),
		rotatelogs.WithRotationTime(time.Duration(rotationHours)*time.Hour),
		rotatelogs.WithRotationSize(int64(rotationSizeMB)*1024*1024),
	)
	if err != nil {
		return err
	}

	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool { return lvl > zapcore.WarnLevel })
	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool { return lvl >= zapcore.DebugLevel })

	consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
	consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleEncoderConfig.EncodeTime = timeEncoder
	consoleEncoderConfig.EncodeCaller = customCallerEncoder
	consoleEncoder := zapcore.NewConsoleEncoder(consoleEncoderConfig)

	fileEncoderConfig := zap.NewProductionEncoderConfig()
	fileEncoderConfig.EncodeTime = timeEncoder
	fileEncoderConfig.EncodeCaller = customCallerEncoder
	fileEncoder := zapcore.NewJSONEncoder(fileEncoderConfig)

	cores := []zapcore.Core{
		zapcore.NewCore(fileEncoder, zapcore.AddSync(errWriter), highPriority),
		zapcore.NewCore(fileEncoder, zapcore.AddSync(infoWriter), lowPriority),
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), zapcore.DebugLevel),
	}

	if dsn != "" {
		client, err := sentry.NewClient(sentry.ClientOptions{Dsn: dsn})
		if err != nil {
			return err
		}
		cores = append(cores, NewSentryCore(SentryCoreConfig{Level: zapcore.WarnLevel}, client))
	}

	global = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.Development())
	zap.ReplaceGlobals(global)
	return nil
}

// Sync flushes buffered log entries; call before process exit.
func Sync() error { return global.Sync() }

func Infof(format string, args ...interface{})  { global.Sugar().Infof(format, args...) }
func Warnf(format string, args ...interface{})  { global.Sugar().Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { global.Sugar().Errorf(format, args...) }
func Debugf(format string, args ...interface{}) { global.Sugar().Debugf(format, args...) }

func customCallerEncoder(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	str := caller.String()
	index := strings.Index(str, projectName)
	if index == -1 {
		enc.AppendString(caller.FullPath())
		return
	}
	enc.AppendString(str[index+len(projectName)+1:])
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}
