/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package logger

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/ecertify/ecertify/configs"
	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// log file names, one per concern
const (
	LogName     = "log"
	PanicName   = "panic"
	SessionName = "session"
	LedgerName  = "ledger"
	StorageName = "storage"
	AccessName  = "access"
)

var LogFiles = []string{
	LogName,
	PanicName,
	SessionName,
	LedgerName,
	StorageName,
	AccessName,
}

type Logger interface {
	Log(level string, msg string)
	Pnc(msg string)
	Session(level string, msg string)
	Ledger(level string, msg string)
	Storage(level string, msg string)
	Access(level string, msg string)
	Sync() error
}

type logs struct {
	logpath map[string]string
	log     map[string]*zap.Logger
}

var _ Logger = (*logs)(nil)

// NewLogs opens one rotating log file per entry of logfiles.
// Messages for a concern without an entry are dropped.
func NewLogs(logfiles map[string]string) (Logger, error) {
	var (
		logpath = make(map[string]string, len(logfiles))
		logCli  = make(map[string]*zap.Logger, len(logfiles))
	)
	for name, fpath := range logfiles {
		dir := getFilePath(fpath)
		_, err := os.Stat(dir)
		if err != nil {
			err = os.MkdirAll(dir, configs.DirMode)
			if err != nil {
				return nil, errors.Errorf("%v,%v", dir, err)
			}
		}
		newCore := zapcore.NewCore(getEncoder(), getWriteSyncer(fpath), zap.NewAtomicLevel())
		logpath[name] = fpath
		logCli[name] = zap.New(newCore, zap.AddCaller())
		logCli[name].Sugar().Infof("%v", fpath)
	}
	return &logs{
		logpath: logpath,
		log:     logCli,
	}, nil
}

// NewWorkspaceLogs opens every concern's log file under dir.
func NewWorkspaceLogs(dir string) (Logger, error) {
	files := make(map[string]string, len(LogFiles))
	for _, name := range LogFiles {
		files[name] = filepath.Join(dir, name+".log")
	}
	return NewLogs(files)
}

// Discard returns a logger without outputs.
func Discard() Logger {
	return &logs{
		logpath: map[string]string{},
		log:     map[string]*zap.Logger{},
	}
}

func (l *logs) Log(level string, msg string) {
	l.put(LogName, level, msg)
}

func (l *logs) Pnc(msg string) {
	l.put(PanicName, "err", msg)
}

func (l *logs) Session(level string, msg string) {
	l.put(SessionName, level, msg)
}

func (l *logs) Ledger(level string, msg string) {
	l.put(LedgerName, level, msg)
}

func (l *logs) Storage(level string, msg string) {
	l.put(StorageName, level, msg)
}

func (l *logs) Access(level string, msg string) {
	l.put(AccessName, level, msg)
}

func (l *logs) Sync() error {
	var first error
	for name, v := range l.log {
		if err := v.Sync(); err != nil && first == nil {
			first = errors.Wrapf(err, "[%s]", name)
		}
	}
	return first
}

func (l *logs) put(name, level, msg string) {
	v, ok := l.log[name]
	if !ok {
		return
	}
	_, file, line, _ := runtime.Caller(2)
	switch level {
	case "info":
		v.Sugar().Infof("[%v:%d] %s", filepath.Base(file), line, msg)
	case "warn":
		v.Sugar().Warnf("[%v:%d] %s", filepath.Base(file), line, msg)
	case "err":
		v.Sugar().Errorf("[%v:%d] %s", filepath.Base(file), line, msg)
	}
}

func getFilePath(fpath string) string {
	path, _ := filepath.Abs(fpath)
	index := strings.LastIndex(path, string(os.PathSeparator))
	return path[:index]
}

func getEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(
		zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller_line",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    cEncodeLevel,
			EncodeTime:     cEncodeTime,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   nil,
		})
}

func getWriteSyncer(fpath string) zapcore.WriteSyncer {
	lumberJackLogger := &lumberjack.Logger{
		Filename:   fpath,
		MaxSize:    10,
		MaxBackups: 99,
		MaxAge:     180,
		LocalTime:  true,
		Compress:   true,
	}
	return zapcore.AddSync(lumberJackLogger)
}

func cEncodeLevel(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + level.CapitalString() + "]")
}

func cEncodeTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format("2006-01-02 15:04:05") + "]")
}
