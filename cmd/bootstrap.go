package cmd

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// bootstrapLogger logs to stderr until the service or client has its own logger.
// bootstrapLogger 在服务端或客户端日志器就绪前输出到 stderr
var bootstrapLogger = newBootstrapLogger(zapcore.Lock(os.Stderr), os.Getenv("DEBUG") != "")

// newBootstrapLogger builds the colored console logger shared by the run and web commands.
// newBootstrapLogger 构造控制台日志器，DEBUG 打开时输出调试级别
func newBootstrapLogger(w zapcore.WriteSyncer, debug bool) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	ec.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(ec), w, level), zap.AddCaller())
}
