package jsconsole

import "github.com/goliatone/go-logger/glog"

// GoLogger wraps a go-logger Logger into the bridge's Logger contract,
// so console traffic can mirror straight into an application's glog
// stack.
func GoLogger(logger glog.Logger) Logger {
	if logger == nil {
		return nil
	}
	return &goLoggerAdapter{logger: logger}
}

type goLoggerAdapter struct {
	logger glog.Logger
}

func (g *goLoggerAdapter) Trace(msg string, args ...any) { g.logger.Trace(msg, args...) }
func (g *goLoggerAdapter) Debug(msg string, args ...any) { g.logger.Debug(msg, args...) }
func (g *goLoggerAdapter) Info(msg string, args ...any)  { g.logger.Info(msg, args...) }
func (g *goLoggerAdapter) Warn(msg string, args ...any)  { g.logger.Warn(msg, args...) }
func (g *goLoggerAdapter) Error(msg string, args ...any) { g.logger.Error(msg, args...) }
func (g *goLoggerAdapter) Fatal(msg string, args ...any) { g.logger.Fatal(msg, args...) }
