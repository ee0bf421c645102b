package ports

// Logger is the leveled logger services report through.
type Logger interface {
	Error(format string, v ...any)
	Info(format string, v ...any)
	Verbose(format string, v ...any)
	Debug(format string, v ...any)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Error(string, ...any)   {}
func (NopLogger) Info(string, ...any)    {}
func (NopLogger) Verbose(string, ...any) {}
func (NopLogger) Debug(string, ...any)   {}
