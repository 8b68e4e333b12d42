package logging

var _ Logger = nopLogger{}

type nopLogger struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...any)        {}
func (nopLogger) Info(string, ...any)         {}
func (nopLogger) Warn(string, ...any)         {}
func (nopLogger) Error(string, ...any)        {}
func (n nopLogger) WithKV(string, any) Logger { return n }
func (n nopLogger) WithName(string) Logger    { return n }
func (nopLogger) Name() string                { return "nop" }
