package logger

// MockLogger discards everything; handy default for tests and embeddings
// that do not care about output.
type MockLogger struct{}

var _ Logger = (*MockLogger)(nil)

func (m MockLogger) SetLogLevel(level string) {}

func (m MockLogger) Info(msg string, fields ...Field)  {}
func (m MockLogger) Warn(msg string, fields ...Field)  {}
func (m MockLogger) Error(msg string, fields ...Field) {}
func (m MockLogger) Debug(msg string, fields ...Field) {}

func (m MockLogger) Infof(format string, args ...interface{})  {}
func (m MockLogger) Warnf(format string, args ...interface{})  {}
func (m MockLogger) Errorf(format string, args ...interface{}) {}
func (m MockLogger) Debugf(format string, args ...interface{}) {}
