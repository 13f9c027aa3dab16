package logging

// MockLogger records messages for assertions in tests. It is safe for the
// single-goroutine use our tests make of it.
type MockLogger struct {
	Messages []string
}

// NewMock returns an empty MockLogger.
func NewMock() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.Messages = append(m.Messages, msg) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.Messages = append(m.Messages, msg) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.Messages = append(m.Messages, msg) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.Messages = append(m.Messages, msg) }

func (m *MockLogger) WithError(err error) Logger                     { return m }
func (m *MockLogger) WithField(key string, value interface{}) Logger { return m }
