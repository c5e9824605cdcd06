package core

// Logger is implemented by the app loggers.
// args may hold errors, extra data (map[string]interface{}) and the concerned teacher.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
