package middleware

// MetricsRecorder интерфейс для записи HTTP метрик
type MetricsRecorder interface {
	ObserveHTTPRequest(method, route, status string, seconds float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
