package ports

type Observability interface {
	LogInfo(msg string, fields ...Field)
	LogError(msg string, err error, fields ...Field)

	IncCounter(name string, v float64)

	// RecordSkip notes a payload that could not be decoded, identified by
	// its log-store timestamp.
	RecordSkip(timestamp int64, err error)
}

type Field struct {
	Key   string
	Value any
}
