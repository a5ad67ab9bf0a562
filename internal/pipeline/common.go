package pipeline

// Logger is the component-tagged logger the pipeline reports through
type Logger interface {
	Debug(component string, message string, fields map[string]interface{})
	Info(component string, message string, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Error(component string, message string, err error, fields map[string]interface{})
}
