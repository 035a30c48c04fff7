package core

import (
	"encoding/json"
	"fmt"
	"runtime"
	"sync"
	"time"
)

// ErrorLog is one recorded server-side failure.
type ErrorLog struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Source    string    `json:"source"`
	Message   string    `json:"message"`
	Detail    string    `json:"detail,omitempty"`
	Stack     string    `json:"stack,omitempty"`
	Context   string    `json:"context,omitempty"`
}

// ErrorLogger keeps the most recent errors in memory for the admin error-log endpoint.
type ErrorLogger struct {
	logs      []*ErrorLog
	logsMap   map[int]*ErrorLog
	mu        sync.RWMutex
	maxLogs   int
	idCounter int
}

var ErrorLoggerInstance = NewErrorLogger(100)

// NewErrorLogger returns a logger that keeps at most maxLogs entries.
func NewErrorLogger(maxLogs int) *ErrorLogger {
	if maxLogs <= 0 {
		maxLogs = 100
	}
	return &ErrorLogger{
		logs:    make([]*ErrorLog, 0, maxLogs),
		logsMap: make(map[int]*ErrorLog),
		maxLogs: maxLogs,
	}
}

// LogError records an error log entry
func (e *ErrorLogger) LogError(level, source, message, detail string, contextData map[string]interface{}) {
	stack := getStackTrace(3)

	contextJSON := ""
	if contextData != nil {
		if data, err := json.Marshal(contextData); err == nil {
			contextJSON = string(data)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// Drop the oldest entry once full
	if len(e.logs) >= e.maxLogs {
		old := e.logs[0]
		delete(e.logsMap, old.ID)
		e.logs = e.logs[1:]
	}

	e.idCounter++
	entry := &ErrorLog{
		ID:        e.idCounter,
		Timestamp: time.Now(),
		Level:     level,
		Source:    source,
		Message:   message,
		Detail:    detail,
		Stack:     stack,
		Context:   contextJSON,
	}

	e.logs = append(e.logs, entry)
	e.logsMap[entry.ID] = entry
}

// GetErrorLogs returns the recorded entries, latest first
func (e *ErrorLogger) GetErrorLogs() []*ErrorLog {
	e.mu.RLock()
	defer e.mu.RUnlock()

	total := len(e.logs)
	result := make([]*ErrorLog, total)
	for i := 0; i < total; i++ {
		result[i] = e.logs[total-1-i]
	}
	return result
}

// GetErrorLogByID returns a single entry, or nil
func (e *ErrorLogger) GetErrorLogByID(id int) *ErrorLog {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.logsMap[id]
}

// ClearErrorLogs removes all entries
func (e *ErrorLogger) ClearErrorLogs() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.logs = make([]*ErrorLog, 0, e.maxLogs)
	e.logsMap = make(map[int]*ErrorLog)
	e.idCounter = 0
}

func getStackTrace(skip int) string {
	const maxDepth = 10
	var stack string

	for i := skip; i < skip+maxDepth; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		funcName := "unknown"
		if fn := runtime.FuncForPC(pc); fn != nil {
			funcName = fn.Name()
		}
		stack += fmt.Sprintf("%s:%d %s\n", file, line, funcName)
	}

	return stack
}

// LogErrorWithContext records an error with request context
func LogErrorWithContext(source, message, detail string, context map[string]interface{}) {
	ErrorLoggerInstance.LogError("ERROR", source, message, detail, context)
}

// LogWarn records a warning
func LogWarn(source, message, detail string) {
	ErrorLoggerInstance.LogError("WARN", source, message, detail, nil)
}
