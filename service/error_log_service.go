package service

import (
	"sidomulyo/core"
)

// ErrorLogService exposes the in-memory error log to admins
type ErrorLogService struct {
	logger *core.ErrorLogger
}

// NewErrorLogService constructs an error log service
func NewErrorLogService(logger *core.ErrorLogger) *ErrorLogService {
	return &ErrorLogService{logger: logger}
}

// List returns recorded errors, latest first
func (s *ErrorLogService) List() []*core.ErrorLog {
	return s.logger.GetErrorLogs()
}

// Get returns a single entry or nil
func (s *ErrorLogService) Get(id int) *core.ErrorLog {
	return s.logger.GetErrorLogByID(id)
}

// Clear removes all entries
func (s *ErrorLogService) Clear() {
	s.logger.ClearErrorLogs()
}
