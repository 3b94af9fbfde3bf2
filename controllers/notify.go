package controllers

import "log"

// Notifier receives the transient user-visible notifications that the
// dashboard showed as toasts. The console renders them inline; tests record
// them.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier writes notifications to the standard logger.
type LogNotifier struct{}

func (LogNotifier) Success(message string) {
	log.Printf("[OK] %s", message)
}

func (LogNotifier) Error(message string) {
	log.Printf("[ERROR] %s", message)
}
