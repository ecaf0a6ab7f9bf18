package source

import (
	"log"
	"time"
)

// LogRequest logs an API request being made.
func LogRequest(source, method, url string) {
	log.Printf("[%s] %s %s", source, method, url)
}

// LogResponse logs an API response received.
func LogResponse(source string, statusCode int, duration time.Duration, resultCount int) {
	log.Printf("[%s] response status=%d duration=%dms records=%d",
		source, statusCode, duration.Milliseconds(), resultCount)
}

// LogError logs an error from a source operation.
func LogError(source, operation string, err error) {
	log.Printf("[%s] %s error: %v", source, operation, err)
}
