package console

import (
	"log"
	"time"
)

// logAction writes one line per completed menu action with its latency.
// Use with defer: defer logAction("book", time.Now()).
func logAction(name string, start time.Time) {
	log.Printf("action=%s took=%s", name, time.Since(start))
}
