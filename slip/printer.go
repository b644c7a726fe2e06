package slip

import "log"

// Printer is the narrow port to whatever device renders the payload. The
// application owns slip content only, never the printer protocol.
type Printer interface {
	Print(payload string) error
}

// LogPrinter stands in when no physical printer is paired; it keeps the
// print flow exercisable during development.
type LogPrinter struct{}

func (LogPrinter) Print(payload string) error {
	log.Printf("slip:\n%s", payload)
	return nil
}
