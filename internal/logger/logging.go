package logger

import (
	"log"
	"os"
)

// Setup points the standard logger at the given file. The dashboard owns
// the terminal while it runs, so logs must not go to stdout.
func Setup(path string) error {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	log.SetOutput(logFile)

	return nil
}
