package logging

import (
	"log"
	"os"
)

var (
	InfoLog = log.New(os.Stdout, "INFO: ", log.Ltime|log.Lshortfile)
	WarnLog = log.New(os.Stdout, "WARN: ", log.Ltime|log.Lshortfile)
	ErrLog  = log.New(os.Stderr, "ERROR: ", log.Ltime|log.Lshortfile)
)
