package logger

import (
	"io"
	"log"
	"os"
)

var (
	infoLog  *log.Logger
	warnLog  *log.Logger
	errorLog *log.Logger
	logFile  *os.File
)

// InitLogger routes log output to both stdout and the given file.
func InitLogger(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	logFile = f

	out := io.MultiWriter(os.Stdout, f)
	infoLog = log.New(out, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	warnLog = log.New(out, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	errorLog = log.New(out, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	return nil
}

func Close() {
	if logFile != nil {
		logFile.Close()
	}
}

// ensure creates console-only loggers so packages can log before
// InitLogger runs (tests, CLI startup).
func ensure() {
	if infoLog == nil {
		infoLog = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
		warnLog = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
		errorLog = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	}
}

func Infof(format string, v ...interface{}) {
	ensure()
	infoLog.Printf(format, v...)
}

func Warnf(format string, v ...interface{}) {
	ensure()
	warnLog.Printf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	ensure()
	errorLog.Printf(format, v...)
}
