package logger

import (
	"io"
	"log"
	"os"
	"sync"

	"parallel-pi/internal/config"
)

var (
	fileMutex sync.Mutex
	INFO      *log.Logger
	ERROR     *log.Logger
	logFile   *os.File
)

const flags = log.Ldate | log.Ltime | log.Lshortfile

func LogINFO(s string) {
	if INFO == nil {
		return
	}
	INFO.Println(s)
}

func LogERROR(s string) {
	if ERROR == nil {
		return
	}
	ERROR.Println(s)
}

type lockedFile struct {
	file *os.File
}

func (lf *lockedFile) Write(p []byte) (n int, err error) {
	fileMutex.Lock()
	defer fileMutex.Unlock()
	return lf.file.Write(p)
}

// SetOutput points both loggers at w.
func SetOutput(w io.Writer) {
	INFO = log.New(w, "INFO: ", flags)
	ERROR = log.New(w, "ERROR: ", flags)
}

// initFile opens path for appending; on failure or an empty path the loggers
// write to fallback instead.
func initFile(path string, fallback io.Writer) {
	if path == "" {
		SetOutput(fallback)
		return
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Printf("Failed to open log file: %v. Logging to fallback output", err)
		SetOutput(fallback)
		return
	}

	logFile = f
	SetOutput(&lockedFile{file: f})
}

func InitAgentLogger() {
	initFile(config.AppConfig.AgentLogFilePath, os.Stderr)
}

func InitClientLogger() {
	initFile(config.AppConfig.ClientLogFilePath, os.Stderr)
}

// InitCLILogger keeps stdout free for results: without PI_LOG_FILE_PATH the
// log is discarded.
func InitCLILogger() {
	initFile(config.AppConfig.CLILogFilePath, io.Discard)
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
