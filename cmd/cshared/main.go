// Command cshared builds the logging core as a C shared library:
//
//	go build -buildmode=c-shared -o libmlog.so ./cmd/cshared
//
// The exported surface mirrors the bridge package one-to-one; managed hosts
// P/Invoke these symbols directly. Every function is exception-free at the
// boundary by construction of the bridge layer.
package main

import "C"

import (
	"github.com/lixenwraith/mlog/bridge"
)

//export Init
func Init(logPath *C.char, maxFileSize C.longlong, maxFiles C.int, asyncMode C.int, threadPoolSize C.int, minLogLevel C.int) C.int {
	return C.int(bridge.Init(
		C.GoString(logPath),
		int64(maxFileSize),
		int64(maxFiles),
		int(asyncMode),
		int64(threadPoolSize),
		int64(minLogLevel),
	))
}

//export InitDefault
func InitDefault(logPath *C.char) C.int {
	return C.int(bridge.InitDefault(C.GoString(logPath)))
}

//export LogMessage
func LogMessage(logLevel C.int, message *C.char) {
	if message == nil {
		return
	}
	bridge.LogMessage(int64(logLevel), C.GoString(message))
}

//export LogException
func LogException(exceptionType *C.char, message *C.char, stackTrace *C.char) {
	bridge.LogException(
		goStringOrEmpty(exceptionType),
		goStringOrEmpty(message),
		goStringOrEmpty(stackTrace),
	)
}

//export Flush
func Flush() {
	bridge.Flush()
}

//export SetLogLevel
func SetLogLevel(logLevel C.int) {
	bridge.SetLogLevel(int64(logLevel))
}

//export GetLogLevel
func GetLogLevel() C.int {
	return C.int(bridge.GetLogLevel())
}

//export IsInit
func IsInit() C.int {
	return C.int(bridge.IsInit())
}

//export Terminate
func Terminate() {
	bridge.Terminate()
}

// goStringOrEmpty tolerates null pointers, matching the contract that every
// exception field independently defaults to empty.
func goStringOrEmpty(s *C.char) string {
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

func main() {}
