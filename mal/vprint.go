package mal

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"sync"
	"time"
)

// Verbose turns on VPrintf tracing. MAL_DEBUG=true in the
// environment switches it on at startup.
var Verbose bool = os.Getenv("MAL_DEBUG") == "true"

// OurStderr receives all tracing output.
var OurStderr io.Writer = os.Stderr

// P is a shortcut for a call to fmt.Fprintf that implicitly starts
// and ends its message with a newline.
func P(format string, stuff ...interface{}) {
	fmt.Fprintf(OurStderr, "\n "+format+"\n", stuff...)
}

// get timestamp for logging purposes
func ts() string {
	return time.Now().Format("2006-01-02 15:04:05.999 -0700 MST")
}

var tsPrintfMut sync.Mutex

// time-stamped printf
func TSPrintf(format string, a ...interface{}) {
	tsPrintfMut.Lock()
	fmt.Fprintf(OurStderr, "%s %s ", FileLine(3), ts())
	fmt.Fprintf(OurStderr, format, a...)
	tsPrintfMut.Unlock()
}

func VPrintf(format string, a ...interface{}) {
	if Verbose {
		TSPrintf(format, a...)
	}
}

func FileLine(depth int) string {
	_, fileName, fileLine, ok := runtime.Caller(depth)
	var s string
	if ok {
		s = fmt.Sprintf("%s:%d", path.Base(fileName), fileLine)
	} else {
		s = ""
	}
	return s
}
