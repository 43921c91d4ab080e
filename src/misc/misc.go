// contains misc helper functions for sga: flag checking, graph-file sanity
// checks and the fatal-error convention shared by every subcommand
package misc

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrorCheck throws a fatal error to the log and exits the program. This is
// the funnel for precondition violations and unrecoverable I/O errors -
// they are implementer bugs or environment failures, not runtime conditions
// a visitor can recover from.
func ErrorCheck(msg error) {
	if msg != nil {
		log.Fatalf("aborted\n\nerror --> %v\n", msg)
	}
}

// CheckRequiredFlags reports every required flag the user failed to set,
// so a subcommand invocation missing several flags is corrected in one go
// rather than one error at a time.
func CheckRequiredFlags(flags *pflag.FlagSet) error {
	var missing []string
	flags.VisitAll(func(flag *pflag.Flag) {
		required := flag.Annotations[cobra.BashCompOneRequiredFlag]
		if len(required) > 0 && required[0] == "true" && !flag.Changed {
			missing = append(missing, flag.Name)
		}
	})
	if len(missing) > 0 {
		return fmt.Errorf("required flag(s) not set: %s", strings.Join(missing, ", "))
	}
	return nil
}

// StartLogging opens (creating parent directories as needed) a log file
// for a subcommand to write its progress to
func StartLogging(logFile string) *os.File {
	if dir := filepath.Dir(logFile); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			log.Fatalf("can't create directory for log file: %v", err)
		}
	}
	logFH, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		log.Fatal(err)
	}
	return logFH
}

// graphFileExts are the input forms the graph loader accepts: an ASQG
// file, optionally gzipped, or a tarball bundling one
var graphFileExts = []string{".asqg", ".asqg.gz", ".tar", ".tar.gz", ".tgz"}

// CheckGraphFile checks that a graph input file can be read and carries
// one of the recognised extensions
func CheckGraphFile(file string) error {
	if _, err := os.Stat(file); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("file does not exist: %v", file)
		}
		return fmt.Errorf("can't access file (check permissions): %v", file)
	}
	for _, ext := range graphFileExts {
		if strings.HasSuffix(file, ext) {
			return nil
		}
	}
	return fmt.Errorf("does not look like a string graph file (%s): %v", strings.Join(graphFileExts, "/"), file)
}
