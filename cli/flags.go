package cli

import (
	"github.com/cockroachdb/errors"
	goFlags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

// Flags represents command line flags.
//
// Every flag is optional: running without arguments syncs the default reference tree into the directory of the
// executable.
type Flags struct {
	Version      bool         `short:"v" long:"version"      description:"Print the program version"`
	LogLevel     logrus.Level `short:"l" long:"logLevel"     description:"Logging level. Can be from 0 (least verbose) to 6 (most verbose)"`
	ReferenceDir string       `short:"r" long:"referenceDir" description:"Directory to copy assets from. Defaults to UmaTools next to the program directory"`
	TargetDir    string       `short:"t" long:"targetDir"    description:"Directory to copy assets to. Defaults to the program directory"`
	Table        bool         `long:"table"                  description:"Print a table of processed entries to stderr after the run"`
}

// Parse returns a structure initialized with command line arguments and error if parsing failed
func Parse() (Flags, error) {
	flags := Flags{
		// Set defaults
		LogLevel: logrus.InfoLevel,
	}
	parser := goFlags.NewParser(&flags, goFlags.Options(goFlags.Default))
	_, err := parser.Parse()
	return flags, errors.Wrap(err, "Parse CLI arguments")
}

// IsErrOfType returns true if <err> is of type <t>
func IsErrOfType(err error, t goFlags.ErrorType) bool {
	goFlagsErr := &goFlags.Error{}
	if ok := errors.As(err, &goFlagsErr); ok && goFlagsErr.Type == t {
		return true
	}
	return false
}
