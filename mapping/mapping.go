package mapping

import (
	_ "embed"
	"fmt"
	"path"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"

	"sync_assets/util/copier"
)

//go:embed default.yaml
var defMappingBytes []byte

// Entry represents one asset to copy.
//
// Src is relative to the reference root, Dst is relative to the target root. Both use forward slashes.
type Entry struct {
	Src string `koanf:"src"`
	Dst string `koanf:"dst"`
}

// Table represents ordered, read-only list of entries
type Table struct {
	entries []Entry
}

// root represents layout of the mapping document.
//
// Entries is a list because koanf splits map keys by '.' and maps do not keep order.
type root struct {
	Entries []Entry `koanf:"entries"`
}

// InvalidEntryError represents an entry rejected by validation
type InvalidEntryError struct {
	Entry  Entry
	Reason string
}

func (e InvalidEntryError) Error() string {
	return fmt.Sprintf("%v; Entry: '%v' -> '%v'", e.Reason, e.Entry.Src, e.Entry.Dst)
}

// Default returns the table embedded into the program
func Default() (Table, error) {
	t, err := Parse(defMappingBytes)
	return t, errors.Wrap(err, "Read default mapping")
}

// Parse returns validated table decoded from YAML <data>
func Parse(data []byte) (Table, error) {
	ko := koanf.New(".")
	if err := ko.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return Table{}, errors.Wrap(err, "Load mapping")
	}

	var r root
	err := ko.UnmarshalWithConf("", &r, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused: true,
			Result:      &r,
			ZeroFields:  true,
		},
	})
	if err != nil {
		return Table{}, errors.Wrap(err, "Decode mapping")
	}

	if err := validate(r.Entries); err != nil {
		return Table{}, errors.Wrap(err, "Validate mapping")
	}
	return Table{entries: r.Entries}, nil
}

// Entries returns deep copy of entries in <t>
func (t Table) Entries() []Entry {
	return copier.MustDeep(t.entries)
}

// Len returns amount of entries in <t>
func (t Table) Len() int {
	return len(t.entries)
}

// validate returns error if any of <entries> has unusable paths or destinations repeat
func validate(entries []Entry) error {
	if len(entries) == 0 {
		return errors.New("Mapping has no entries")
	}
	for _, entry := range entries {
		for _, p := range []string{entry.Src, entry.Dst} {
			if reason := checkPath(p); reason != "" {
				return InvalidEntryError{Entry: entry, Reason: reason}
			}
		}
	}
	dups := lo.FindDuplicatesBy(entries, func(entry Entry) string {
		return entry.Dst
	})
	if len(dups) > 0 {
		return InvalidEntryError{Entry: dups[0], Reason: "Destination is used more than once"}
	}
	return nil
}

// checkPath returns reason why relative path <p> can not be used, or empty string if it can
func checkPath(p string) string {
	switch {
	case p == "":
		return "Empty path"
	case path.IsAbs(p) || strings.Contains(p, `\`) || strings.Contains(p, ":"):
		return "Path must be relative and use forward slashes"
	case path.Clean(p) != p:
		return "Path is not clean"
	case p == ".":
		return "Path points to the root itself"
	case p == ".." || strings.HasPrefix(p, "../"):
		return "Path leaves the root"
	}
	return ""
}
