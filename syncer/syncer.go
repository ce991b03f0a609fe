package syncer

import (
	"fmt"
	"os"
	"path/filepath"

	"sync_assets/deps"
	"sync_assets/mapping"
	"sync_assets/util/file"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sirupsen/logrus"
)

var (
	copyLabel = color.New(color.FgGreen).SprintFunc()
	skipLabel = color.New(color.FgYellow).SprintFunc()
)

// Result represents amount of processed entries by outcome
type Result struct {
	Copied  int
	Skipped int
}

// Total returns amount of processed entries
func (res Result) Total() int {
	return res.Copied + res.Skipped
}

// Sync copies every entry of <entries> from the reference root to the target root in order, printing an action line
// per entry and a summary line to stdout.
//
// Entries with a missing source file are skipped. Any other failure stops the run and is returned without printing
// the summary.
func (r repo) Sync(entries []mapping.Entry) (Result, error) {
	r.log.WithFields(logrus.Fields{
		"reference": r.roots.Reference,
		"target":    r.roots.Target,
		"entries":   len(entries),
	}).Info("Syncing assets")

	r.tw.AppendHeader(table.Row{"Action", "Source", "Destination", "Size"})

	var res Result
	for _, entry := range entries {
		copied, err := r.syncEntry(entry)
		if err != nil {
			return res, errors.Wrapf(err, "Sync entry %v", entry.Src)
		}
		if copied {
			res.Copied++
		} else {
			res.Skipped++
		}
	}

	fmt.Printf("\nDone: %v copied, %v skipped.\n", res.Copied, res.Skipped)
	r.tw.AppendFooter(table.Row{"", "", "Total", res.Total()})
	return res, nil
}

// syncEntry copies file of <entry>, returning false if source file is missing
func (r repo) syncEntry(entry mapping.Entry) (bool, error) {
	src := filepath.Join(r.roots.Reference, filepath.FromSlash(entry.Src))
	dst := filepath.Join(r.roots.Target, filepath.FromSlash(entry.Dst))
	r.log.WithFields(logrus.Fields{"src": src, "dst": dst}).Debug("Resolved entry")

	exists, err := file.IsRegular(src)
	if err != nil {
		return false, errors.Wrap(err, "Check source")
	}
	if !exists {
		fmt.Printf("  %v  %v (not found in %v)\n", skipLabel("SKIP"), entry.Src, r.roots.ReferenceName())
		report(r, "SKIP", entry, "")
		return false, nil
	}

	if err := file.EnsureParent(dst); err != nil {
		return false, err
	}
	if err := file.Copy(src, dst); err != nil {
		return false, errors.Wrap(err, "Copy file")
	}
	fmt.Printf("  %v  %v\n", copyLabel("COPY"), entry.Src)
	report(r, "COPY", entry, fileSize(dst))
	return true, nil
}

// fileSize returns size of file at <path> in bytes or empty string if it can not be read
func fileSize(path string) any {
	info, err := os.Stat(path)
	if err != nil {
		return ""
	}
	return info.Size()
}

// report appends row describing <action> on <entry> to the table writer of <g>
func report(g deps.Global, action string, entry mapping.Entry, size any) {
	dst := entry.Dst
	if action == "SKIP" {
		dst = ""
	}
	g.TW().AppendRow(table.Row{action, entry.Src, dst, size})
	g.Log().WithFields(logrus.Fields{"action": action, "src": entry.Src}).Trace("Entry processed")
}
