// Package fileutil resolves the paths named on the command line into the
// concrete files a search will read.
//
// Resolution is a pure expansion step: every requested path produces zero or
// more outcomes, in input order, before any file is opened. A failed outcome
// carries the message the caller should report; resolution itself never
// returns an error and never stops early, so one bad input cannot hide the
// rest.
//
// Directory handling depends on the recursive flag:
//
//	outcomes := fileutil.Resolve([]string{"notes", "-"}, true)
//	for _, o := range outcomes {
//	    if o.Failed() {
//	        fmt.Fprintln(os.Stderr, o.Reason)
//	        continue
//	    }
//	    // open o.Path
//	}
//
// Recursive walks are sorted by full path so repeated runs over the same
// tree list files in the same order.
package fileutil
