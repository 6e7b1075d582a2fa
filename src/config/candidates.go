package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/appna-io/apx-linter/src/logging"
)

// candidate reads one well-known file and reports whether it produced a
// result. Any failure means "try the next one".
type candidate[T any] struct {
	name  string
	parse func(data []byte) (T, error)
}

// firstOf probes candidates in order inside dir and stops at the first
// file that exists, reads and parses. The returned name is the file that
// won, or "" when none did.
func firstOf[T any](dir string, candidates []candidate[T]) (T, string, bool) {
	log := logging.Get("config")
	var zero T
	for _, c := range candidates {
		path := filepath.Join(dir, c.name)
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Debug().Err(err).Str("file", c.name).Msg("unreadable, trying next")
			}
			continue
		}
		v, err := c.parse(data)
		if err != nil {
			log.Debug().Err(err).Str("file", c.name).Msg("unparseable, trying next")
			continue
		}
		log.Debug().Str("file", c.name).Msg("using")
		return v, c.name, true
	}
	return zero, "", false
}
