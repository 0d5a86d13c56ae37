package corpus

import (
	"database/sql"
	"fmt"
	"io"
	"strings"
)

// Stream reads stored documents one row at a time and yields their characters.
type Stream struct {
	rows *sql.Rows
	cur  *strings.Reader
}

// ReadRune returns the next character of the corpus, moving on to the next
// document when the current one is exhausted. It returns io.EOF after the
// last document.
func (s *Stream) ReadRune() (rune, int, error) {
	for {
		if s.cur != nil {
			if c, size, err := s.cur.ReadRune(); err == nil {
				return c, size, nil
			}
			s.cur = nil
		}

		if !s.rows.Next() {
			if err := s.rows.Err(); err != nil {
				return 0, 0, fmt.Errorf("corpus row error: %w", err)
			}
			return 0, 0, io.EOF
		}

		var body string
		if err := s.rows.Scan(&body); err != nil {
			return 0, 0, fmt.Errorf("could not scan corpus document: %w", err)
		}
		s.cur = strings.NewReader(body)
	}
}

// Close releases the underlying rows.
func (s *Stream) Close() error {
	return s.rows.Close()
}
