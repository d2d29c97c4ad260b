package wrangle

import (
	"fmt"
	"strconv"

	"tlog.app/go/errors"
)

// Word is a 32-bit word as written in the grammar header, such as the
// module magic number.
type Word uint32

func (v Word) String() string {
	return fmt.Sprintf("0x%08x", uint32(v))
}

// ParseWord accepts the grammar's textual form of a word ("0x07230203").
// An empty string is the zero word.
func ParseWord(raw string) (Word, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 0, 32)
	if err != nil {
		return 0, errors.Wrap(err, "parse word %q", raw)
	}
	return Word(v), nil
}

// Version formats the grammar's major/minor version and revision, or returns
// "" when the document carried none.
func (g *Grammar) Version() string {
	if g.MajorVersion == 0 && g.MinorVersion == 0 {
		return ""
	}
	return fmt.Sprintf("%d.%d revision %d", g.MajorVersion, g.MinorVersion, g.Revision)
}
