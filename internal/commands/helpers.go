package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/balkashynov/studentcard/internal/db"
)

// parseID parses a positive record ID from a command argument
func parseID(kind, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID '%s'", kind, arg)
	}
	return id, nil
}

// notFound rewrites a store miss into a message naming the record
func notFound(err error, kind string, id int64) error {
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("%s #%d not found", kind, id)
	}
	return err
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:max(n, 0)])
	}
	return string(r[:n-3]) + "..."
}
