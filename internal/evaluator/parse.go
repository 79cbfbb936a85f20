package evaluator

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ParseQuizSelections parses the trainee's submitted answer indexes from
// either a JSON integer array ("[0,1,2]") or a comma-separated string
// ("0, 1, 2"). A parse failure or a length mismatch yields all zeros:
// a malformed submission is treated permissively, not as an error.
func ParseQuizSelections(raw string, n int) []int {
	selected := make([]int, n)

	parsed, ok := parseIndexes(strings.TrimSpace(raw))
	if !ok || len(parsed) != n {
		return selected
	}
	copy(selected, parsed)
	return selected
}

func parseIndexes(raw string) ([]int, bool) {
	if raw == "" {
		return nil, false
	}

	if strings.HasPrefix(raw, "[") {
		var out []int
		if err := json.Unmarshal([]byte(raw), &out); err != nil {
			return nil, false
		}
		return out, true
	}

	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}
