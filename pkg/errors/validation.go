package errors

import (
	"strings"
	"unicode"
)

// ValidateNodeID validates a node identifier for safety and correctness.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No whitespace (edge-list files are whitespace-delimited)
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidNode, "node ID cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidNode, "node ID too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNode, "node ID contains invalid control characters")
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidNode, "node ID cannot contain whitespace")
		}
	}

	return nil
}

// ValidateOrder validates a traversal order name.
func ValidateOrder(order string) error {
	switch order {
	case "dfs", "bfs":
		return nil
	}
	return New(ErrCodeInvalidOrder, "order must be dfs or bfs, got %q", order)
}

// ValidateFormat validates a render output format.
func ValidateFormat(format string) error {
	switch format {
	case "dot", "svg":
		return nil
	}
	return New(ErrCodeInvalidFormat, "format must be dot or svg, got %q", format)
}

// ValidateRankdir validates a Graphviz layout direction.
func ValidateRankdir(rankdir string) error {
	if rankdir == "" {
		return nil // empty selects the default
	}
	switch strings.ToUpper(rankdir) {
	case "TB", "LR", "BT", "RL":
		return nil
	}
	return New(ErrCodeInvalidInput, "rankdir must be TB, LR, BT, or RL, got %q", rankdir)
}
