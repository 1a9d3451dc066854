package registry

import (
	"strconv"
	"strings"

	"github.com/joshuapare/regkit/pkg/types"
)

// Canonical root name lengths. The six well-known roots have distinguishing
// lengths except for HKEY_CLASSES_ROOT and HKEY_CURRENT_USER, which share
// length 17 and are told apart by the character at offset 6 ('L' vs 'U').
const (
	lenUsers           = len(types.NameUsers)           // 10
	lenClassesRoot     = len(types.NameClassesRoot)     // 17
	lenCurrentUser     = len(types.NameCurrentUser)     // 17
	lenLocalMachine    = len(types.NameLocalMachine)    // 18
	lenCurrentConfig   = len(types.NameCurrentConfig)   // 19
	lenPerformanceData = len(types.NamePerformanceData) // 21

	// disambigOffset is the single character position that differs between
	// the two 17-character root names.
	disambigOffset = 6
)

// candidateRoot dispatches on the root segment's length to a candidate hive,
// using the character at disambigOffset to split the one length collision.
// It is a pre-filter only: the caller must still verify the full name.
func candidateRoot(length int, disambig byte) (types.Hive, bool) {
	switch length {
	case lenUsers:
		return types.HiveUsers, true
	case lenClassesRoot: // == lenCurrentUser
		switch disambig {
		case 'L', 'l':
			return types.HiveClassesRoot, true
		case 'U', 'u':
			return types.HiveCurrentUser, true
		}
		return 0, false
	case lenLocalMachine:
		return types.HiveLocalMachine, true
	case lenCurrentConfig:
		return types.HiveCurrentConfig, true
	case lenPerformanceData:
		return types.HivePerformanceData, true
	}
	return 0, false
}

// matchesRoot is the authoritative check: the candidate-length prefix of
// keyName must equal the hive's canonical name, ASCII case-insensitively.
func matchesRoot(prefix string, h types.Hive) bool {
	return strings.EqualFold(prefix, h.String())
}

// Resolve splits a fully-qualified key path into its root hive and the
// remaining subpath. The root segment must case-insensitively equal one of
// the six canonical root names; the subpath (everything after the first
// backslash) is passed through unmodified and may be empty.
//
// The empty path fails with ErrKeyNameEmpty; any other path whose root
// segment names no well-known root fails with ErrInvalidKeyName.
func Resolve(keyName string) (types.Hive, string, error) {
	if keyName == "" {
		return 0, "", types.ErrKeyNameEmpty
	}

	// Isolate the root segment without allocating: its length is the index
	// of the first separator, or the whole string when there is none.
	length := strings.IndexByte(keyName, '\\')
	if length < 0 {
		length = len(keyName)
	}

	var disambig byte
	if length > disambigOffset {
		disambig = keyName[disambigOffset]
	}
	h, ok := candidateRoot(length, disambig)
	if !ok || !matchesRoot(keyName[:length], h) {
		return 0, "", &types.Error{
			Kind: types.ErrKindBadName,
			Msg:  "key name " + strconv.Quote(keyName) + " does not start with a valid registry root",
			Err:  types.ErrInvalidKeyName,
		}
	}

	if length == len(keyName) {
		return h, "", nil
	}
	return h, keyName[length+1:], nil
}
