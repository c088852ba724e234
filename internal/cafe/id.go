package cafe

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID generates a prefixed record id from the current time plus a random
// suffix. Collisions are operationally negligible; global uniqueness is not
// a hard requirement here.
func NewID(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	rand := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return prefix + "_" + ts + rand
}
