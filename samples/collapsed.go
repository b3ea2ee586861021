package samples

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Collapsed renders the container in folded-stack text form, one
// "key count" line per entry, keys sorted for deterministic output.
func (s StackToSampleCount) Collapsed() string {
	keys := lo.Keys(s)
	sort.Strings(keys)

	var res strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&res, "%s %d\n", key, s[key])
	}
	return res.String()
}

// ParseCollapsed reads folded-stack text. Counts for a key appearing on
// multiple lines accumulate. Blank lines are skipped.
func ParseCollapsed(r io.Reader) (StackToSampleCount, error) {
	res := StackToSampleCount{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sep := strings.LastIndexByte(line, ' ')
		if sep < 1 {
			return nil, errors.Errorf("malformed collapsed line %q", line)
		}
		count, err := strconv.Atoi(line[sep+1:])
		if err != nil {
			return nil, errors.Wrapf(err, "malformed sample count in %q", line)
		}
		if count < 0 {
			return nil, errors.Errorf("negative sample count in %q", line)
		}
		res.Add(line[:sep], count)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read collapsed input")
	}
	return res, nil
}
