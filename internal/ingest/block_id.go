package ingest

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

type blockTag int

const (
	tagNumber blockTag = iota
	tagNewest
	tagOldest
)

type blockSelector struct {
	tag    blockTag
	number string
}

var (
	hexNumberRe     = regexp.MustCompile(`^0x[0-9a-f]+$`)
	decimalNumberRe = regexp.MustCompile(`^[0-9]+$`)
)

// parseBlockID maps an id to a selector. Pending, finalized and safe have no
// meaning for a webhook-fed store and resolve to the newest block.
func parseBlockID(id string) (blockSelector, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	switch {
	case id == "latest", id == "pending", id == "finalized", id == "safe":
		return blockSelector{tag: tagNewest}, nil
	case id == "earliest":
		return blockSelector{tag: tagOldest}, nil
	case hexNumberRe.MatchString(id):
		return blockSelector{number: id}, nil
	case decimalNumberRe.MatchString(id):
		n, ok := new(big.Int).SetString(id, 10)
		if !ok {
			return blockSelector{}, fmt.Errorf("%w: %q", ErrInvalidBlockID, id)
		}
		return blockSelector{number: "0x" + n.Text(16)}, nil
	default:
		return blockSelector{}, fmt.Errorf("%w: %q", ErrInvalidBlockID, id)
	}
}
