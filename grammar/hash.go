package grammar

import (
	"encoding/json"

	"github.com/minio/highwayhash"
)

var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Fingerprint returns a stable 64-bit content hash of the node's canonical
// JSON projection. Equal projections hash equally across processes.
func Fingerprint(node Grammarer) (uint64, error) {
	data, err := json.Marshal(node.GrammarNode().Grammar())
	if err != nil {
		return 0, err
	}
	hash, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}
