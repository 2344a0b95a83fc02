package template

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

func cacheKeyMessageList(f MessageFilter) string {
	return "templates:message:list:" + filterHash(f)
}

func cacheKeySubjectList(f SubjectFilter) string {
	return "templates:subject:list:" + filterHash(f)
}

// filterHash hashes the JSON form so free-text values cannot alias each other.
func filterHash(f any) string {
	raw, _ := json.Marshal(f)
	hash := sha256.Sum256(raw)
	return hex.EncodeToString(hash[:])
}
