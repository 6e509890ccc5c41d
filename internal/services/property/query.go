package property

import (
	"regexp"
	"strings"
)

// QueryKind tells the search endpoint how to treat a free-text query.
type QueryKind int

const (
	// QueryGeneral is substring-matched across address, city, zip and title.
	QueryGeneral QueryKind = iota
	// QuerySearchableID is a short listing id ("1234" or "LB1234"); it
	// resolves by direct lookup and returns at most one record.
	QuerySearchableID
	// QueryZipCode is a 5-digit zip code.
	QueryZipCode
)

var (
	searchableIDPattern = regexp.MustCompile(`^(?i:LB)?([0-9]{4})$`)
	zipCodePattern      = regexp.MustCompile(`^[0-9]{5}$`)
)

// ClassifyQuery decides how a free-text query should be resolved and returns
// the normalized value: the bare 4-digit id for QuerySearchableID, the query
// itself otherwise.
func ClassifyQuery(q string) (QueryKind, string) {
	q = strings.TrimSpace(q)

	if m := searchableIDPattern.FindStringSubmatch(q); m != nil {
		return QuerySearchableID, m[1]
	}
	if zipCodePattern.MatchString(q) {
		return QueryZipCode, q
	}
	return QueryGeneral, q
}
