// Package sqlboiler holds the row types of the Postgres tables and the query
// helpers the repositories build on.
package sqlboiler

import (
	"github.com/aarondl/sqlboiler/v4/drivers"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

var dialect = drivers.Dialect{
	LQ: 0x22,
	RQ: 0x22,

	UseIndexPlaceholders: true,
	UseDefaultKeyword:    true,
}

// TableNames lists the tables owned by the service.
var TableNames = struct {
	Analyses string
	Reports  string
}{
	Analyses: "analyses",
	Reports:  "reports",
}

// NewQuery initializes a Postgres query with the given mods.
func NewQuery(mods ...qm.QueryMod) *queries.Query {
	q := &queries.Query{}
	queries.SetDialect(q, &dialect)
	qm.Apply(q, mods...)
	return q
}
