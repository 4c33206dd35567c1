package postgre

import (
	"testing"

	"insight-srv/internal/analysis/repository"
	"insight-srv/internal/sqlboiler"
	"insight-srv/pkg/log"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/stretchr/testify/assert"
)

func TestBuildListAnalysesQuery(t *testing.T) {
	r := &implRepository{l: log.NewNop()}

	tcs := map[string]struct {
		opts     repository.ListAnalysesOptions
		contains []string
		absent   []string
		args     []interface{}
	}{
		"all filters": {
			opts: repository.ListAnalysesOptions{UserID: "u1", Platform: "instagram", Status: "COMPLETED", Limit: 10, Offset: 20},
			contains: []string{
				`FROM "analyses"`,
				"user_id = $1",
				"platform = $2",
				"status = $3",
				"ORDER BY created_at DESC",
				"LIMIT 10",
				"OFFSET 20",
			},
			args: []interface{}{"u1", "instagram", "COMPLETED"},
		},
		"owner only, first page": {
			opts:     repository.ListAnalysesOptions{UserID: "u1", Limit: 15},
			contains: []string{"user_id = $1", "LIMIT 15"},
			absent:   []string{"platform", "OFFSET"},
			args:     []interface{}{"u1"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			q := sqlboiler.Analyses(r.buildListAnalysesQuery(tc.opts)...)
			query, args := queries.BuildQuery(q.Query)

			for _, s := range tc.contains {
				assert.Contains(t, query, s)
			}
			for _, s := range tc.absent {
				assert.NotContains(t, query, s)
			}
			assert.Equal(t, tc.args, args)
		})
	}
}
