package postgre

import (
	"testing"

	"insight-srv/internal/report/repository"
	"insight-srv/internal/sqlboiler"
	"insight-srv/pkg/log"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/stretchr/testify/assert"
)

func TestBuildFindByParamsHashQuery(t *testing.T) {
	r := &implRepository{l: log.NewNop()}

	q := sqlboiler.Reports(r.buildFindByParamsHashQuery(repository.FindByParamsHashOptions{
		ParamsHash: "h",
		UserID:     "u1",
		Status:     "PROCESSING",
	})...)
	query, args := queries.BuildQuery(q.Query)

	assert.Contains(t, query, `FROM "reports"`)
	assert.Contains(t, query, "params_hash = $1")
	assert.Contains(t, query, "user_id = $2")
	assert.Contains(t, query, "status = $3")
	assert.Contains(t, query, "ORDER BY created_at DESC")
	assert.Equal(t, []interface{}{"h", "u1", "PROCESSING"}, args)
}

func TestBuildListReportsQuery(t *testing.T) {
	r := &implRepository{l: log.NewNop()}

	tcs := map[string]struct {
		opts     repository.ListReportsOptions
		contains []string
		absent   []string
		args     []interface{}
	}{
		"analysis of a user": {
			opts: repository.ListReportsOptions{
				AnalysisID: "a1",
				UserID:     "u1",
			},
			contains: []string{"analysis_id = $1", "user_id = $2"},
			absent:   []string{"status", "LIMIT", "OFFSET"},
			args:     []interface{}{"a1", "u1"},
		},
		"paginated": {
			opts: repository.ListReportsOptions{
				UserID: "u1",
				Status: "COMPLETED",
				Limit:  10,
				Offset: 30,
			},
			contains: []string{"user_id = $1", "status = $2", "LIMIT 10", "OFFSET 30"},
			absent:   []string{"analysis_id"},
			args:     []interface{}{"u1", "COMPLETED"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			q := sqlboiler.Reports(r.buildListReportsQuery(tc.opts)...)
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
