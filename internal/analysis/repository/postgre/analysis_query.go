package postgre

import (
	"github.com/aarondl/sqlboiler/v4/queries/qm"

	"insight-srv/internal/analysis/repository"
)

// buildListFilter - where clauses shared by the page and the count query.
func (r *implRepository) buildListFilter(opts repository.ListAnalysesOptions) []qm.QueryMod {
	mods := []qm.QueryMod{}

	if opts.UserID != "" {
		mods = append(mods, qm.Where("user_id = ?", opts.UserID))
	}
	if opts.Platform != "" {
		mods = append(mods, qm.Where("platform = ?", opts.Platform))
	}
	if opts.Status != "" {
		mods = append(mods, qm.Where("status = ?", opts.Status))
	}

	return mods
}

// buildListAnalysesQuery - filter, newest first, paginated.
func (r *implRepository) buildListAnalysesQuery(opts repository.ListAnalysesOptions) []qm.QueryMod {
	mods := r.buildListFilter(opts)

	mods = append(mods, qm.OrderBy("created_at DESC"))

	if opts.Limit > 0 {
		mods = append(mods, qm.Limit(int(opts.Limit)))
	}
	if opts.Offset > 0 {
		mods = append(mods, qm.Offset(int(opts.Offset)))
	}

	return mods
}
