package postgre

import (
	"context"
	"database/sql"
	"errors"

	"insight-srv/internal/analysis/repository"
	"insight-srv/internal/model"
	"insight-srv/internal/sqlboiler"
)

// CreateAnalysis - Insert a new analysis record.
func (r *implRepository) CreateAnalysis(ctx context.Context, opts repository.CreateAnalysisOptions) (*model.Analysis, error) {
	dbAnalysis := buildCreateAnalysis(opts)

	if err := dbAnalysis.Insert(ctx, r.db); err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.CreateAnalysis: Failed to insert analysis: %v", err)
		return nil, repository.ErrAnalysisCreateFailed
	}

	return model.NewAnalysisFromDB(dbAnalysis), nil
}

// UpsertByExternalID - Insert an ingested analysis or refresh the one with the same external id.
func (r *implRepository) UpsertByExternalID(ctx context.Context, opts repository.UpsertAnalysisOptions) (*model.Analysis, error) {
	dbAnalysis := buildUpsertAnalysis(opts)

	if err := dbAnalysis.Upsert(ctx, r.db); err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.UpsertByExternalID: Failed to upsert analysis %s: %v", opts.ExternalID, err)
		return nil, repository.ErrAnalysisCreateFailed
	}

	return model.NewAnalysisFromDB(dbAnalysis), nil
}

// GetAnalysisByID - Get analysis by primary key.
func (r *implRepository) GetAnalysisByID(ctx context.Context, id string) (*model.Analysis, error) {
	dbAnalysis, err := sqlboiler.FindAnalysis(ctx, r.db, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrAnalysisNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.GetAnalysisByID: Failed to get analysis: %v", err)
		return nil, err
	}

	return model.NewAnalysisFromDB(dbAnalysis), nil
}

// ListAnalyses - One page of analyses plus the total matching the filter.
func (r *implRepository) ListAnalyses(ctx context.Context, opts repository.ListAnalysesOptions) ([]*model.Analysis, int64, error) {
	total, err := sqlboiler.Analyses(r.buildListFilter(opts)...).Count(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.ListAnalyses: Failed to count analyses: %v", err)
		return nil, 0, err
	}
	if total == 0 {
		return []*model.Analysis{}, 0, nil
	}

	dbAnalyses, err := sqlboiler.Analyses(r.buildListAnalysesQuery(opts)...).All(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.ListAnalyses: Failed to list analyses: %v", err)
		return nil, 0, err
	}

	result := make([]*model.Analysis, 0, len(dbAnalyses))
	for _, dbAnalysis := range dbAnalyses {
		if a := model.NewAnalysisFromDB(dbAnalysis); a != nil {
			result = append(result, a)
		}
	}

	return result, total, nil
}

// DeleteAnalysis - Remove an analysis. Its reports go with it (ON DELETE CASCADE).
func (r *implRepository) DeleteAnalysis(ctx context.Context, id string) error {
	n, err := (&sqlboiler.Analysis{ID: id}).Delete(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.DeleteAnalysis: Failed to delete analysis: %v", err)
		return repository.ErrAnalysisDeleteFailed
	}
	if n == 0 {
		return repository.ErrAnalysisNotFound
	}

	return nil
}
