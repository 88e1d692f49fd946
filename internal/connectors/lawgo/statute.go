package lawgo

import (
	"context"

	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/normalisers/statute"
)

// SearchStatutes runs a statute list query (lawSearch.do, target=law).
func (c *Client) SearchStatutes(ctx context.Context, q domain.StatuteQuery) (*domain.ListResult[domain.StatuteSummary], error) {
	params, paging := statuteListParams(q)
	raw, root, err := c.get(ctx, listPath, TargetStatute, params)
	if err != nil {
		return nil, wrapError(err, "search statutes")
	}

	items, total := statute.ParseList(root)
	return &domain.ListResult[domain.StatuteSummary]{
		Raw:        raw,
		Items:      items,
		TotalCount: total,
		Page:       paging.Page,
		Display:    paging.Display,
	}, nil
}

// GetStatute fetches statute content (lawService.do, target=law).
func (c *Client) GetStatute(ctx context.Context, req domain.StatuteRequest) (*domain.ContentResult[domain.Statute], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	raw, root, err := c.get(ctx, contentPath, TargetStatute, statuteParams(req, c.cfg.Language))
	if err != nil {
		return nil, wrapError(err, "get statute")
	}
	return &domain.ContentResult[domain.Statute]{Raw: raw, Content: statute.ParseContent(root)}, nil
}

// GetEffectiveStatute fetches statute content as in force on a date
// (lawService.do, target=eflaw).
func (c *Client) GetEffectiveStatute(ctx context.Context, req domain.EffectiveStatuteRequest) (*domain.ContentResult[domain.Statute], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	params := effectiveStatuteParams(req, c.cfg.Language)
	raw, root, err := c.get(ctx, contentPath, TargetEffectiveStatute, params)
	if err != nil {
		return nil, wrapError(err, "get effective statute")
	}
	return &domain.ContentResult[domain.Statute]{Raw: raw, Content: statute.ParseContent(root)}, nil
}

// GetArticleHistory lists article revisions (lawService.do, target=lsJoHstInf).
func (c *Client) GetArticleHistory(ctx context.Context, req domain.ArticleHistoryRequest) (*domain.ListResult[domain.StatuteHistory], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	params, paging := historyParams(req)
	raw, root, err := c.get(ctx, contentPath, TargetArticleHistory, params)
	if err != nil {
		return nil, wrapError(err, "get article history")
	}

	items, total := statute.ParseHistory(root)
	return &domain.ListResult[domain.StatuteHistory]{
		Raw:        raw,
		Items:      items,
		TotalCount: total,
		Page:       paging.Page,
		Display:    paging.Display,
	}, nil
}
