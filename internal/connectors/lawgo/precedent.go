package lawgo

import (
	"context"

	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/normalisers/precedent"
)

// SearchPrecedents runs a precedent list query (lawSearch.do, target=prec).
func (c *Client) SearchPrecedents(ctx context.Context, q domain.PrecedentQuery) (*domain.ListResult[domain.Precedent], error) {
	params, paging := precedentListParams(q)
	raw, root, err := c.get(ctx, listPath, TargetPrecedent, params)
	if err != nil {
		return nil, wrapError(err, "search precedents")
	}

	items, total := precedent.ParseList(root)
	return &domain.ListResult[domain.Precedent]{
		Raw:        raw,
		Items:      items,
		TotalCount: total,
		Page:       paging.Page,
		Display:    paging.Display,
	}, nil
}

// GetPrecedent fetches precedent content (lawService.do, target=prec).
// Decisions the API does not serve as JSON come back without content.
func (c *Client) GetPrecedent(ctx context.Context, req domain.PrecedentRequest) (*domain.ContentResult[domain.Precedent], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	raw, root, err := c.get(ctx, contentPath, TargetPrecedent, precedentParams(req))
	if err != nil {
		if raw != nil {
			return &domain.ContentResult[domain.Precedent]{Raw: raw}, wrapError(err, "get precedent")
		}
		return nil, wrapError(err, "get precedent")
	}
	return &domain.ContentResult[domain.Precedent]{Raw: raw, Content: precedent.ParseContent(root)}, nil
}
