package lawgo

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/custodia-labs/lawdata/internal/core/domain"
)

func setString(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setInt(v url.Values, key string, value int) {
	if value > 0 {
		v.Set(key, strconv.Itoa(value))
	}
}

func setRange(v url.Values, key string, r *domain.DateRange) {
	if r != nil {
		v.Set(key, r.String())
	}
}

// articleParam formats an article key as JO: four digits of article
// number followed by two of branch number.
func articleParam(v url.Values, key int) {
	if key > 0 {
		v.Set("JO", fmt.Sprintf("%06d", key))
	}
}

func pagingParams(v url.Values, p domain.Paging) domain.Paging {
	p = p.Normalised()
	v.Set("page", strconv.Itoa(p.Page))
	v.Set("display", strconv.Itoa(p.Display))
	return p
}

func statuteListParams(q domain.StatuteQuery) (url.Values, domain.Paging) {
	v := url.Values{}
	paging := pagingParams(v, q.Paging)
	setString(v, "query", q.Query)
	setInt(v, "search", int(q.Scope))
	setString(v, "sort", q.Sort)
	setInt(v, "date", q.Date)
	setRange(v, "efYd", q.EffectiveRange)
	setRange(v, "ancYd", q.PromulgationRange)
	setString(v, "ancNo", q.PromulgationNumbers)
	setString(v, "rrClsCd", q.RevisionType)
	setInt(v, "nb", q.Number)
	setString(v, "org", q.Department)
	setString(v, "knd", q.Kind)
	setString(v, "gana", q.Initial)
	return v, paging
}

func statuteParams(r domain.StatuteRequest, fallback domain.Language) url.Values {
	v := url.Values{}
	if r.ID > 0 {
		v.Set("ID", fmt.Sprintf("%06d", r.ID))
	}
	if r.MST > 0 {
		v.Set("MST", strconv.FormatInt(r.MST, 10))
	}
	setString(v, "LM", r.Name)
	setInt(v, "LD", r.PromulgationDate)
	setInt(v, "LN", r.PromulgationNo)
	articleParam(v, r.Article)

	lang := r.Language
	if lang == "" {
		lang = fallback
	}
	setString(v, "LANG", lang.String())
	return v
}

func effectiveStatuteParams(r domain.EffectiveStatuteRequest, fallback domain.Language) url.Values {
	v := url.Values{}
	if r.ID > 0 {
		v.Set("ID", fmt.Sprintf("%06d", r.ID))
	}
	if r.MST > 0 {
		v.Set("MST", strconv.FormatInt(r.MST, 10))
	}
	setInt(v, "efYd", r.EffectiveDate)
	articleParam(v, r.Article)

	lang := r.Language
	if lang == "" {
		lang = fallback
	}
	v.Set("chrClsCd", lang.CharClassCode())
	return v
}

func historyParams(r domain.ArticleHistoryRequest) (url.Values, domain.Paging) {
	v := url.Values{}
	paging := pagingParams(v, r.Paging)
	v.Set("ID", fmt.Sprintf("%06d", r.ID))
	articleParam(v, r.Article)
	setInt(v, "regDt", r.RegisteredDate)
	return v, paging
}

func precedentListParams(q domain.PrecedentQuery) (url.Values, domain.Paging) {
	v := url.Values{}
	paging := pagingParams(v, q.Paging)
	setString(v, "query", q.Query)
	setInt(v, "search", int(q.Scope))
	setString(v, "sort", q.Sort)
	setString(v, "JO", q.LawName)
	setString(v, "gana", q.Initial)
	setString(v, "datSrcNm", q.DataSource)
	setRange(v, "prncYd", q.DecisionRange)
	setInt(v, "date", q.Date)
	setString(v, "org", q.CourtType)
	setString(v, "curt", q.Court)
	setString(v, "nb", q.CaseNumber)
	return v, paging
}

func precedentParams(r domain.PrecedentRequest) url.Values {
	v := url.Values{}
	v.Set("ID", strconv.Itoa(r.ID))
	setString(v, "LM", r.Name)
	return v
}
