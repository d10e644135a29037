package api

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	service "github.com/okian/scout/internal/app"
	"github.com/okian/scout/internal/domain/filter"
	"github.com/okian/scout/internal/domain/model"
)

// parseQuery reads the shared query parameters of /radar and /percentiles:
//
//	role, lang, scope, identity, dedupe, top,
//	min_minutes, min_age, max_age, country, club, contract_before
//
// country and club may repeat or hold comma separated values.
func parseQuery(op string, v url.Values) (service.Query, error) {
	q := service.Query{
		Role:     strings.TrimSpace(v.Get("role")),
		Language: strings.TrimSpace(v.Get("lang")),
	}
	if q.Role == "" {
		return q, WrapKind(op, ErrBadRequest, errors.New("missing role"))
	}

	var err error
	if s := v.Get("scope"); s != "" {
		if q.Scope, err = filter.ParseScope(s); err != nil {
			return q, Wrap(op, err)
		}
	}
	if s := v.Get("identity"); s != "" {
		if q.Identity, err = model.ParseIdentityKey(s); err != nil {
			return q, Wrap(op, err)
		}
	}
	if s := v.Get("dedupe"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return q, WrapKind(op, ErrBadRequest, fmt.Errorf("dedupe: %w", err))
		}
		q.Dedupe = &b
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"top", &q.TopN},
		{"min_minutes", &q.Criteria.MinMinutes},
		{"min_age", &q.Criteria.MinAge},
		{"max_age", &q.Criteria.MaxAge},
	}
	for _, p := range ints {
		s := v.Get(p.name)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil || (p.name != "top" && n < 0) {
			return q, WrapKind(op, ErrBadRequest, fmt.Errorf("invalid %s %q", p.name, s))
		}
		*p.dst = n
	}
	if q.Criteria.MinAge > 0 && q.Criteria.MaxAge > 0 && q.Criteria.MinAge > q.Criteria.MaxAge {
		return q, WrapKind(op, ErrBadRequest, errors.New("min_age above max_age"))
	}
	if v.Has("top") && q.TopN == 0 {
		return q, WrapKind(op, service.ErrInvalidTopN, errors.New("top must be at least 1"))
	}

	q.Criteria.Countries = splitList(v["country"])
	q.Criteria.Clubs = splitList(v["club"])

	if s := v.Get("contract_before"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return q, WrapKind(op, ErrBadRequest, errors.New("contract_before must be YYYY-MM-DD"))
		}
		q.Criteria.ContractBefore = t
	}
	return q, nil
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
