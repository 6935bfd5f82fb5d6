package model

import "strings"

// ProfessionalFilter scopes a slot or appointment query to one professional
// or to all of them. It replaces the wire-level "any" sentinel inside the
// service layer.
type ProfessionalFilter struct {
	id  string
	all bool
}

func AllProfessionals() ProfessionalFilter {
	return ProfessionalFilter{all: true}
}

func OnlyProfessional(id string) ProfessionalFilter {
	return ProfessionalFilter{id: id}
}

// ParseProfessionalFilter maps the query-string convention: empty or "any"
// means no professional filter.
func ParseProfessionalFilter(raw string) ProfessionalFilter {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, "any") {
		return AllProfessionals()
	}
	return OnlyProfessional(trimmed)
}

func (f ProfessionalFilter) All() bool {
	return f.all
}

func (f ProfessionalFilter) ID() string {
	return f.id
}
