package search

import (
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"rental-frontend/app/domain"
)

const priceUnits = `(k|thousand|etb|birr)`

var (
	bedroomPattern = regexp.MustCompile(`(?i)(\d+)[\s-]*(bedroom|br|bed)`)
	pricePattern   = regexp.MustCompile(`(?i)(\d+)\s*` + priceUnits + `\b`)
	underPattern   = regexp.MustCompile(`(?i)\b(?:under|below|less than)\s*(\d+)\s*` + priceUnits + `?\b`)
	overPattern    = regexp.MustCompile(`(?i)\b(?:over|above|more than|from)\s*(\d+)\s*` + priceUnits + `?\b`)
)

// Parser turns free text such as "2-bedroom in Bole under 20K ETB" into search filters
type Parser struct {
	vocab  *Vocabulary
	logger *slog.Logger
}

// NewParser creates a parser over vocab
func NewParser(vocab *Vocabulary, logger *slog.Logger) *Parser {
	return &Parser{
		vocab:  vocab,
		logger: logger.With("component", "search_parser"),
	}
}

// Parse extracts filters from text. Anything it does not recognise is ignored,
// so an unhelpful query yields empty filters rather than an error.
func (p *Parser) Parse(text string) domain.SearchFilters {
	var filters domain.SearchFilters
	lower := strings.ToLower(text)

	for _, loc := range p.vocab.Locations {
		if strings.Contains(lower, loc) {
			filters.Location = loc
			break
		}
	}

	bedrooms := bedroomPattern.FindStringSubmatchIndex(text)
	if bedrooms != nil {
		if n, err := strconv.Atoi(text[bedrooms[2]:bedrooms[3]]); err == nil {
			filters.Bedrooms = &n
		}
	}

	// "from 2 bedrooms" is a room count, not a price bound
	isRoomCount := func(loc []int) bool {
		return bedrooms != nil && loc[2] == bedrooms[2]
	}

	// A "from 10k" phrase is a lower bound; keep it out of the plain price match.
	remaining := text
	if loc := overPattern.FindStringSubmatchIndex(text); loc != nil && !isRoomCount(loc) {
		if price, ok := priceFromMatch(text, loc); ok {
			filters.MinPrice = &price
		}
		remaining = text[:loc[0]] + " " + text[loc[1]:]
	}

	if loc := pricePattern.FindStringSubmatchIndex(remaining); loc != nil {
		if price, ok := priceFromMatch(remaining, loc); ok {
			filters.MaxPrice = &price
		}
	}

	if loc := underPattern.FindStringSubmatchIndex(text); loc != nil && !isRoomCount(loc) {
		if price, ok := priceFromMatch(text, loc); ok {
			filters.MaxPrice = &price
		}
	}

	for _, pt := range p.vocab.PropertyTypes {
		if containsAny(lower, pt.Keywords) {
			filters.PropertyType = pt.Type
		}
	}

	for _, f := range p.vocab.Features {
		if containsAny(lower, f.Keywords) {
			filters.Features = append(filters.Features, f.Name)
		}
	}

	p.logger.Debug("Parsed search text", "text", text, "empty", filters.IsEmpty())
	return filters
}

// priceFromMatch reads the amount (group 1) and optional unit (group 2) of a submatch index
func priceFromMatch(text string, loc []int) (int64, bool) {
	amount, err := strconv.ParseInt(text[loc[2]:loc[3]], 10, 64)
	if err != nil {
		return 0, false
	}

	if loc[4] >= 0 {
		switch strings.ToLower(text[loc[4]:loc[5]]) {
		case "k", "thousand":
			if amount > math.MaxInt64/1000 {
				return 0, false
			}
			amount *= 1000
		}
	}
	return amount, true
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
