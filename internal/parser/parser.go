package parser

import (
	"log/slog"
	"strings"

	"github.com/tkarvonen/huoltokirja/constants"
	"github.com/tkarvonen/huoltokirja/internal/entity"
)

// Parser applies the per-field rule chains to raw OCR text. It is a pure
// function of its input; a field that no rule matches simply stays absent.
type Parser struct {
	rules  *Rules
	logger *slog.Logger
}

func New(rules *Rules, logger *slog.Logger) *Parser {
	if rules == nil {
		rules = DefaultRules(DefaultOptions())
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{rules: rules, logger: logger}
}

// ExtractField tries the field's rule chain in priority order and returns the
// first normalized value. ok=false means every rule failed or the text is
// empty; that is the expected steady state, not an error.
func (p *Parser) ExtractField(text, field string) (any, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}
	for _, rule := range p.rules.Chain(field) {
		m := rule.Pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if v, ok := rule.Normalize(m); ok {
			return v, true
		}
	}
	return nil, false
}

// ExtractAll runs every field chain independently and returns the extracted
// set plus the required fields still missing. One field's success never gates
// another's.
func (p *Parser) ExtractAll(text string) (entity.FieldSet, []string) {
	fields := entity.FieldSet{}
	for _, field := range p.rules.FieldOrder() {
		if v, ok := p.ExtractField(text, field); ok {
			fields[field] = v
		}
	}
	if desc := WorkDescriptions(text); len(desc) > 0 {
		fields[constants.FieldWorkDescription] = desc
	}
	missing := fields.Missing(constants.RequiredFields)
	p.logger.Debug("parser.extract_all",
		"extracted", len(fields),
		"missing_required", missing,
	)
	return fields, missing
}
