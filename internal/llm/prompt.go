package llm

import "strings"

// BuildSystemPrompt composes the system message: fixed keys, Finnish receipt
// context, and strict formatting rules.
func BuildSystemPrompt(req ExtractRequest) string {
	parts := []string{
		"You are a parser for Finnish car service receipts. Return ONLY JSON that matches the provided JSON Schema.",
		"The receipts are in Finnish, sometimes with English labels.",
		"Use ISO-8601 dates (YYYY-MM-DD). Amounts are euros as plain numbers with a dot decimal separator.",
		"'odometer_km' is the odometer reading in kilometers as an integer.",
		"'company' is the issuing business, e.g. a car dealership, tire shop or vehicle inspection station.",
		"'work_description' lists the visible service items (Finnish terms are fine).",
		"Never output null and never guess. If a field is not readable from the text, omit it.",
	}
	if len(req.MissingFields) > 0 {
		parts = append(parts,
			"Focus on these fields, which pattern matching could not find: "+strings.Join(req.MissingFields, ", ")+".")
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the filename hint and the OCR text, truncated to
// keep the request bounded.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	if f := strings.TrimSpace(req.FilenameHint); f != "" {
		b.WriteString("Filename: ")
		b.WriteString(f)
		b.WriteString("\n")
	}
	ocr := strings.TrimSpace(req.OCRText)
	b.WriteString("\nOCR text (first ~3k chars):\n")
	if len(ocr) > 3000 {
		b.WriteString(ocr[:3000])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(ocr)
	}
	return b.String()
}
