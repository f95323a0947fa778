package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/tkarvonen/huoltokirja/constants"
	"github.com/tkarvonen/huoltokirja/internal/entity"
)

// NormalizeAndSanitizeJSON
// - Removes unknown keys (strict additionalProperties = false friendliness)
// - Drops null/empty values
// - Coerces amounts to float64 and the odometer to int
// - Coerces a bare work_description string into a one-element list
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) (entity.FieldSet, []byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)

	allowed := map[string]struct{}{}
	for _, f := range constants.AllFields {
		allowed[f] = struct{}{}
	}
	allowed[constants.FieldVehicleReg] = struct{}{}
	for k := range maps.Clone(m) {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	for k, v := range maps.Clone(m) {
		if v == nil {
			delete(m, k)
			dropped = append(dropped, k+"(null)")
		}
	}

	coerceNumber := func(k string) {
		v, ok := m[k]
		if !ok {
			return
		}
		switch t := v.(type) {
		case float64:
			// already a JSON number
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(t, ",", "."))
			var f float64
			if _, err := fmt.Sscanf(s, "%f", &f); err == nil {
				m[k] = f
			} else {
				delete(m, k)
				dropped = append(dropped, k+"(unparseable)")
			}
		default:
			delete(m, k)
			dropped = append(dropped, k+"(type)")
		}
	}
	coerceNumber(constants.FieldAmount)
	coerceNumber(constants.FieldVATAmount)

	if v, ok := m[constants.FieldOdometerKM]; ok {
		switch t := v.(type) {
		case float64:
			m[constants.FieldOdometerKM] = int(t)
		case string:
			var n int
			if _, err := fmt.Sscanf(strings.TrimSpace(t), "%d", &n); err == nil {
				m[constants.FieldOdometerKM] = n
			} else {
				delete(m, constants.FieldOdometerKM)
				dropped = append(dropped, constants.FieldOdometerKM+"(unparseable)")
			}
		default:
			delete(m, constants.FieldOdometerKM)
			dropped = append(dropped, constants.FieldOdometerKM+"(type)")
		}
	}

	trimKeys := []string{
		constants.FieldDate, constants.FieldInvoiceNumber,
		constants.FieldCompany, constants.FieldVehicleReg,
	}
	for _, k := range trimKeys {
		if v, ok := m[k]; ok {
			s, isStr := v.(string)
			if !isStr {
				delete(m, k)
				dropped = append(dropped, k+"(type)")
				continue
			}
			s = strings.TrimSpace(s)
			if s == "" {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			} else {
				m[k] = s
			}
		}
	}

	if v, ok := m[constants.FieldWorkDescription]; ok {
		var descs []string
		switch t := v.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				descs = []string{s}
			}
		case []any:
			for _, item := range t {
				if s, ok := item.(string); ok {
					if s = strings.TrimSpace(s); s != "" {
						descs = append(descs, s)
					}
				}
			}
		}
		if len(descs) > constants.MaxWorkDescriptions {
			descs = descs[:constants.MaxWorkDescriptions]
		}
		if len(descs) == 0 {
			delete(m, constants.FieldWorkDescription)
			dropped = append(dropped, constants.FieldWorkDescription+"(empty)")
		} else {
			m[constants.FieldWorkDescription] = descs
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.normalize_sanitize", "dropped", dropped)
	}
	return entity.FieldSet(m), out, dropped, nil
}
