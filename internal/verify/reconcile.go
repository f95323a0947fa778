package verify

import (
	"reflect"

	"github.com/tkarvonen/huoltokirja/internal/entity"
)

// Reconcile layers an optional override on top of verified ground truth and
// returns the merged record with its audit trail. Pure: inputs are never
// mutated and the same inputs always produce the same record.
//
// An override value equal to the ground-truth value is a no-op and is not
// audited. The override reason is carried even when every override turned out
// to be a no-op, so reviewer intent survives in the output.
func Reconcile(groundTruth entity.FieldSet, override *entity.OverrideRecord) entity.ReconciledRecord {
	rec := entity.ReconciledRecord{
		GroundTruth: groundTruth.Clone(),
		OverrideInfo: entity.OverrideInfo{
			OverriddenFields: map[string]entity.OverrideChange{},
		},
	}
	if override == nil {
		return rec
	}

	rec.OverrideInfo.Reason = override.Reason
	for field, value := range override.GroundTruth {
		original, had := rec.GroundTruth[field]
		if had && reflect.DeepEqual(original, value) {
			continue
		}
		rec.GroundTruth[field] = value
		rec.OverrideInfo.OverriddenFields[field] = entity.OverrideChange{
			Original: original,
			Override: value,
		}
		rec.OverrideInfo.HasOverrides = true
	}
	return rec
}
