package entity

// labelMap collapses the NER models' native vocabularies into the canonical
// type set. Geopolitical and group labels fold into ORG, works of art and
// products into TECH, laws and events into METHOD. Canonical names map to
// themselves so models trained on our own vocabulary pass straight through.
var labelMap = map[string]Type{
	"PERSON":      Person,
	"ORG":         Org,
	"GPE":         Org,
	"NORP":        Org,
	"PRODUCT":     Tech,
	"WORK_OF_ART": Tech,
	"LANGUAGE":    Tech,
	"EVENT":       Method,
	"LAW":         Method,
	"TECH":        Tech,
	"METHOD":      Method,
	"DATASET":     Dataset,
	"METRIC":      Metric,
	"TASK":        Task,
}

// MapLabel returns the canonical type for a native model label. Labels
// missing from the table are returned verbatim rather than dropped, so an
// unexpected model vocabulary surfaces downstream instead of disappearing.
// Callers can test the result with Type.Known.
func MapLabel(native string) Type {
	if t, ok := labelMap[native]; ok {
		return t
	}
	return Type(native)
}
