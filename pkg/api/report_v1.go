package api

// ReportV1 is the stable JSON schema of a comparison report.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	First  SequenceV1 `json:"first"`
	Second SequenceV1 `json:"second"`
	LCS    LCSV1      `json:"lcs"`
}

// SequenceV1 is the composition of one input sequence.
type SequenceV1 struct {
	Label     string  `json:"label,omitempty"`
	Length    int     `json:"length"`
	GC        int     `json:"gc"`
	Other     int     `json:"other,omitempty"` // symbols outside ACGT
	GCPercent float64 `json:"gc_percent"`      // one decimal place, round-half-even
}

// LCSV1 is the longest common substring of the pair.
type LCSV1 struct {
	Substring   string `json:"substring"`
	Length      int    `json:"length"`
	EndInFirst  int    `json:"end_first,omitempty"`  // 1-based
	EndInSecond int    `json:"end_second,omitempty"` // 1-based
	Engine      string `json:"engine,omitempty"`     // "full" | "rolling"
}
