package writers

import (
	"encoding/json"
	"io"

	"seqcmp/internal/report"
	"seqcmp/pkg/api"
)

func init() { RegisterReport("json", WriteJSON) }

// ToAPIReport converts a domain Report to the stable wire schema (v1).
func ToAPIReport(r report.Report) api.ReportV1 {
	return api.ReportV1{
		First: api.SequenceV1{
			Label:     r.FirstLabel,
			Length:    r.First.Length,
			GC:        r.First.GC,
			Other:     r.First.Other,
			GCPercent: r.First.GCPercent,
		},
		Second: api.SequenceV1{
			Label:     r.SecondLabel,
			Length:    r.Second.Length,
			GC:        r.Second.GC,
			Other:     r.Second.Other,
			GCPercent: r.Second.GCPercent,
		},
		LCS: api.LCSV1{
			Substring:   r.LCS.Substring,
			Length:      r.LCS.Length,
			EndInFirst:  r.LCS.EndInFirst,
			EndInSecond: r.LCS.EndInSecond,
			Engine:      r.Engine,
		},
	}
}

// WriteJSON writes the v1 report as indented JSON.
func WriteJSON(w io.Writer, r report.Report, _ Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPIReport(r))
}
