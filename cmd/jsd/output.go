package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/jsd/codec"
)

func writeJSON(w io.Writer, report codec.Report) error {
	data, err := codec.GoJSON{}.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func formatFloat(f *float64) string {
	if f == nil {
		return "NaN"
	}
	return strconv.FormatFloat(*f, 'g', -1, 64)
}

func writeText(w io.Writer, report codec.Report) error {
	var sb strings.Builder

	if report.Distance != nil || report.Matrix == nil {
		sb.WriteString(formatFloat(report.Distance))
		sb.WriteByte('\n')
	} else {
		sb.WriteString("\t")
		sb.WriteString(strings.Join(report.Inputs, "\t"))
		sb.WriteByte('\n')
		for i, row := range report.Matrix {
			sb.WriteString(report.Inputs[i])
			for _, d := range row {
				sb.WriteByte('\t')
				sb.WriteString(formatFloat(d))
			}
			sb.WriteByte('\n')
		}
	}

	for _, o := range report.Overlaps {
		fmt.Fprintf(&sb, "overlap %s %s: size=%d/%d intersection=%d union=%d jaccard=%.6f\n",
			report.Inputs[o.I], report.Inputs[o.J], o.SizeI, o.SizeJ, o.Intersection, o.Union, o.Jaccard)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
