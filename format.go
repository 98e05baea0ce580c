package treediff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

var opSigils = map[Op]string{
	OpAdd:     "+",
	OpRemove:  "-",
	OpReplace: "~",
}

// FormatPrettyString is a convenience wrapper that outputs to a string
// instead of an io.Writer
func FormatPrettyString(patch Patch, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, patch, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a one-line-per-operation text report to w.
// if colorTTY is true it will add
// red "-" for removes
// green "+" for adds
// blue "~" for replaces
func FormatPretty(w io.Writer, patch Patch, colorTTY bool) error {
	var colorMap map[Op]string

	if colorTTY {
		colorMap = map[Op]string{
			Op("close"): "\x1b[0m", // end color tag

			OpAdd:     "\x1b[32m", // green
			OpRemove:  "\x1b[31m", // red
			OpReplace: "\x1b[34m", // blue
		}
	}

	for _, op := range patch {
		valueStr := ""
		if op.Op != OpRemove {
			data, err := json.Marshal(op.Value)
			if err != nil {
				return err
			}
			valueStr = ": " + string(data)
		}
		path := op.Path
		if path == RootPath {
			path = "(document root)"
		}
		fmt.Fprintf(w, "%s%s %s%s%s\n", colorMap[op.Op], opSigils[op.Op], path, valueStr, colorMap[Op("close")])
	}

	return nil
}

// FormatStats prints a string of stats info
func FormatStats(st *Stats) string {
	return formatStats(st, false)
}

// FormatStatsColor prints a string of stats info with ANSI colors
func FormatStatsColor(st *Stats) string {
	return formatStats(st, true)
}

func formatStats(st *Stats, color bool) string {
	var addColor, removeColor, replaceColor, closeColor string

	if st == nil {
		return "<nil>"
	}

	if color {
		addColor = "\x1b[32m"
		removeColor = "\x1b[31m"
		replaceColor = "\x1b[34m"
		closeColor = "\x1b[0m"
	}

	buf := &bytes.Buffer{}

	opsWord := "operations"
	if st.Total() == 1 {
		opsWord = "operation"
	}
	fmt.Fprintf(buf, "%d %s.", st.Total(), opsWord)

	addsWord := "adds"
	if st.Adds == 1 {
		addsWord = "add"
	}
	fmt.Fprintf(buf, " %s%d %s.%s", addColor, st.Adds, addsWord, closeColor)

	removesWord := "removes"
	if st.Removes == 1 {
		removesWord = "remove"
	}
	fmt.Fprintf(buf, " %s%d %s.%s", removeColor, st.Removes, removesWord, closeColor)

	replacesWord := "replaces"
	if st.Replaces == 1 {
		replacesWord = "replace"
	}
	fmt.Fprintf(buf, " %s%d %s.%s", replaceColor, st.Replaces, replacesWord, closeColor)

	buf.WriteRune('\n')

	return buf.String()
}
