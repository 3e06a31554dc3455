package sweep

import (
	"encoding/csv"
	"io"
	"strconv"
)

var header = []string{"num_points", "num_components", "soa_time", "aos_time", "static", "aos/soa"}

// WriteCSV writes rows with a header line. Times are in microseconds.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.NumPoints),
			strconv.Itoa(r.NumComponents),
			strconv.FormatInt(r.SoAMicros, 10),
			strconv.FormatInt(r.AoSMicros, 10),
			strconv.FormatBool(r.Static),
			strconv.FormatFloat(r.Ratio(), 'f', 4, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
