package table

import (
	"fmt"
	"io"
	"strconv"

	"github.com/aroneys/elusive/internal/cluster"
)

// ReadWeights parses a read_size table (spec.md §6): one header row
// followed by tab-separated sample/read_size rows. Rows are merged into
// into in place, overwriting any existing entry for the same sample.
func ReadWeights(r io.Reader, into cluster.Weights) error {
	reader := newTabReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading read_size header: %w", err)
	}
	if err := requireColumns(header, 2); err != nil {
		return err
	}

	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading read_size row %d: %w", row, err)
		}

		size, err := strconv.ParseInt(record[1], 10, 64)
		if err != nil {
			return fmt.Errorf("read_size row %d: read_size %q is not an integer", row, record[1])
		}
		if size < 0 {
			return fmt.Errorf("read_size row %d: read_size must be >= 0", row)
		}
		into[record[0]] = size
	}
}
