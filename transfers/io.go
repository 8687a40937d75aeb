package transfers

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/antigravity/transit-raptor/feed"
)

// transferRow is the on-disk transfers.txt row shape: header
// from_stop_id,to_stop_id,transfer_type,min_transfer_time, with
// min_transfer_time printed to one decimal place (spec §6).
type transferRow struct {
	FromStopID      string `csv:"from_stop_id"`
	ToStopID        string `csv:"to_stop_id"`
	TransferType    int    `csv:"transfer_type"`
	MinTransferTime string `csv:"min_transfer_time"`
}

// WriteFile persists generated transfers to path as transfers.txt.
func WriteFile(path string, rows []feed.Transfer) error {
	out := make([]transferRow, len(rows))
	for i, t := range rows {
		out[i] = transferRow{
			FromStopID:      t.FromStopID,
			ToStopID:        t.ToStopID,
			TransferType:    int(t.Kind),
			MinTransferTime: fmt.Sprintf("%.1f", t.MinTransferTime),
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.MarshalFile(&out, f)
}

// ReadFile loads a previously generated transfers.txt.
func ReadFile(path string) ([]feed.Transfer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []transferRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, err
	}

	out := make([]feed.Transfer, len(rows))
	for i, r := range rows {
		var minTime float64
		fmt.Sscanf(r.MinTransferTime, "%f", &minTime)
		out[i] = feed.Transfer{
			FromStopID:      r.FromStopID,
			ToStopID:        r.ToStopID,
			Kind:            feed.TransferKind(r.TransferType),
			MinTransferTime: minTime,
		}
	}
	return out, nil
}
