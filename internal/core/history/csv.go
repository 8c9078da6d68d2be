package history

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"
)

const (
	shortDateLayout = "1/2/2006"
	fullDateLayout  = "1/2/2006, 3:04:05 PM"
)

// ExportCSV renders the log as CSV in current log order. Writing the result
// to a file is the caller's concern.
func (historyLog *Log) ExportCSV() ([]byte, error) {
	historyLog.mu.Lock()
	defer historyLog.mu.Unlock()

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	if err := writer.Write([]string{"Date", "Duration (minutes)", "Completed At"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, session := range historyLog.sessions {
		row := []string{
			session.CompletedAt.Format(shortDateLayout),
			fmt.Sprintf("%d", session.DurationMinutes),
			session.CompletedAt.Format(fullDateLayout),
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buffer.Bytes(), nil
}

// ExportFileName returns the suggested export file name for the given day.
func ExportFileName(now time.Time) string {
	return "focus-tree-history-" + now.Format("2006-01-02") + ".csv"
}
