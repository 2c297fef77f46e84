package misc

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
)

// Tip is a single posture advice entry.
type Tip struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// TipsManager serves posture tips loaded from a CSV file.
type TipsManager struct {
	tips []Tip

	// randIntFunc picks the random tip index, swappable in tests
	randIntFunc func(n int) int
}

// NewTipsManager loads the tips from the given CSV file. The file
// carries a header row followed by tip,category rows.
func NewTipsManager(csvPath string) (*TipsManager, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("open tips file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read tips file: %w", err)
	}
	if len(records) <= 1 {
		return nil, fmt.Errorf("no tips found in %s", csvPath)
	}

	var tips []Tip
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		tips = append(tips, Tip{Text: record[0], Category: record[1]})
	}
	if len(tips) == 0 {
		return nil, fmt.Errorf("no usable tips found in %s", csvPath)
	}

	return &TipsManager{
		tips:        tips,
		randIntFunc: rand.Intn,
	}, nil
}

func (tm *TipsManager) RandomTip() Tip {
	return tm.tips[tm.randIntFunc(len(tm.tips))]
}

func (tm *TipsManager) Count() int {
	return len(tm.tips)
}
