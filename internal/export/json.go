package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/bactogrowth/internal/growth"
)

type ExportData struct {
	ID          string                  `json:"id,omitempty"`
	Parameters  growth.Parameters       `json:"parameters"`
	Result      growth.Result           `json:"result"`
	Comparisons []growth.BodyComparison `json:"comparisons,omitempty"`
	Samples     []growth.Sample         `json:"samples"`
}

func WriteJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, data ExportData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, data)
}
