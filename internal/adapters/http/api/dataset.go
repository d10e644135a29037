package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/okian/scout/internal/adapters/dataset"
)

// DatasetHandler replaces the dataset from an uploaded file.
type DatasetHandler struct {
	deps     DatasetDependencies
	maxBytes int64
}

// NewDatasetHandler creates a new dataset handler.
func NewDatasetHandler(deps DatasetDependencies, maxBytes int64) *DatasetHandler {
	return &DatasetHandler{deps: deps, maxBytes: maxBytes}
}

type datasetResponse struct {
	Players  int       `json:"players"`
	Source   string    `json:"source"`
	Sequence uint64    `json:"sequence"`
	LoadedAt time.Time `json:"loaded_at"`
}

// HandlePutDataset handles PUT /dataset requests. The body is a CSV or XLSX
// export; the format comes from ?format= or the Content-Type header.
func (h *DatasetHandler) HandlePutDataset(w http.ResponseWriter, r *http.Request) {
	const op = "api.put_dataset"
	if r.Method != http.MethodPut {
		http.NotFound(w, r)
		return
	}

	var (
		format dataset.Format
		err    error
	)
	if f := r.URL.Query().Get("format"); f != "" {
		format, err = dataset.ParseFormat(f)
	} else {
		format, err = dataset.FormatFromMediaType(r.Header.Get("Content-Type"))
	}
	if err != nil {
		fail(w, Wrap(op, err))
		return
	}

	source := r.URL.Query().Get("name")
	if source == "" {
		source = fmt.Sprintf("upload.%s", format)
	}

	body := http.MaxBytesReader(w, r.Body, h.maxBytes)
	snap, err := h.deps.ReplaceDataset(r.Context(), body, format, source)
	if err != nil {
		fail(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, datasetResponse{
		Players:  snap.Len(),
		Source:   snap.Source,
		Sequence: snap.Sequence,
		LoadedAt: snap.LoadedAt,
	})
}
