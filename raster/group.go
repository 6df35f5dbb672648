package raster

import (
	"encoding/json"
	"fmt"
	"io"
)

// GroupEntry names one channel raster inside a group.
type GroupEntry struct {
	Channel string `json:"channel"`
	File    string `json:"file"`
}

// Group describes a set of channel rasters that belong together, in the
// order they should be registered by the consumer. The compositor suggests
// the name; persistence and registration are the consumer's concern.
type Group struct {
	Name     string       `json:"name"`
	Channels []GroupEntry `json:"channels"`
}

// EncodeManifest writes the group description as indented JSON.
func EncodeManifest(w io.Writer, g Group) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("raster: manifest encode: %w", err)
	}
	return nil
}
