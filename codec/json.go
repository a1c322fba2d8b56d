package codec

import "encoding/json"

// JSON is the standard-library JSON codec.
//
// Artifacts exported from Python training scripts are plain JSON, so
// this codec is the most portable choice when interoperating with
// externally produced model files.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used for artifact decoding.
var Default Codec = GoJSON{}
